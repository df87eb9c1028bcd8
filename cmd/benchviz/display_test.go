package main

import (
	"errors"
	"image"
	"runtime"
	"testing"

	"github.com/iafilius/benchviz/src/report"
)

func TestWindowSize_KeepsAspect(t *testing.T) {
	cases := []image.Rectangle{
		image.Rect(0, 0, 1000, 1198),
		image.Rect(0, 0, 640, 616),
		image.Rect(0, 0, 2000, 500),
	}
	for _, b := range cases {
		s := windowSize(b)
		if s.Width > 1000 || s.Height > 900 {
			t.Fatalf("window %v exceeds bounds for %v", s, b)
		}
		want := float32(b.Dx()) / float32(b.Dy())
		got := s.Width / s.Height
		if d := got - want; d > 0.01 || d < -0.01 {
			t.Fatalf("aspect %v want %v for %v", got, want, b)
		}
	}
	if s := windowSize(image.Rectangle{}); s.Width != 1000 || s.Height != 900 {
		t.Fatalf("empty bounds window = %v", s)
	}
}

func TestFyneDisplay_HeadlessReturnsErrNoDisplay(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("display detection via environment only on linux/bsd")
	}
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	err := fyneDisplay{}.Show("t", image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if !errors.Is(err, report.ErrNoDisplay) {
		t.Fatalf("expected ErrNoDisplay, got %v", err)
	}
}
