package report

import (
	"errors"
	"image"
)

// ErrNoDisplay is returned by a Displayer when no display surface exists.
var ErrNoDisplay = errors.New("no display available")

// Displayer shows a rendered figure. Implementations may block until the
// user closes the view.
type Displayer interface {
	Show(title string, img image.Image) error
}

// NoDisplay skips the display step; used for headless runs and tests.
type NoDisplay struct{}

func (NoDisplay) Show(string, image.Image) error { return nil }
