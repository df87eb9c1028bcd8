package main

import (
	"fmt"
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/iafilius/benchviz/src/logging"
	"github.com/iafilius/benchviz/src/report"
)

// fyneDisplay shows the figure in a single window and blocks until it is closed.
type fyneDisplay struct{}

func (fyneDisplay) Show(title string, img image.Image) (err error) {
	if !hasDisplay() {
		return report.ErrNoDisplay
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fyne: %v", r)
		}
	}()
	logging.Debugf("opening display window %q", title)

	a := app.NewWithID("com.iafilius.benchviz")
	w := a.NewWindow(title)
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	w.SetContent(ci)
	w.Resize(windowSize(img.Bounds()))
	w.ShowAndRun()
	return nil
}

// windowSize scales the figure down to fit a typical laptop screen, keeping its aspect ratio.
func windowSize(b image.Rectangle) fyne.Size {
	const maxW, maxH = 1000, 900
	w, h := float32(b.Dx()), float32(b.Dy())
	if w <= 0 || h <= 0 {
		return fyne.NewSize(maxW, maxH)
	}
	scale := float32(1)
	if w > maxW {
		scale = maxW / w
	}
	if h*scale > maxH {
		scale = maxH / h
	}
	return fyne.NewSize(w*scale, h*scale)
}
