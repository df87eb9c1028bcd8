package report

import (
	"fmt"
	"path/filepath"

	"github.com/iafilius/benchviz/src/bench"
	"github.com/iafilius/benchviz/src/config"
)

// Options controls figure text and size. Zero values take the defaults.
type Options struct {
	Title       string
	Width       int
	PanelHeight int
	Caption     bool
}

const (
	defaultWidth       = 1000
	defaultPanelHeight = 560
	minWidth           = 640
	minPanelHeight     = 280

	bannerHeight = 56
	footerHeight = 22
)

// DefaultOptions matches the figure produced for benchmark_results.csv.
func DefaultOptions(title string) Options {
	return Options{Title: title, Width: defaultWidth, PanelHeight: defaultPanelHeight, Caption: true}
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = config.DefaultTitle
	}
	if o.Width == 0 {
		o.Width = defaultWidth
	}
	if o.Width < minWidth {
		o.Width = minWidth
	}
	if o.PanelHeight == 0 {
		o.PanelHeight = defaultPanelHeight
	}
	if o.PanelHeight < minPanelHeight {
		o.PanelHeight = minPanelHeight
	}
	return o
}

// FigureSize returns the pixel size of the composite for o.
func (o Options) FigureSize() (int, int) {
	o = o.withDefaults()
	h := bannerHeight + 2*o.PanelHeight
	if o.Caption {
		h += footerHeight
	}
	return o.Width, h
}

func caption(t *bench.Table) string {
	return fmt.Sprintf("Source: %s (%d rows)", filepath.Base(t.Source), t.Len())
}
