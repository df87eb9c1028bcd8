package report

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/iafilius/benchviz/src/bench"
	"github.com/iafilius/benchviz/src/logging"
)

// Render builds the figure for t and draws it into fig.Image.
func Render(t *bench.Table, opts Options) (*Figure, error) {
	defer logging.TimeTrack(time.Now(), "render figure")
	fig, err := Build(t, opts)
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	banner, err := renderBanner(fig.Title, opts.Width, bannerHeight)
	if err != nil {
		return nil, fmt.Errorf("render title: %w", err)
	}
	parts := []image.Image{banner}
	for _, p := range fig.Panels {
		img, err := renderPanel(p, opts.Width, opts.PanelHeight)
		if err != nil {
			return nil, err
		}
		parts = append(parts, img)
	}
	if fig.Caption != "" {
		parts = append(parts, image.NewRGBA(image.Rect(0, 0, opts.Width, footerHeight)))
	}
	out := stack(opts.Width, parts...)
	drawCaption(out, fig.Caption)
	fig.Image = out
	logging.Debugf("rendered %dx%d figure with %d panels", out.Bounds().Dx(), out.Bounds().Dy(), len(fig.Panels))
	return fig, nil
}

// WriteFile encodes the figure as PNG and writes it to path, replacing any
// existing file. Nothing is written if encoding fails.
func WriteFile(fig *Figure, path string) error {
	if fig == nil || fig.Image == nil {
		return errors.New("report: figure has not been rendered")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, fig.Image); err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
