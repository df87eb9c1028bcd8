package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// renderBanner draws the figure title centred on a white strip.
func renderBanner(title string, w, h int) (image.Image, error) {
	r, err := chart.PNG(w, h)
	if err != nil {
		return nil, err
	}
	r.SetDPI(chart.DefaultDPI)
	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(w, 0)
	r.LineTo(w, h)
	r.LineTo(0, h)
	r.Close()
	r.Fill()
	if title != "" {
		f, err := chart.GetDefaultFont()
		if err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
		r.SetFont(f)
		r.SetFontSize(20)
		r.SetFontColor(chart.ColorBlack)
		tb := r.MeasureText(title)
		r.Text(title, (w-tb.Width())/2, (h+tb.Height())/2)
	}
	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// stack places parts top to bottom on a white canvas of width w.
func stack(w int, parts ...image.Image) *image.RGBA {
	h := 0
	for _, p := range parts {
		h += p.Bounds().Dy()
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	y := 0
	for _, p := range parts {
		b := p.Bounds()
		draw.Draw(out, image.Rect(0, y, b.Dx(), y+b.Dy()), p, b.Min, draw.Over)
		y += b.Dy()
	}
	return out
}

// drawCaption writes a small grey line of text at the bottom-left of img.
func drawCaption(img *image.RGBA, text string) {
	if text == "" {
		return
	}
	b := img.Bounds()
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 110, G: 110, B: 110, A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(b.Min.X + 10), Y: fixed.I(b.Max.Y - (footerHeight-face.Metrics().Ascent.Ceil())/2)},
	}
	d.DrawString(text)
}
