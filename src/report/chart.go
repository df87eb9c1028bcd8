package report

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var gridStyle = chart.Style{
	StrokeColor: drawing.Color{R: 210, G: 210, B: 210, A: 255},
	StrokeWidth: 1,
}

// panelChart maps a Panel onto a go-chart chart of the given size. Both axes
// carry explicit ticks; go-chart refuses zero-width ranges, which a single
// row or a constant column would otherwise produce.
func panelChart(p Panel, w, h int) chart.Chart {
	var xs, ys [][]float64
	series := make([]chart.Series, 0, len(p.Series))
	for _, s := range p.Series {
		xs = append(xs, s.X)
		ys = append(ys, s.Y)
		series = append(series, newMarkerSeries(s))
	}
	xAxis := chart.XAxis{
		Name:  p.XLabel,
		Ticks: axisTicks(false, xs...),
	}
	yAxis := chart.YAxis{
		Name:  p.YLabel,
		Ticks: axisTicks(true, ys...),
	}
	if p.Grid {
		xAxis.GridMajorStyle = gridStyle
		yAxis.GridMajorStyle = gridStyle
	} else {
		xAxis.GridMajorStyle = chart.Hidden()
		xAxis.GridMinorStyle = chart.Hidden()
		yAxis.GridMajorStyle = chart.Hidden()
		yAxis.GridMinorStyle = chart.Hidden()
	}
	ch := chart.Chart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontSize: 14},
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 24, Right: 20, Bottom: 20}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	if p.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch
}

// renderPanel draws p into a w x h image.
func renderPanel(p Panel, w, h int) (image.Image, error) {
	ch := panelChart(p, w, h)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", p.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", p.Title, err)
	}
	return img, nil
}
