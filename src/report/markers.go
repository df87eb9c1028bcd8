package report

import (
	chart "github.com/wcharczuk/go-chart/v2"
)

const markerRadius = 5

// markerSeries is a continuous line series that draws a shaped marker at each
// point. go-chart only knows round dots, and the latency panel needs the three
// percentiles to differ by marker as well as by colour and dash pattern.
type markerSeries struct {
	chart.ContinuousSeries
	Marker MarkerShape
}

var _ chart.Series = markerSeries{}

func newMarkerSeries(s Series) markerSeries {
	return markerSeries{
		ContinuousSeries: chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				StrokeColor:     s.Color,
				StrokeWidth:     2,
				StrokeDashArray: s.Line.dashArray(),
			},
		},
		Marker: s.Marker,
	}
}

// Render draws the connecting line in table order, then the markers on top.
func (ms markerSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := ms.Style.InheritFrom(defaults)
	line := style
	line.DotWidth = 0
	line.DotWidthProvider = nil
	line.DotColorProvider = nil
	chart.Draw.LineSeries(r, canvasBox, xrange, yrange, line, ms.ContinuousSeries)

	col := style.GetStrokeColor()
	r.SetStrokeDashArray(nil)
	r.SetStrokeColor(col)
	r.SetFillColor(col)
	r.SetStrokeWidth(1)
	for i := 0; i < ms.Len(); i++ {
		vx, vy := ms.GetValues(i)
		x := canvasBox.Left + xrange.Translate(vx)
		y := canvasBox.Bottom - yrange.Translate(vy)
		drawMarker(r, ms.Marker, x, y, markerRadius)
	}
}

func drawMarker(r chart.Renderer, shape MarkerShape, x, y, s int) {
	switch shape {
	case MarkerSquare:
		s = s * 4 / 5
		r.MoveTo(x-s, y-s)
		r.LineTo(x+s, y-s)
		r.LineTo(x+s, y+s)
		r.LineTo(x-s, y+s)
		r.Close()
		r.FillStroke()
	case MarkerTriangle:
		r.MoveTo(x, y-s)
		r.LineTo(x+s, y+s)
		r.LineTo(x-s, y+s)
		r.Close()
		r.FillStroke()
	case MarkerCross:
		r.SetStrokeWidth(2)
		r.MoveTo(x-s, y-s)
		r.LineTo(x+s, y+s)
		r.MoveTo(x-s, y+s)
		r.LineTo(x+s, y-s)
		r.Stroke()
		r.SetStrokeWidth(1)
	default:
		r.Circle(float64(s), x, y)
		r.FillStroke()
	}
}
