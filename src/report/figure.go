// Package report turns a benchmark table into the two-panel throughput and
// latency figure and writes it as a PNG.
package report

import (
	"errors"
	"image"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/benchviz/src/bench"
)

// ErrEmptyTable is returned when there are no rows to plot.
var ErrEmptyTable = errors.New("report: table has no rows")

// Panel and axis text.
const (
	ThroughputTitle = "Throughput vs. Concurrency"
	LatencyTitle    = "Latency Percentiles vs. Concurrency"
	XLabel          = "Concurrency Level"
	ThroughputLabel = "Requests Per Second (RPS)"
	LatencyLabel    = "Latency (ms)"

	ThroughputSeries = "Throughput"
	P50Series        = "p50 (Median) Latency"
	P95Series        = "p95 Latency"
	P99Series        = "p99 Latency"
)

type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDashed
	LineDotted
)

func (l LineStyle) dashArray() []float64 {
	switch l {
	case LineDashed:
		return []float64{10, 5}
	case LineDotted:
		return []float64{2, 4}
	default:
		return nil
	}
}

type MarkerShape int

const (
	MarkerCircle MarkerShape = iota
	MarkerSquare
	MarkerTriangle
	MarkerCross
)

// Series is one line of a panel. X and Y are in table order.
type Series struct {
	Name   string
	X, Y   []float64
	Color  drawing.Color
	Line   LineStyle
	Marker MarkerShape
}

// Panel is one chart of the figure.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
	Legend bool
	Grid   bool
}

// Figure is the composite: a title over the stacked panels. Image is set by Render.
type Figure struct {
	Title   string
	Caption string
	Panels  []Panel
	Image   image.Image
}

var (
	colorThroughput = drawing.Color{R: 31, G: 90, B: 200, A: 255}
	colorP50        = drawing.Color{R: 30, G: 140, B: 60, A: 255}
	colorP95        = drawing.Color{R: 240, G: 150, B: 20, A: 255}
	colorP99        = drawing.Color{R: 210, G: 40, B: 40, A: 255}
)

// Build describes the figure for t without drawing it.
func Build(t *bench.Table, opts Options) (*Figure, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyTable
	}
	opts = opts.withDefaults()
	x := t.Concurrency()

	throughput := Panel{
		Title:  ThroughputTitle,
		XLabel: XLabel,
		YLabel: ThroughputLabel,
		Series: []Series{
			{Name: ThroughputSeries, X: x, Y: t.RPS(), Color: colorThroughput, Line: LineSolid, Marker: MarkerCircle},
		},
		Grid: true,
	}
	latency := Panel{
		Title:  LatencyTitle,
		XLabel: XLabel,
		YLabel: LatencyLabel,
		Series: []Series{
			{Name: P50Series, X: x, Y: t.P50(), Color: colorP50, Line: LineSolid, Marker: MarkerSquare},
			{Name: P95Series, X: x, Y: t.P95(), Color: colorP95, Line: LineDashed, Marker: MarkerTriangle},
			{Name: P99Series, X: x, Y: t.P99(), Color: colorP99, Line: LineDotted, Marker: MarkerCross},
		},
		Legend: true,
		Grid:   true,
	}
	fig := &Figure{Title: opts.Title, Panels: []Panel{throughput, latency}}
	if opts.Caption {
		fig.Caption = caption(t)
	}
	return fig, nil
}
