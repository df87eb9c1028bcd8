// Package bench loads aggregated benchmark results (one row per concurrency
// level) into an immutable in-memory table.
package bench

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// Column names required in the input header.
const (
	ColConcurrency = "concurrency"
	ColRPS         = "rps"
	ColP50         = "p50_latency_ms"
	ColP95         = "p95_latency_ms"
	ColP99         = "p99_latency_ms"
)

// RequiredColumns lists the header names Load looks up, in display order.
var RequiredColumns = []string{ColConcurrency, ColRPS, ColP50, ColP95, ColP99}

// Row is one measurement at a single concurrency level.
type Row struct {
	Concurrency  int
	RPS          float64
	P50LatencyMs float64
	P95LatencyMs float64
	P99LatencyMs float64
}

// Table is the ordered set of rows read from one file. Rows keep file order;
// nothing is sorted or deduplicated.
type Table struct {
	Source string
	rows   []Row
}

// NewTable builds a table from already validated rows. The slice is copied.
func NewTable(source string, rows []Row) *Table {
	cp := make([]Row, len(rows))
	copy(cp, rows)
	return &Table{Source: source, rows: cp}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns the i-th row in file order.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Rows returns a copy of all rows.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *Table) column(f func(Row) float64) []float64 {
	out := make([]float64, t.Len())
	for i := range out {
		out[i] = f(t.rows[i])
	}
	return out
}

func (t *Table) Concurrency() []float64 {
	return t.column(func(r Row) float64 { return float64(r.Concurrency) })
}
func (t *Table) RPS() []float64 { return t.column(func(r Row) float64 { return r.RPS }) }
func (t *Table) P50() []float64 { return t.column(func(r Row) float64 { return r.P50LatencyMs }) }
func (t *Table) P95() []float64 { return t.column(func(r Row) float64 { return r.P95LatencyMs }) }
func (t *Table) P99() []float64 { return t.column(func(r Row) float64 { return r.P99LatencyMs }) }

// PercentileOrderViolations returns the indexes of rows where p50 <= p95 <= p99
// does not hold. Such rows are kept as-is; callers may only warn about them.
func (t *Table) PercentileOrderViolations() []int {
	var out []int
	for i := 0; i < t.Len(); i++ {
		r := t.rows[i]
		if r.P50LatencyMs > r.P95LatencyMs || r.P95LatencyMs > r.P99LatencyMs {
			out = append(out, i)
		}
	}
	return out
}

// WriteTo prints the table as aligned columns with a leading row index.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, c := range RequiredColumns {
		fmt.Fprintf(tw, "%s\t", c)
	}
	fmt.Fprintln(tw)
	for i := 0; i < t.Len(); i++ {
		r := t.rows[i]
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t\n", i, r.Concurrency,
			formatValue(r.RPS), formatValue(r.P50LatencyMs), formatValue(r.P95LatencyMs), formatValue(r.P99LatencyMs))
	}
	err := tw.Flush()
	return cw.n, err
}

func formatValue(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
