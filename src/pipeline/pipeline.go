// Package pipeline runs the tool end to end: load the results table, print
// it, render and write the figure, then hand the image to a display.
//
// Display is the last step and is best-effort: by the time it runs the PNG
// is already on disk, and a failure to show it is logged, not returned.
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/iafilius/benchviz/src/bench"
	"github.com/iafilius/benchviz/src/config"
	"github.com/iafilius/benchviz/src/logging"
	"github.com/iafilius/benchviz/src/report"
)

// Exit codes returned by ExitCode.
const (
	ExitOK           = 0
	ExitMissingInput = 1
	ExitSchema       = 2
	ExitFailure      = 3
)

// Run executes the pipeline for cfg. Progress and the loaded table are
// written to out; disp may be report.NoDisplay{} for headless use.
func Run(cfg config.Config, out io.Writer, disp report.Displayer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.SetLogLevel(cfg.LogLevel); err != nil {
		logging.Warnf("%v; keeping %s", err, logging.GetLogLevel())
	}

	fmt.Fprintf(out, "--- Reading benchmark data from '%s' ---\n", cfg.InputPath)
	tbl, err := bench.Load(cfg.InputPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "--- Benchmark Data ---")
	if _, err := tbl.WriteTo(out); err != nil {
		return fmt.Errorf("print table: %w", err)
	}
	for _, i := range tbl.PercentileOrderViolations() {
		r := tbl.Row(i)
		logging.Warnf("row %d (concurrency=%d): percentiles out of order p50=%g p95=%g p99=%g; plotted as given",
			i, r.Concurrency, r.P50LatencyMs, r.P95LatencyMs, r.P99LatencyMs)
	}

	fmt.Fprintln(out, "\n--- Generating Visualization ---")
	fig, err := report.Render(tbl, report.DefaultOptions(cfg.Title))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := report.WriteFile(fig, cfg.OutputPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "Plot saved to '%s'\n", cfg.OutputPath)

	if disp == nil {
		return nil
	}
	if err := disp.Show(fig.Title, fig.Image); err != nil {
		if errors.Is(err, report.ErrNoDisplay) {
			logging.Infof("no display available; open %s to view the plot", cfg.OutputPath)
		} else {
			logging.Warnf("display plot: %v", err)
		}
	}
	return nil
}

// ExitCode maps a Run error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var mi *bench.MissingInputError
	if errors.As(err, &mi) {
		return ExitMissingInput
	}
	var se *bench.SchemaError
	if errors.As(err, &se) {
		return ExitSchema
	}
	return ExitFailure
}
