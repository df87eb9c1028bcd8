// benchviz renders benchmark_results.csv (written by the gRPC benchmark
// client) into benchmark_plot.png and shows it in a window.
//
// The tool takes no arguments: both file names are fixed conventions relative
// to the working directory. The PNG is always written before any window is
// opened, so headless hosts still get the image.
//
// Exit status: 0 ok, 1 results file missing, 2 results file malformed,
// 3 rendering or writing the plot failed.
package main

import (
	"fmt"
	"os"

	"github.com/iafilius/benchviz/src/config"
	"github.com/iafilius/benchviz/src/pipeline"
)

func main() {
	cfg := config.Default()
	err := pipeline.Run(cfg, os.Stdout, fyneDisplay{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(pipeline.ExitCode(err))
}
