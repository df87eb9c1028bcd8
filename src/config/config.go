// Package config holds the fixed file-name conventions of the tool as explicit
// values so the loader and renderer can be pointed at temporary files in tests.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

const (
	// DefaultInputFile is the CSV written by the benchmark client.
	DefaultInputFile = "benchmark_results.csv"
	// DefaultOutputFile is the composite PNG written next to it.
	DefaultOutputFile = "benchmark_plot.png"
	// DefaultTitle is the figure's top-level title.
	DefaultTitle = "gRPC Server Performance Benchmark"
)

type Config struct {
	InputPath  string
	OutputPath string
	Title      string
	LogLevel   string // debug|info|warn|error
}

// Default returns the conventions used when the tool is run without arguments.
func Default() Config {
	return Config{
		InputPath:  DefaultInputFile,
		OutputPath: DefaultOutputFile,
		Title:      DefaultTitle,
		LogLevel:   "info",
	}
}

// Validate rejects configurations that would read nothing or overwrite the input.
func (c Config) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return errors.New("config: input path is empty")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return errors.New("config: output path is empty")
	}
	if filepath.Clean(c.InputPath) == filepath.Clean(c.OutputPath) {
		return errors.New("config: output path must differ from input path")
	}
	return nil
}
