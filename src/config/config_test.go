package config

import "testing"

func TestDefault(t *testing.T) {
	c := Default()
	if c.InputPath != "benchmark_results.csv" {
		t.Fatalf("input = %q", c.InputPath)
	}
	if c.OutputPath != "benchmark_plot.png" {
		t.Fatalf("output = %q", c.OutputPath)
	}
	if c.Title != "gRPC Server Performance Benchmark" {
		t.Fatalf("title = %q", c.Title)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		in, out string
		wantErr bool
	}{
		{"ok", "a.csv", "b.png", false},
		{"empty input", " ", "b.png", true},
		{"empty output", "a.csv", "", true},
		{"same file", "dir/a.csv", "dir/./a.csv", true},
	}
	for _, c := range cases {
		err := Config{InputPath: c.in, OutputPath: c.out}.Validate()
		if (err != nil) != c.wantErr {
			t.Fatalf("%s: err=%v wantErr=%v", c.name, err, c.wantErr)
		}
	}
}
