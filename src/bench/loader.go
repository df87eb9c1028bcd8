package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

const utf8BOM = "\ufeff"

// Load reads the CSV at path. A missing file yields *MissingInputError; a bad
// header, unparsable value or header-only file yields *SchemaError.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if st, err := f.Stat(); err == nil && st.IsDir() {
		return nil, fmt.Errorf("open %s: is a directory", path)
	}
	return Parse(f, path)
}

// Parse reads benchmark rows from r. source is used in error messages and
// recorded on the returned table.
func Parse(r io.Reader, source string) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Path: source, Reason: "missing header row"}
		}
		return nil, readError(source, err)
	}
	idx, err := columnIndex(source, header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(source, err)
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRow(source, line, rec, idx)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Path: source, Reason: "header only", Err: ErrNoRows}
	}
	return &Table{Source: source, rows: rows}, nil
}

func readError(source string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &SchemaError{Path: source, Line: pe.Line, Reason: "malformed CSV", Err: pe.Err}
	}
	return fmt.Errorf("read %s: %w", source, err)
}

// columnIndex maps each required column to its position in the header.
// Extra columns are ignored.
func columnIndex(source string, header []string) (map[string]int, error) {
	idx := make(map[string]int, len(RequiredColumns))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if i == 0 {
			name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		}
		if !isRequired(name) {
			continue
		}
		if _, dup := idx[name]; dup {
			return nil, &SchemaError{Path: source, Line: 1, Column: name, Reason: "duplicate column"}
		}
		idx[name] = i
	}
	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Path: source, Line: 1, Column: strings.Join(missing, ", "), Reason: "required column missing"}
	}
	return idx, nil
}

func isRequired(name string) bool {
	for _, c := range RequiredColumns {
		if c == name {
			return true
		}
	}
	return false
}

func parseRow(source string, line int, rec []string, idx map[string]int) (Row, error) {
	var row Row
	cell := func(col string) string { return strings.TrimSpace(rec[idx[col]]) }
	bad := func(col, reason string, err error) error {
		return &SchemaError{Path: source, Line: line, Column: col, Value: cell(col), Reason: reason, Err: err}
	}

	raw := cell(ColConcurrency)
	if raw == "" {
		return row, bad(ColConcurrency, "empty value", nil)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return row, bad(ColConcurrency, "not an integer", err)
	}
	if n <= 0 {
		return row, bad(ColConcurrency, "must be positive", nil)
	}
	row.Concurrency = n

	metrics := []struct {
		col string
		dst *float64
	}{
		{ColRPS, &row.RPS},
		{ColP50, &row.P50LatencyMs},
		{ColP95, &row.P95LatencyMs},
		{ColP99, &row.P99LatencyMs},
	}
	for _, m := range metrics {
		raw := cell(m.col)
		if raw == "" {
			return row, bad(m.col, "empty value", nil)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return row, bad(m.col, "not a number", err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return row, bad(m.col, "not a finite number", nil)
		}
		if v < 0 {
			return row, bad(m.col, "must not be negative", nil)
		}
		*m.dst = v
	}
	return row, nil
}
