// Package source loads sample sequences from delimited text, spreadsheet and
// WAV files.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultColumn is the value column read from tabular sources.
const DefaultColumn = "value"

var (
	ErrNotFound          = errors.New("source: data file not found")
	ErrUnsupportedFormat = errors.New("source: unsupported file format")
	ErrColumnMissing     = errors.New("source: value column not found")
	ErrMalformedRow      = errors.New("source: malformed row")
	ErrMalformedHeader   = errors.New("source: malformed file header")
	ErrEmpty             = errors.New("source: no samples")
)

// Signal is a loaded sample sequence.
type Signal struct {
	Samples []float64
	// SampleRate in Hz when the container declares one (WAV), otherwise 0.
	SampleRate float64
}

// Load reads the samples stored at path. The format is chosen by extension:
// .csv, .txt and .tsv are delimited text, .xlsx is read from its first sheet
// and .wav yields channel 0. column names the value column of tabular sources;
// the empty string selects [DefaultColumn].
func Load(path, column string) (Signal, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Signal{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Signal{}, fmt.Errorf("source: stat %s: %w", path, err)
	}

	if column == "" {
		column = DefaultColumn
	}

	var (
		sig Signal
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		sig, err = loadDelimited(path, column, ',')
	case ".tsv":
		sig, err = loadDelimited(path, column, '\t')
	case ".xlsx":
		sig, err = loadSpreadsheet(path, column)
	case ".wav":
		sig, err = loadWAV(path)
	default:
		return Signal{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Signal{}, err
	}

	if len(sig.Samples) == 0 {
		return Signal{}, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return sig, nil
}

// columnIndex finds column in header, ignoring case and surrounding space.
func columnIndex(header []string, column string) (int, error) {
	want := strings.ToLower(strings.TrimSpace(column))
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnMissing, column)
}

// parseRows converts the value column of data rows (header excluded) to
// floats. row numbers in errors are 1-based file rows.
func parseRows(rows [][]string, idx int) ([]float64, error) {
	out := make([]float64, 0, len(rows))
	for i, row := range rows {
		if idx >= len(row) {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrMalformedRow, i+2, len(row))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedRow, i+2, err)
		}
		out = append(out, v)
	}
	return out, nil
}
