package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

func loadDelimited(path, column string, comma rune) (Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return Signal{}, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	return readDelimited(f, column, comma)
}

func readDelimited(r io.Reader, column string, comma rune) (Signal, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Signal{}, ErrEmpty
	}
	if err != nil {
		return Signal{}, fmt.Errorf("%w: header: %w", ErrMalformedRow, err)
	}

	idx, err := columnIndex(header, column)
	if err != nil {
		return Signal{}, err
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return Signal{}, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}

	samples, err := parseRows(rows, idx)
	if err != nil {
		return Signal{}, err
	}
	return Signal{Samples: samples}, nil
}
