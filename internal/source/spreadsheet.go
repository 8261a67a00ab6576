package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

func loadSpreadsheet(path, column string) (Signal, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Signal{}, fmt.Errorf("source: open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Signal{}, fmt.Errorf("%w: workbook has no sheets", ErrEmpty)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Signal{}, fmt.Errorf("source: read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Signal{}, ErrEmpty
	}

	idx, err := columnIndex(rows[0], column)
	if err != nil {
		return Signal{}, err
	}

	// GetRows drops trailing empty rows; skip blank ones in between.
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		data = append(data, row)
	}

	samples, err := parseRows(data, idx)
	if err != nil {
		return Signal{}, err
	}
	return Signal{Samples: samples}, nil
}
