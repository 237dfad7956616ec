package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteColumns writes equal-length columns to wr as CSV rows. If header is
// non-nil it is written as the first row.
func WriteColumns(wr io.Writer, header []string, cols ...[]float64) error {
	if header != nil && len(header) != len(cols) {
		return fmt.Errorf(
			"%d column names given for %d columns.", len(header), len(cols),
		)
	}

	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
	}
	for i := range cols {
		if len(cols[i]) != rows {
			return fmt.Errorf(
				"Column %d has length %d, but column 0 has length %d.",
				i, len(cols[i]), rows,
			)
		}
	}

	w := csv.NewWriter(wr)
	if header != nil {
		if err := w.Write(header); err != nil {
			return err
		}
	}

	record := make([]string, len(cols))
	for i := 0; i < rows; i++ {
		for j := range cols {
			record[j] = strconv.FormatFloat(cols[j][i], 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteColumnsFile writes columns to the file fname with WriteColumns.
func WriteColumnsFile(fname string, header []string, cols ...[]float64) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	if err := WriteColumns(f, header, cols...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
