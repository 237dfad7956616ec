package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// DefaultSamples returns the built-in table used when no Input file is
// configured.
func DefaultSamples() (xs, ys []float64) {
	return []float64{0, 1, 4, 5, 8}, []float64{0.5, 3, 4, 1, 2}
}

// ReadSamples reads the x and y columns of the text table fname.
func ReadSamples(fname string, xCol, yCol int) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, nil, err
	}

	xs, ys = cols[0], cols[1]
	if len(xs) < 2 {
		return nil, nil, fmt.Errorf(
			"Table '%s' has %d rows, but at least 2 are needed.", fname, len(xs),
		)
	}
	return xs, ys, nil
}
