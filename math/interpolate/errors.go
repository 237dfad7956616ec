package interpolate

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is returned by constructors given a table they cannot
	// interpolate: mismatched lengths, fewer than two points, x values which
	// are not strictly increasing, non-finite values, or a B-spline degree
	// which is too large for the number of points.
	ErrInvalidInput = errors.New("interpolate: invalid input")

	// ErrNotComputed is reported when a Spline is used before Compute has
	// succeeded.
	ErrNotComputed = errors.New("interpolate: spline coefficients not computed")

	// ErrNumericalFailure is returned when a linear system could not be
	// solved. For strictly increasing x values this does not happen.
	ErrNumericalFailure = errors.New("interpolate: numerical failure")
)

// checkTable validates a table of points given to the constructor called
// name.
func checkTable(name string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf(
			"%w: table given to %s() has len(xs) = %d but len(ys) = %d",
			ErrInvalidInput, name, len(xs), len(ys),
		)
	} else if len(xs) <= 1 {
		return fmt.Errorf(
			"%w: table given to %s() has length of %d",
			ErrInvalidInput, name, len(xs),
		)
	}

	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) ||
			math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return fmt.Errorf(
				"%w: table given to %s() has non-finite point (%g, %g) at %d",
				ErrInvalidInput, name, xs[i], ys[i], i,
			)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return fmt.Errorf(
				"%w: table given to %s() not strictly increasing at %d",
				ErrInvalidInput, name, i,
			)
		}
	}
	return nil
}

// copyTable returns copies of xs and ys which the caller may keep.
func copyTable(xs, ys []float64) ([]float64, []float64) {
	cxs, cys := make([]float64, len(xs)), make([]float64, len(ys))
	copy(cxs, xs)
	copy(cys, ys)
	return cxs, cys
}
