package interpolate

// Linear is a piecewise linear interpolator.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a strictly increasing sequence
// of points, xs, which take on the values given by vals. Both slices are
// copied.
//
// Lookups will occur in O(log |xs|), possibly faster depending on the access
// pattern and data layout.
func NewLinear(xs, vals []float64) (*Linear, error) {
	if err := checkTable("NewLinear", xs, vals); err != nil {
		return nil, err
	}
	xs, vals = copyTable(xs, vals)

	lin := &Linear{vals: vals}
	lin.xs.init(xs)
	return lin, nil
}

// Eval returns the interpolated value at x.
//
// Points outside the range of the table are extrapolated along the line
// through the two boundary points closest to them.
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.xs.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs.xs[i1], lin.xs.xs[i2]
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return v1 + (x-x1)*(v2-v1)/(x2-x1)
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(lin, xs, out)
}
