/*package interpolate implements 1D interpolators over strictly increasing
tables of points: piecewise linear, natural cubic splines and open-uniform
B-splines of arbitrary degree.
*/
package interpolate

// Interpolator is a 1D interpolator. Once constructed (and, for a Spline,
// computed) an Interpolator is never modified, so it may be shared between
// goroutines.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Linear{}
	_ Interpolator = &BSpline{}
)

// evalAll is the shared body of every EvalAll method.
func evalAll(in Interpolator, xs []float64, out [][]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = in.Eval(x)
	}
	return out[0]
}
