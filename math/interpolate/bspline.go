package interpolate

import (
	"fmt"
)

// BSpline is a B-spline curve of arbitrary degree whose control points are
// the points of a table. Unlike Spline and Linear, the curve does not
// generally pass through its control points; it only passes through the first
// and last ones.
//
// The curve is parameterized by u in [0, 1] over an open-uniform knot vector.
// Table positions are mapped linearly onto u.
type BSpline struct {
	xs, ys []float64
	degree int
	knots  []float64
}

// OpenUniformKnots returns the open-uniform knot vector for n control points
// and a spline of the given degree. It has degree + n + 1 entries: the first
// degree + 1 are 0, the last degree + 1 are 1 and the remaining ones are
// uniformly spaced between the two.
//
// An error wrapping ErrInvalidInput is returned unless 0 <= degree < n.
func OpenUniformKnots(degree, n int) ([]float64, error) {
	if degree < 0 {
		return nil, fmt.Errorf(
			"%w: B-spline degree %d is negative", ErrInvalidInput, degree,
		)
	} else if n <= degree {
		return nil, fmt.Errorf(
			"%w: B-spline of degree %d needs more than %d control points, "+
				"but only %d were given", ErrInvalidInput, degree, degree, n,
		)
	}

	m := degree + n + 1
	knots := make([]float64, m)

	end := m - (degree + 1)
	for i := end; i < m; i++ {
		knots[i] = 1
	}

	num := m - 2*(degree+1) + 1
	dx := 1 / float64(num)
	for i := degree + 1; i < end; i++ {
		knots[i] = knots[i-1] + dx
	}

	return knots, nil
}

// NewBSpline creates a B-spline of the given degree which uses the points of
// a table as its control points. The x values must be strictly increasing and
// there must be more points than the degree. Both slices are copied.
func NewBSpline(degree int, xs, ys []float64) (*BSpline, error) {
	if err := checkTable("NewBSpline", xs, ys); err != nil {
		return nil, err
	}
	knots, err := OpenUniformKnots(degree, len(xs))
	if err != nil {
		return nil, err
	}
	xs, ys = copyTable(xs, ys)

	return &BSpline{xs: xs, ys: ys, degree: degree, knots: knots}, nil
}

// Degree returns the degree of the spline's basis functions.
func (bs *BSpline) Degree() int { return bs.degree }

// Knots returns a copy of the spline's knot vector.
func (bs *BSpline) Knots() []float64 {
	return append([]float64(nil), bs.knots...)
}

// param maps x onto the curve parameter u. ok is false if x lies outside the
// open interval spanned by the table, in which case first reports which end
// it is on.
func (bs *BSpline) param(x float64) (u float64, ok, first bool) {
	lo, hi := bs.xs[0], bs.xs[len(bs.xs)-1]
	if x <= lo {
		return 0, false, true
	} else if x >= hi {
		return 1, false, false
	}
	u = (x - lo) / (hi - lo)
	if u >= 1 {
		// x can sit an ulp below hi and still round to u = 1, which lies
		// outside every half-open knot span.
		return 1, false, false
	}
	return u, true, false
}

// Eval evaluates the spline at the position x. Points at or beyond the ends
// of the table take the value of the first or last control point.
func (bs *BSpline) Eval(x float64) float64 {
	u, ok, first := bs.param(x)
	if !ok {
		if first {
			return bs.ys[0]
		}
		return bs.ys[len(bs.ys)-1]
	}

	basis := make([]float64, len(bs.knots)-1)
	bs.basisAt(bs.degree, u, basis)

	y := 0.0
	for i := range bs.ys {
		y += bs.ys[i] * basis[i]
	}
	return y
}

// EvalAll evaluates the spline at all the given x values. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
func (bs *BSpline) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(bs, xs, out)
}

// Curve returns the point on the curve at the parameter u, reconstructing
// both coordinates from the control points. u is clamped to [0, 1].
func (bs *BSpline) Curve(u float64) (x, y float64) {
	n := len(bs.xs)
	if u <= 0 {
		return bs.xs[0], bs.ys[0]
	} else if u >= 1 {
		return bs.xs[n-1], bs.ys[n-1]
	}

	basis := make([]float64, len(bs.knots)-1)
	bs.basisAt(bs.degree, u, basis)
	for i := 0; i < n; i++ {
		x += bs.xs[i] * basis[i]
		y += bs.ys[i] * basis[i]
	}
	return x, y
}

// Sample returns n points along the curve at uniformly spaced parameter
// values, starting at the first control point and ending at the last.
func (bs *BSpline) Sample(n int) (xs, ys []float64) {
	if n <= 0 {
		return []float64{}, []float64{}
	}
	xs, ys = make([]float64, n), make([]float64, n)
	if n == 1 {
		xs[0], ys[0] = bs.Curve(0)
		return xs, ys
	}
	for k := 0; k < n; k++ {
		xs[k], ys[k] = bs.Curve(float64(k) / float64(n-1))
	}
	return xs, ys
}

// BasisValue returns the value of the i-th basis function at the position
// x. Beyond the ends of the table the basis functions take their values at
// the closest end, so only the first (or last) one is non-zero there.
//
// BasisValue panics if i is not the index of a control point.
func (bs *BSpline) BasisValue(x float64, i int) float64 {
	n := len(bs.xs)
	if i < 0 || i >= n {
		panic(fmt.Sprintf(
			"Basis index %d given to BSpline.BasisValue() out of range [0, %d).",
			i, n,
		))
	}

	u, ok, first := bs.param(x)
	if !ok {
		if (first && i == 0) || (!first && i == n-1) {
			return 1
		}
		return 0
	}
	return bs.basis(i, bs.degree, u)
}

// BasisValues evaluates the i-th basis function at every x value. If an
// output array is given, the output is written to that array.
func (bs *BSpline) BasisValues(xs []float64, i int, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for j, x := range xs {
		out[0][j] = bs.BasisValue(x, i)
	}
	return out[0]
}

// basis evaluates the basis function b_{j,k}(u) with the Cox-de Boor
// recursion. Each term whose knot span is empty contributes zero.
func (bs *BSpline) basis(j, k int, u float64) float64 {
	knots := bs.knots
	if k == 0 {
		if knots[j] <= u && u < knots[j+1] {
			return 1
		}
		return 0
	}

	w1, w2 := 0.0, 0.0
	if den := knots[j+k] - knots[j]; den != 0 {
		w1 = (u - knots[j]) / den * bs.basis(j, k-1, u)
	}
	if den := knots[j+k+1] - knots[j+1]; den != 0 {
		w2 = (knots[j+k+1] - u) / den * bs.basis(j+1, k-1, u)
	}
	return w1 + w2
}

// basisAt writes b_{j,k}(u) for every j that has one into out, which must
// have len(knots) - 1 elements. It tabulates the recursion in basis from the
// bottom up, doing the same arithmetic in the same order, so the results are
// identical.
func (bs *BSpline) basisAt(k int, u float64, out []float64) {
	knots := bs.knots
	m := len(knots)
	if len(out) != m-1 {
		panic(fmt.Sprintf(
			"len(out) = %d given to BSpline.basisAt(), but need %d.",
			len(out), m-1,
		))
	}

	for j := 0; j < m-1; j++ {
		if knots[j] <= u && u < knots[j+1] {
			out[j] = 1
		} else {
			out[j] = 0
		}
	}

	// After pass kk, out[j] holds b_{j,kk} for j < m-1-kk.
	for kk := 1; kk <= k; kk++ {
		for j := 0; j < m-1-kk; j++ {
			w1, w2 := 0.0, 0.0
			if den := knots[j+kk] - knots[j]; den != 0 {
				w1 = (u - knots[j]) / den * out[j]
			}
			if den := knots[j+kk+1] - knots[j+1]; den != 0 {
				w2 = (knots[j+kk+1] - u) / den * out[j+1]
			}
			out[j] = w1 + w2
		}
		out[m-1-kk] = 0
	}
}
