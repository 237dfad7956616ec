package interpolate

import (
	"fmt"
)

type splineState int

const (
	splineUninitialized splineState = iota
	splineReady
)

// SplineCoeffs holds the polynomial coefficients of a natural cubic spline.
// On the interval [xs[i], xs[i+1]] the spline is
//
//	S_i(h) = A[i] + B[i]*h + C[i]*h^2 + D[i]*h^3,  h = x - xs[i].
//
// A and C have one entry per point, B and D one entry per interval.
type SplineCoeffs struct {
	A, B, C, D []float64
}

// Spline represents a 1D natural cubic spline which can be used to
// interpolate between points.
//
// A Spline is created in an uninitialized state and its coefficients must be
// computed with Compute before it can be evaluated.
type Spline struct {
	xs     searcher
	ys     []float64
	solver Solver

	state  splineState
	coeffs SplineCoeffs
}

// NewSpline creates a spline based off a table of x and y values. The x
// values must be strictly increasing. Both slices are copied.
//
// solver is used by Compute to find the spline's second derivatives. If it is
// nil, ThomasSolver is used.
func NewSpline(xs, ys []float64, solver Solver) (*Spline, error) {
	if err := checkTable("NewSpline", xs, ys); err != nil {
		return nil, err
	}
	if solver == nil {
		solver = ThomasSolver{}
	}
	xs, ys = copyTable(xs, ys)

	sp := &Spline{ys: ys, solver: solver}
	sp.xs.init(xs)
	return sp, nil
}

// Compute calculates the coefficients of the spline. It must be called before
// the spline is evaluated. If it fails, the spline is left uninitialized.
func (sp *Spline) Compute() error {
	coeffs, err := sp.calcCoeffs()
	if err != nil {
		sp.state = splineUninitialized
		sp.coeffs = SplineCoeffs{}
		return err
	}
	sp.coeffs = coeffs
	sp.state = splineReady
	return nil
}

// Ready returns true if the spline's coefficients have been computed.
func (sp *Spline) Ready() bool { return sp.state == splineReady }

// Coeffs returns a copy of the spline's coefficients, or an error wrapping
// ErrNotComputed if Compute has not succeeded yet.
func (sp *Spline) Coeffs() (SplineCoeffs, error) {
	if !sp.Ready() {
		return SplineCoeffs{}, fmt.Errorf("%w: Spline.Coeffs()", ErrNotComputed)
	}
	c := sp.coeffs
	return SplineCoeffs{
		A: append([]float64(nil), c.A...),
		B: append([]float64(nil), c.B...),
		C: append([]float64(nil), c.C...),
		D: append([]float64(nil), c.D...),
	}, nil
}

// Eval computes the value of the spline at the given point. Points outside
// the range of the table are extrapolated with the polynomial of the nearest
// interval.
//
// Eval panics if Compute has not been called.
func (sp *Spline) Eval(x float64) float64 {
	return sp.Diff(x, 0)
}

// EvalAll evaluates the spline at all the given x values. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	sp.mustBeReady("EvalAll")
	return evalAll(sp, xs, out)
}

// Diff computes the derivative of spline at the given point to the
// specified order. Order 0 is the value of the spline.
//
// Diff panics if Compute has not been called.
func (sp *Spline) Diff(x float64, order int) float64 {
	sp.mustBeReady("Diff")

	i := sp.xs.search(x)
	h := x - sp.xs.xs[i]
	c := &sp.coeffs
	a, b, cc, d := c.A[i], c.B[i], c.C[i], c.D[i]
	switch order {
	case 0:
		return a + b*h + cc*h*h + d*h*h*h
	case 1:
		return b + 2*cc*h + 3*d*h*h
	case 2:
		return 2*cc + 6*d*h
	case 3:
		return 6 * d
	default:
		return 0
	}
}

func (sp *Spline) mustBeReady(method string) {
	if sp.state != splineReady {
		panic(fmt.Errorf("%w: Spline.%s() called before Spline.Compute()",
			ErrNotComputed, method))
	}
}

// system builds the linear system whose solution is the C coefficients of
// the natural spline. The first and last rows pin C to zero.
func (sp *Spline) system() (sys *TriDiagSystem, hs []float64) {
	xs, ys := sp.xs.xs, sp.ys
	n := len(xs)

	hs = make([]float64, n-1)
	for i := range hs {
		hs[i] = xs[i+1] - xs[i]
	}

	sys = NewTriDiagSystem(n)
	sys.Diag[0], sys.Diag[n-1] = 1, 1
	for i := 1; i < n-1; i++ {
		sys.Sub[i] = hs[i-1]
		sys.Diag[i] = 2 * (hs[i-1] + hs[i])
		sys.Super[i] = hs[i]
		sys.RHS[i] = 3*(ys[i+1]-ys[i])/hs[i] - 3*(ys[i]-ys[i-1])/hs[i-1]
	}
	return sys, hs
}

func (sp *Spline) calcCoeffs() (SplineCoeffs, error) {
	sys, hs := sp.system()
	cs, err := sp.solver.Solve(sys)
	if err != nil {
		return SplineCoeffs{}, err
	}

	n := len(sp.ys)
	as := make([]float64, n)
	copy(as, sp.ys)
	bs, ds := make([]float64, n-1), make([]float64, n-1)

	for i := n - 2; i >= 0; i-- {
		h := hs[i]
		bs[i] = (as[i+1]-as[i])/h - h*(cs[i+1]+2*cs[i])/3
		ds[i] = (cs[i+1] - cs[i]) / (3 * h)
	}

	return SplineCoeffs{A: as, B: bs, C: cs, D: ds}, nil
}
