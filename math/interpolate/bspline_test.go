package interpolate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// grevilleTable returns n control points whose x values sit at the Greville
// abscissae of the open-uniform knot vector, scaled onto [x0, x1]. B-splines
// reproduce linear functions exactly over such points.
func grevilleTable(t *testing.T, degree, n int, x0, x1 float64) []float64 {
	knots, err := OpenUniformKnots(degree, n)
	require.NoError(t, err)

	xs := make([]float64, n)
	for i := range xs {
		g := 0.0
		for j := i + 1; j <= i+degree; j++ {
			g += knots[j]
		}
		xs[i] = x0 + (x1-x0)*g/float64(degree)
	}
	return xs
}

func TestOpenUniformKnots(t *testing.T) {
	table := []struct {
		degree, n int
		knots     []float64
	}{
		{2, 4, []float64{0, 0, 0, 0.5, 1, 1, 1}},
		{3, 6, []float64{0, 0, 0, 0, 0.3333333333333333, 0.6666666666666666, 1, 1, 1, 1}},
		{0, 4, []float64{0, 0.25, 0.5, 0.75, 1}},
		{1, 2, []float64{0, 0, 1, 1}},
		{3, 4, []float64{0, 0, 0, 0, 1, 1, 1, 1}},
		{1, 5, []float64{0, 0, 0.25, 0.5, 0.75, 1, 1}},
	}

	for i, test := range table {
		knots, err := OpenUniformKnots(test.degree, test.n)
		require.NoError(t, err)
		if !floats.EqualApprox(knots, test.knots, 1e-15) {
			t.Errorf("%d) Expected knots %v. Got %v.", i+1, test.knots, knots)
		}
		assert.Len(t, knots, test.degree+test.n+1)
	}

	for _, bad := range [][2]int{{4, 4}, {5, 3}, {-1, 3}} {
		_, err := OpenUniformKnots(bad[0], bad[1])
		assert.ErrorIs(t, err, ErrInvalidInput, "degree %d, n %d", bad[0], bad[1])
	}
}

func TestNewBSplineInvalid(t *testing.T) {
	_, err := NewBSpline(5, refXs, refYs)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewBSpline(-1, refXs, refYs)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewBSpline(2, refXs, refYs[1:])
	assert.ErrorIs(t, err, ErrInvalidInput)

	bs, err := NewBSpline(4, refXs, refYs)
	require.NoError(t, err)
	assert.Equal(t, 4, bs.Degree())
}

func TestBasisPartitionOfUnity(t *testing.T) {
	for degree := 0; degree <= 4; degree++ {
		bs, err := NewBSpline(degree, linspace(0, 1, 8), make([]float64, 8))
		require.NoError(t, err)

		for _, u := range []float64{0, 0.01, 0.2, 0.5, 0.73, 0.999} {
			sum := 0.0
			for i := 0; i < 8; i++ {
				b := bs.basis(i, degree, u)
				assert.True(t, b >= 0, "degree %d, u %g, i %d", degree, u, i)
				sum += b
			}
			assert.InDelta(t, 1, sum, 1e-12, "degree %d, u %g", degree, u)
		}

		for i := 0; i < 8; i++ {
			assert.Equal(t, 0.0, bs.basis(i, degree, 1), "u = 1 is outside every span")
		}
	}
}

func TestBasisTableMatchesRecursion(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for degree := 0; degree <= 5; degree++ {
		n := degree + 2 + rng.Intn(6)
		xs, ys := randomTable(rng, n)
		bs, err := NewBSpline(degree, xs, ys)
		require.NoError(t, err)

		out := make([]float64, len(bs.knots)-1)
		for trial := 0; trial < 50; trial++ {
			u := rng.Float64()
			bs.basisAt(degree, u, out)
			for j := 0; j < n; j++ {
				want := bs.basis(j, degree, u)
				if math.Float64bits(want) != math.Float64bits(out[j]) {
					t.Fatalf("degree %d, u %g, j %d: recursion gives %v, table %v",
						degree, u, j, want, out[j])
				}
			}
		}
	}
}

func TestBSplineClamps(t *testing.T) {
	for degree := 0; degree < len(refXs); degree++ {
		bs, err := NewBSpline(degree, refXs, refYs)
		require.NoError(t, err)

		for _, x := range []float64{-10, -0.001, 0} {
			assert.Equal(t, refYs[0], bs.Eval(x), "degree %d, x %g", degree, x)
		}
		for _, x := range []float64{8, 8.001, 100} {
			assert.Equal(t, refYs[4], bs.Eval(x), "degree %d, x %g", degree, x)
		}
	}
}

func TestBSplineJustBelowUpperEnd(t *testing.T) {
	table := [][2]float64{
		{-1.11, 0.333},
		{-1.48, 0.344},
		{-1.85, 0.355},
	}

	for i, test := range table {
		lo, hi := test[0], test[1]
		xs := []float64{lo, (lo + hi) / 2, hi}
		ys := []float64{5, 5, 5}
		bs, err := NewBSpline(2, xs, ys)
		require.NoError(t, err)

		x := math.Nextafter(hi, lo)
		assert.InDelta(t, 5, bs.Eval(x), 1e-9, "%d) x = %v", i+1, x)
		sum := 0.0
		for j := range xs {
			sum += bs.BasisValue(x, j)
		}
		assert.InDelta(t, 1, sum, 1e-9, "%d) x = %v", i+1, x)
	}
}

func TestBSplineDegreeOneIsLinear(t *testing.T) {
	xs := linspace(-1, 3, 9)
	ys := []float64{0, 2, -1, 4, 4, 3, 0.5, 1, -2}
	bs, err := NewBSpline(1, xs, ys)
	require.NoError(t, err)
	lin, err := NewLinear(xs, ys)
	require.NoError(t, err)

	for _, x := range linspace(-0.99, 2.99, 37) {
		assert.InDelta(t, lin.Eval(x), bs.Eval(x), 1e-12, "x = %g", x)
	}
}

func TestBSplineReconstructsAbscissa(t *testing.T) {
	x0, x1 := -2.0, 6.0
	for degree := 1; degree <= 4; degree++ {
		xs := grevilleTable(t, degree, 9, x0, x1)
		ys := make([]float64, len(xs))
		for i := range ys {
			ys[i] = math.Sin(xs[i])
		}
		bs, err := NewBSpline(degree, xs, ys)
		require.NoError(t, err)

		for _, x := range linspace(x0+0.01, x1-0.01, 41) {
			u := (x - x0) / (x1 - x0)
			rx, ry := bs.Curve(u)
			assert.InDelta(t, x, rx, 1e-2, "degree %d, x %g", degree, x)
			assert.InDelta(t, x, rx, 1e-9, "degree %d, x %g", degree, x)
			assert.Equal(t, bs.Eval(x), ry)
		}
	}
}

func TestBSplineCurve(t *testing.T) {
	bs, err := NewBSpline(3, refXs, refYs)
	require.NoError(t, err)

	x, y := bs.Curve(0)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{x, y})
	x, y = bs.Curve(1)
	assert.Equal(t, [2]float64{8, 2}, [2]float64{x, y})
	x, y = bs.Curve(-3)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{x, y})

	xs, ys := bs.Sample(11)
	require.Len(t, xs, 11)
	require.Len(t, ys, 11)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 8.0, xs[10])
	assert.Equal(t, 2.0, ys[10])
	for i := 1; i < len(xs); i++ {
		assert.True(t, xs[i] > xs[i-1], "curve x values increase")
	}

	xs, ys = bs.Sample(1)
	assert.Equal(t, []float64{0}, xs)
	assert.Equal(t, []float64{0}, ys)
	xs, ys = bs.Sample(0)
	assert.Empty(t, xs)
	assert.Empty(t, ys)
}

func TestBSplineBasisValue(t *testing.T) {
	bs, err := NewBSpline(2, refXs, refYs)
	require.NoError(t, err)

	assert.Equal(t, 1.0, bs.BasisValue(-1, 0))
	assert.Equal(t, 0.0, bs.BasisValue(-1, 1))
	assert.Equal(t, 1.0, bs.BasisValue(9, 4))
	assert.Equal(t, 0.0, bs.BasisValue(9, 3))

	// u = 0.5 is the middle of the span [1/3, 2/3).
	assert.InDelta(t, 0.125, bs.BasisValue(4, 1), 1e-12)
	assert.InDelta(t, 0.75, bs.BasisValue(4, 2), 1e-12)
	assert.InDelta(t, 0.125, bs.BasisValue(4, 3), 1e-12)
	assert.Equal(t, 0.0, bs.BasisValue(4, 0))

	xs := []float64{-1, 1, 4, 7, 9}
	vals := bs.BasisValues(xs, 2)
	for i, x := range xs {
		assert.Equal(t, bs.BasisValue(x, 2), vals[i])
	}

	assert.Panics(t, func() { bs.BasisValue(1, -1) })
	assert.Panics(t, func() { bs.BasisValue(1, 5) })
}

func TestBSplineKnotsCopy(t *testing.T) {
	bs, err := NewBSpline(2, refXs, refYs)
	require.NoError(t, err)

	knots := bs.Knots()
	require.Len(t, knots, 8)
	knots[3] = 100
	assert.InDelta(t, 1.0/3, bs.Knots()[3], 1e-15)
}

func BenchmarkBSplineEvalDegree3(b *testing.B) {
	xs, ys := randomTable(rand.New(rand.NewSource(0)), 64)
	bs, err := NewBSpline(3, xs, ys)
	if err != nil {
		b.Fatal(err.Error())
	}
	x := (xs[0] + xs[len(xs)-1]) / 2
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bs.Eval(x)
	}
}

func BenchmarkBSplineRecursiveBasisDegree3(b *testing.B) {
	xs, ys := randomTable(rand.New(rand.NewSource(0)), 64)
	bs, err := NewBSpline(3, xs, ys)
	if err != nil {
		b.Fatal(err.Error())
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range xs {
			bs.basis(j, 3, 0.5)
		}
	}
}
