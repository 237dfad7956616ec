package main

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"
)

var (
	colors = []string{
		"DarkSlateBlue", "DarkSlateGray", "DarkTurquoise",
		"DarkViolet", "DeepPink", "DimGray",
	}
)

// plotComparison plots the sample points against the cubic spline of the
// configured solver, the linear interpolator and every B-spline. cols is laid
// out as returned by evalCurves.
func plotComparison(fname string, cs *curves, qs []float64, cols [][]float64) {
	splineCol := 1
	if cs.preferredSpline == cs.dense {
		splineCol = 2
	}

	plt.Figure()
	plt.Plot(cs.xs, cs.ys, "ok")
	plt.Plot(qs, cols[splineCol], "b", plt.LW(2))
	plt.Plot(qs, cols[3], "r", plt.LW(2))
	for i := range cs.bsplines {
		plt.Plot(qs, cols[4+i], plt.LW(2), plt.C(colors[i%len(colors)]))
	}

	plt.Title(fmt.Sprintf(
		"%d points: spline (blue), linear (red), B-splines", len(cs.xs),
	))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.XLim(qs[0], qs[len(qs)-1])
	plt.SaveFig(fname)
}

// plotBasis plots every basis function of a B-spline. basis is laid out as
// returned by basisColumns.
func plotBasis(fname string, degree int, basis [][]float64) {
	qs := basis[0]

	plt.Figure()
	for i := 1; i < len(basis); i++ {
		plt.Plot(qs, basis[i], plt.LW(2), plt.C(colors[(i-1)%len(colors)]))
	}

	plt.Title(fmt.Sprintf("Degree %d basis functions", degree))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(fmt.Sprintf(`$b_{i,%d}(x)$`, degree), plt.FontSize(16))
	plt.XLim(qs[0], qs[len(qs)-1])
	plt.YLim(0, 1)
	plt.SaveFig(fname)
}
