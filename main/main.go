package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/phil-mansfield/gospline/io"
	"github.com/phil-mansfield/gospline/math/interpolate"

	plt "github.com/phil-mansfield/pyplot"
)

// curves holds every interpolator built from one table.
type curves struct {
	xs, ys          []float64
	thomas, dense   *interpolate.Spline
	linear          *interpolate.Linear
	bsplines        []*interpolate.BSpline
	preferredSpline *interpolate.Spline
}

func main() {
	var (
		config, exampleConfig string
		defaults              bool
	)

	flag.StringVar(
		&config, "Config", "",
		"Configuration file for an [Interpolate] run.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Interpolate'.",
	)
	flag.BoolVar(
		&defaults, "Defaults", false,
		"Runs the comparison on the built-in table with default settings.",
	)
	flag.Parse()

	modeName, err := getModeName(map[string]bool{
		"Config":        config != "",
		"ExampleConfig": exampleConfig != "",
		"Defaults":      defaults,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Config":
		con, err := io.ReadInterpolateConfig(config)
		if err != nil {
			log.Fatal(err.Error())
		}
		interpolateMain(con)

	case "Defaults":
		con := &io.DefaultInterpolateWrapper().Interpolate
		if err := con.CheckInit(); err != nil {
			log.Fatal(err.Error())
		}
		interpolateMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Interpolate":
			fmt.Println(io.ExampleInterpolateFile)
		default:
			log.Fatalf(
				"'%s' is not a valid example config name. Only "+
					"'Interpolate' is accepted.", exampleConfig,
			)
		}

	default:
		panic("Impossible")
	}
}

// getModeName returns the single mode flag which was set. Exactly one of
// them must be.
func getModeName(set map[string]bool) (string, error) {
	setNames := []string{}
	for name, ok := range set {
		if ok {
			setNames = append(setNames, name)
		}
	}
	sort.Strings(setNames)

	switch len(setNames) {
	case 0:
		return "", fmt.Errorf(
			"One of -Config, -ExampleConfig or -Defaults must be set.",
		)
	case 1:
		return setNames[0], nil
	}
	return "", fmt.Errorf(
		"The flags %s were all set, but only one mode can be run at a time.",
		strings.Join(setNames, ", "),
	)
}

func interpolateMain(con *io.InterpolateConfig) {
	xs, ys := io.DefaultSamples()
	if con.Input != "" {
		var err error
		xs, ys, err = io.ReadSamples(con.Input, con.XColumn, con.YColumn)
		if err != nil {
			log.Fatal(err.Error())
		}
	}
	log.Printf("%d sample points read.", len(xs))

	cs, err := buildCurves(con, xs, ys)
	if err != nil {
		log.Fatal(err.Error())
	}

	qs := con.QueryPoints()
	cols, header, err := evalCurves(con, cs, qs)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err = io.WriteColumnsFile(con.Output, header, cols...); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %d query points to %s.", len(qs), con.Output)

	if err = writeCurves(con, cs); err != nil {
		log.Fatal(err.Error())
	}

	basis := make([][][]float64, len(cs.bsplines))
	for i, bs := range cs.bsplines {
		basis[i] = basisColumns(bs, len(xs), qs)
		fname := con.BasisFile(bs.Degree())
		if err = io.WriteColumnsFile(fname, nil, basis[i]...); err != nil {
			log.Fatal(err.Error())
		}
	}

	err = io.WriteColumnsFile(con.SamplesOutput, []string{"x", "y"}, xs, ys)
	if err != nil {
		log.Fatal(err.Error())
	}

	if con.PlotDir != "" {
		if err = os.MkdirAll(con.PlotDir, 0777); err != nil {
			log.Fatal(err.Error())
		}
		plotComparison(path.Join(con.PlotDir, "compare.png"), cs, qs, cols)
		for i, bs := range cs.bsplines {
			fname := path.Join(con.PlotDir, fmt.Sprintf("basis_%d.png", bs.Degree()))
			plotBasis(fname, bs.Degree(), basis[i])
		}
		plt.Execute()
		log.Printf("Wrote plots to %s.", con.PlotDir)
	}
}

func buildCurves(
	con *io.InterpolateConfig, xs, ys []float64,
) (*curves, error) {
	cs := &curves{xs: xs, ys: ys}

	var err error
	if cs.thomas, err = interpolate.NewSpline(xs, ys, interpolate.ThomasSolver{}); err != nil {
		return nil, err
	}
	if cs.dense, err = interpolate.NewSpline(xs, ys, interpolate.DenseSolver{}); err != nil {
		return nil, err
	}
	if err = cs.thomas.Compute(); err != nil {
		return nil, err
	}
	if err = cs.dense.Compute(); err != nil {
		return nil, err
	}

	solver, err := con.NewSolver()
	if err != nil {
		return nil, err
	}
	cs.preferredSpline = cs.thomas
	if _, ok := solver.(interpolate.DenseSolver); ok {
		cs.preferredSpline = cs.dense
	}

	if cs.linear, err = interpolate.NewLinear(xs, ys); err != nil {
		return nil, err
	}

	cs.bsplines = make([]*interpolate.BSpline, len(con.Degree))
	for i, d := range con.Degree {
		if cs.bsplines[i], err = interpolate.NewBSpline(d, xs, ys); err != nil {
			return nil, err
		}
	}

	return cs, nil
}

// evalCurves evaluates every interpolator at the query points. The first
// column is the query points themselves.
func evalCurves(
	con *io.InterpolateConfig, cs *curves, qs []float64,
) (cols [][]float64, header []string, err error) {
	ins := []interpolate.Interpolator{cs.thomas, cs.dense, cs.linear}
	header = []string{"x", "sp(thomas)", "sp(dense)", "linear"}
	for _, bs := range cs.bsplines {
		ins = append(ins, bs)
		header = append(header, fmt.Sprintf("bsp(%dd)", bs.Degree()))
	}

	cols = [][]float64{qs}
	for _, in := range ins {
		vals, err := interpolate.EvalParallel(
			context.Background(), in, qs, con.Threads,
		)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, vals)
	}
	return cols, header, nil
}

func writeCurves(con *io.InterpolateConfig, cs *curves) error {
	header := []string{}
	cols := [][]float64{}
	for _, bs := range cs.bsplines {
		x, y := bs.Sample(con.CurveSamples)
		cols = append(cols, x, y)
		header = append(header,
			fmt.Sprintf("x(bsp:%dd)", bs.Degree()),
			fmt.Sprintf("y(bsp:%dd)", bs.Degree()),
		)
	}
	return io.WriteColumnsFile(con.CurveOutput, header, cols...)
}

// basisColumns returns the query points followed by the value of every basis
// function at those points.
func basisColumns(bs *interpolate.BSpline, n int, qs []float64) [][]float64 {
	cols := make([][]float64, n+1)
	cols[0] = qs
	for i := 0; i < n; i++ {
		cols[i+1] = bs.BasisValues(qs, i)
	}
	return cols
}
