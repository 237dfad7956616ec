package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gospline/math/interpolate"
)

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Optional Parameters #
#######################

# Whitespace-separated text table containing the sample points. The x values
# must be strictly increasing. If Input isn't set, a small built-in table is
# used instead.
# Input = path/to/samples.txt
# XColumn = 0
# YColumn = 1

# Query points are QueryStart, QueryStart + QueryStep, ... Queries of them.
# Points outside the table are extrapolated by the linear and cubic
# interpolators and clamped by the B-splines.
# Queries = 1000
# QueryStart = -1
# QueryStep = 0.01

# Degrees of the B-splines to evaluate. Repeat the line for every degree. Each
# degree must be smaller than the number of sample points. Default is 1, 2
# and 3.
# Degree = 1
# Degree = 2
# Degree = 3

# Solver used for the reference cubic spline, either Thomas or Dense. Both
# are always evaluated, this only picks the one which is plotted.
# Solver = Thomas

# Output files. BasisOutput must contain a single %d, which is replaced by
# the B-spline degree.
# Output = out.csv
# CurveOutput = bsp.csv
# BasisOutput = bas%d.csv
# SamplesOutput = org.csv

# Number of points sampled along each B-spline curve.
# CurveSamples = 1000

# If set, matplotlib figures comparing the interpolators are written here.
# PlotDir = path/to/plot/dir

# Number of goroutines used to evaluate the query points. Default is the
# number of logical cores.
# Threads = 0`
)

// InterpolateConfig holds the [Interpolate] section of a configuration file.
type InterpolateConfig struct {
	Input            string
	XColumn, YColumn int

	Queries               int
	QueryStart, QueryStep float64

	Degree []int
	Solver string

	Output, CurveOutput, BasisOutput, SamplesOutput string
	CurveSamples                                    int

	PlotDir string
	Threads int
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

// DefaultInterpolateWrapper returns a wrapper whose settings reproduce the
// comparison run on the built-in table.
func DefaultInterpolateWrapper() *InterpolateWrapper {
	con := InterpolateConfig{
		XColumn:       0,
		YColumn:       1,
		Queries:       1000,
		QueryStart:    -1,
		QueryStep:     0.01,
		Solver:        "Thomas",
		Output:        "out.csv",
		CurveOutput:   "bsp.csv",
		BasisOutput:   "bas%d.csv",
		SamplesOutput: "org.csv",
		CurveSamples:  1000,
	}
	return &InterpolateWrapper{con}
}

// ReadInterpolateConfig reads and validates the configuration file fname.
func ReadInterpolateConfig(fname string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Interpolate
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

// CheckInit validates the configuration and fills in defaults which gcfg
// cannot express.
func (con *InterpolateConfig) CheckInit() error {
	if len(con.Degree) == 0 {
		con.Degree = []int{1, 2, 3}
	}

	if con.XColumn < 0 || con.YColumn < 0 {
		return fmt.Errorf(
			"XColumn and YColumn must be non-negative, but are %d and %d.",
			con.XColumn, con.YColumn,
		)
	} else if con.XColumn == con.YColumn {
		return fmt.Errorf("XColumn and YColumn are both %d.", con.XColumn)
	}

	if con.Queries <= 0 {
		return fmt.Errorf("Queries must be positive, but is %d.", con.Queries)
	} else if con.QueryStep <= 0 {
		return fmt.Errorf("QueryStep must be positive, but is %g.", con.QueryStep)
	}

	for _, d := range con.Degree {
		if d < 0 {
			return fmt.Errorf("Degree must be non-negative, but is %d.", d)
		}
	}

	if _, err := con.NewSolver(); err != nil {
		return err
	}

	if con.Output == "" {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if con.CurveOutput == "" {
		return fmt.Errorf("Invalid/non-existent 'CurveOutput' value.")
	} else if con.SamplesOutput == "" {
		return fmt.Errorf("Invalid/non-existent 'SamplesOutput' value.")
	} else if strings.Count(con.BasisOutput, "%d") != 1 {
		return fmt.Errorf(
			"BasisOutput must contain exactly one %%d, but is '%s'.",
			con.BasisOutput,
		)
	}

	if con.CurveSamples <= 0 {
		return fmt.Errorf(
			"CurveSamples must be positive, but is %d.", con.CurveSamples,
		)
	} else if con.Threads < 0 {
		return fmt.Errorf("Threads must be non-negative, but is %d.", con.Threads)
	}

	return nil
}

// NewSolver returns the spline solver named by the Solver variable.
func (con *InterpolateConfig) NewSolver() (interpolate.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(con.Solver)) {
	case "thomas":
		return interpolate.ThomasSolver{}, nil
	case "dense":
		return interpolate.DenseSolver{}, nil
	}
	return nil, fmt.Errorf(
		"Solver must be one of [Thomas | Dense]. '%s' is not recognized.",
		con.Solver,
	)
}

// QueryPoints returns the x values at which the interpolators are evaluated.
func (con *InterpolateConfig) QueryPoints() []float64 {
	xs := make([]float64, con.Queries)
	for i := range xs {
		xs[i] = con.QueryStart + float64(i)*con.QueryStep
	}
	return xs
}

// BasisFile returns the name of the basis output file for a degree.
func (con *InterpolateConfig) BasisFile(degree int) string {
	return fmt.Sprintf(con.BasisOutput, degree)
}
