package interpolate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// TriDiagSystem is a square tridiagonal linear system. Row i reads
//
//	Sub[i]*u[i-1] + Diag[i]*u[i] + Super[i]*u[i+1] = RHS[i]
//
// Sub[0] and Super[n-1] are ignored.
type TriDiagSystem struct {
	Sub, Diag, Super, RHS []float64
}

// NewTriDiagSystem allocates a zeroed system with n rows.
func NewTriDiagSystem(n int) *TriDiagSystem {
	return &TriDiagSystem{
		Sub:   make([]float64, n),
		Diag:  make([]float64, n),
		Super: make([]float64, n),
		RHS:   make([]float64, n),
	}
}

// Len returns the number of rows in the system.
func (sys *TriDiagSystem) Len() int { return len(sys.Diag) }

// Solver solves tridiagonal systems. Implementations must not modify the
// system they are given.
type Solver interface {
	Solve(sys *TriDiagSystem) ([]float64, error)
}

var (
	_ Solver = ThomasSolver{}
	_ Solver = DenseSolver{}
)

// ThomasSolver solves systems with the O(n) Thomas algorithm: a forward
// elimination sweep followed by back substitution. It does not pivot, so it
// relies on the system being diagonally dominant, which natural spline
// systems over strictly increasing points always are.
type ThomasSolver struct{}

// Solve implements Solver.
func (ThomasSolver) Solve(sys *TriDiagSystem) ([]float64, error) {
	return TriDiag(sys.Sub, sys.Diag, sys.Super, sys.RHS)
}

func (ThomasSolver) String() string { return "Thomas" }

// DenseSolver expands the system into a dense n x n matrix and solves it
// through a general LU decomposition with partial pivoting. It is O(n^3) and
// exists mostly as an independent cross-check on ThomasSolver.
type DenseSolver struct{}

// Solve implements Solver. Singular matrices, and solutions which are not
// finite, are reported as ErrNumericalFailure. A matrix which is only
// ill-conditioned still yields its solution.
func (DenseSolver) Solve(sys *TriDiagSystem) ([]float64, error) {
	n := sys.Len()
	if n == 0 {
		return []float64{}, nil
	}

	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		if i > 0 {
			m.Set(i, i-1, sys.Sub[i])
		}
		m.Set(i, i, sys.Diag[i])
		if i < n-1 {
			m.Set(i, i+1, sys.Super[i])
		}
	}

	var lu mat.LU
	lu.Factorize(m)

	var u mat.VecDense
	err := lu.SolveVecTo(&u, false, mat.NewVecDense(n, sys.RHS))
	var cond mat.Condition
	if err != nil && (!errors.As(err, &cond) || math.IsInf(float64(cond), 1)) {
		return nil, fmt.Errorf("%w: dense LU solve: %v", ErrNumericalFailure, err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = u.AtVec(i)
		if math.IsNaN(out[i]) || math.IsInf(out[i], 0) {
			return nil, fmt.Errorf(
				"%w: dense LU solve gave %g in row %d (%v)",
				ErrNumericalFailure, out[i], i, err,
			)
		}
	}
	return out, nil
}

func (DenseSolver) String() string { return "Dense" }
