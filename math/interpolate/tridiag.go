package interpolate

import (
	"fmt"
)

// TriDiagAt solves the system of equations
//
// | b0 c0 ..       |   | out0 |   | r0 |
// | a1 b1 c1 ..    |   | out1 |   | r1 |
// | ..             | * | ..   | = | .. |
// | ..    an   bn  |   | outn |   | rn |
//
// for out0 .. outn in place in the given slice. as[0] and cs[n] are never
// read. An error wrapping ErrNumericalFailure is returned if the sweep meets
// a zero pivot, in which case out is left in an unspecified state.
func TriDiagAt(as, bs, cs, rs, out []float64) error {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {
		panic(fmt.Sprintf(
			"Length of arguments to TriDiagAt are unequal: %d, %d, %d, %d, %d.",
			len(as), len(bs), len(cs), len(rs), len(out),
		))
	} else if len(out) == 0 {
		return nil
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		return fmt.Errorf("%w: TriDiagAt has zero pivot in row 0", ErrNumericalFailure)
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			return fmt.Errorf(
				"%w: TriDiagAt has zero pivot in row %d", ErrNumericalFailure, i,
			)
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
	return nil
}

// TriDiag solves the system of equations
//
// | b0 c0 ..       |   | u0 |   | r0 |
// | a1 b1 c1 ..    |   | u1 |   | r1 |
// | ..             | * | .. | = | .. |
// | ..    an   bn  |   | un |   | rn |
//
// for u0 .. un.
func TriDiag(as, bs, cs, rs []float64) ([]float64, error) {
	us := make([]float64, len(as))
	if err := TriDiagAt(as, bs, cs, rs, us); err != nil {
		return nil, err
	}
	return us, nil
}
