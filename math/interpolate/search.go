package interpolate

// searcher locates the interval of a strictly increasing table which a point
// falls into.
type searcher struct {
	xs []float64
	x0 float64
	// Usually the input data is uniform. This is our estimate of the point
	// spacing.
	dx float64
	n  int
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.n = len(xs)
	s.x0 = xs[0]
	s.dx = (xs[s.n-1] - s.x0) / float64(s.n-1)
}

// search returns the index j of the interval [xs[j], xs[j+1]) containing x.
// Points below xs[1] map to the first interval and points at or above
// xs[n-2] map to the last one, so points outside the table are assigned to
// the boundary intervals rather than rejected.
func (s *searcher) search(x float64) int {
	xs, n := s.xs, s.n
	if x < xs[1] {
		return 0
	} else if x >= xs[n-2] {
		return n - 2
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess >= 1 && guess < n-2 && xs[guess] <= x && x < xs[guess+1] {
		return guess
	}

	// Binary search. xs[lo] <= x < xs[hi] throughout.
	lo, hi := 1, n-2
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
