package interpolate

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of points handed to a single goroutine by
// EvalParallel.
const minChunk = 256

// EvalParallel evaluates in at every x value using up to workers goroutines
// and returns the results in the same order as xs. If workers is not
// positive, runtime.NumCPU() goroutines are used.
//
// The points are split into contiguous chunks. If ctx is cancelled, chunks
// which have not started are skipped and ctx.Err() is returned. An
// uncomputed Spline is reported as ErrNotComputed rather than panicking
// inside a worker.
func EvalParallel(
	ctx context.Context, in Interpolator, xs []float64, workers int,
) ([]float64, error) {
	if sp, ok := in.(*Spline); ok && !sp.Ready() {
		return nil, fmt.Errorf("%w: EvalParallel() given Spline", ErrNotComputed)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	out := make([]float64, len(xs))

	chunk := (len(xs) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(xs); start += chunk {
		end := start + chunk
		if end > len(xs) {
			end = len(xs)
		}

		lo, hi := start, end
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			in.EvalAll(xs[lo:hi], out[lo:hi])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
