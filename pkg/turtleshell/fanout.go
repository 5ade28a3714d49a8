package turtleshell

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fanOut runs fn for every index in [0, n) on at most s.concurrency
// goroutines and returns the first error. Sub-operations already running
// are not interrupted; ones not yet started observe ctx and fail with a
// cancelled error of the given op and kind.
func (s *Shell) fanOut(ctx context.Context, op string, kind Kind, n int, fn func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return cancelled(op, kind, err)
			}
			return fn(i)
		})
	}

	return g.Wait()
}
