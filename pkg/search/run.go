package search

import (
	"context"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

// Run drives a search from start to end to completion, invoking onStep
// after every dequeue and after every path cell is marked. onStep may be
// nil.
//
// ctx is polled once per iteration. On cancellation Run stops after the
// last fully applied step, leaving partial Frontier/Visited marks in
// place, and returns a Result with Cancelled set together with a
// CANCELLED error wrapping ctx.Err().
func Run(ctx context.Context, g *grid.Grid, start, end *grid.Cell, onStep func()) (Result, error) {
	s, err := New(g, start, end)
	if err != nil {
		return Result{Distance: grid.Unreached}, err
	}
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			r := s.Result()
			r.Found = false
			r.Cancelled = true
			return r, errors.Wrap(errors.ErrCodeCancelled, err, "search cancelled after %d steps", s.Steps())
		}
		c, err := s.Next()
		if err != nil {
			return s.Result(), err
		}
		if c != nil && onStep != nil {
			onStep()
		}
	}
	return s.Result(), nil
}
