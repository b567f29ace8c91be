package session

import (
	"context"
	"time"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/observability"
	"github.com/matzehuels/gridpath/pkg/search"
)

// Run is one search execution started by Session.Begin.
type Run struct {
	ID string

	s       *Session
	search  *search.Search
	ctx     context.Context
	cancel  context.CancelFunc
	started time.Time
	elapsed time.Duration
	result  search.Result
	err     error
	done    bool
}

func newRun(ctx context.Context, s *Session, id string, sr *search.Search) *Run {
	runCtx, cancel := context.WithCancel(ctx)
	return &Run{
		ID:      id,
		s:       s,
		search:  sr,
		ctx:     runCtx,
		cancel:  cancel,
		started: time.Now(),
	}
}

// Done reports whether the run has ended.
func (r *Run) Done() bool { return r.done }

// Phase returns the phase of the underlying search.
func (r *Run) Phase() search.Phase { return r.search.Phase() }

// Steps returns the number of dequeues so far.
func (r *Run) Steps() int { return r.search.Steps() }

// FrontierLen returns the number of cells waiting to be expanded.
func (r *Run) FrontierLen() int { return r.search.FrontierLen() }

// Result returns the outcome; it is final once Done reports true.
func (r *Run) Result() search.Result {
	if r.done {
		return r.result
	}
	return r.search.Result()
}

// Err returns the error the run ended with, if any.
func (r *Run) Err() error { return r.err }

// Elapsed returns the wall time of a finished run.
func (r *Run) Elapsed() time.Duration { return r.elapsed }

// Cancel requests cancellation; the next Step observes it.
func (r *Run) Cancel() { r.cancel() }

// Step performs one unit of search work and returns the touched cell.
// The cancellation signal is polled once per call, before any work. When
// the run ends Step returns a nil cell; a cancelled run returns a
// CANCELLED error and keeps its partial marks on the board.
func (r *Run) Step() (*grid.Cell, error) {
	if r.done {
		return nil, nil
	}
	if err := r.ctx.Err(); err != nil {
		r.finish(errors.Wrap(errors.ErrCodeCancelled, err, "search cancelled after %d steps", r.search.Steps()))
		return nil, r.err
	}

	c, err := r.search.Next()
	if err != nil {
		r.s.logger.Error("path reconstruction failed", "run", r.ID, "err", err)
		r.finish(err)
		return nil, err
	}
	if c != nil {
		observability.Search().OnStep(r.ctx, r.ID, r.search.Phase().String(), c.Pos(), c.Distance())
	}
	if r.search.Done() {
		r.finish(nil)
	}
	return c, nil
}

// abort ends the run immediately, used when the board is cleared under it.
func (r *Run) abort(ctx context.Context) {
	r.cancel()
	r.finish(errors.Wrap(errors.ErrCodeCancelled, context.Canceled, "search cancelled by clear"))
}

func (r *Run) finish(err error) {
	if r.done {
		return
	}
	r.done = true
	r.err = err
	r.elapsed = time.Since(r.started)
	r.result = r.search.Result()
	if errors.Is(err, errors.ErrCodeCancelled) {
		r.result.Cancelled = true
		r.result.Found = false
		r.result.Path = nil
		r.result.Distance = grid.Unreached
	}
	r.s.finished(r)

	r.s.logger.Debug("search finished",
		"run", r.ID,
		"found", r.result.Found,
		"distance", r.result.Distance,
		"steps", r.result.Steps,
		"duration", r.elapsed)
	observability.Search().OnRunComplete(r.ctx, r.ID, r.result.Found, r.result.Steps, r.elapsed, err)
	r.cancel()
}
