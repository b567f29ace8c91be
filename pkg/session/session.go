// Package session implements the interaction controller of the visualizer.
//
// A [Session] is the explicit context object owned by the entry point. It
// holds the board, the start and end designations, and the run in
// progress, and it translates input events into grid mutations:
//
//   - [Session.Primary]: designate the start, then the end, then paint obstacles
//   - [Session.Secondary]: reset a cell, dropping its start/end designation
//   - [Session.Begin] / [Session.Run]: start a search when both ends are set
//   - [Session.Clear]: rebuild the board from scratch at any time
//
// # States
//
// A session is Idle until both a start and an end are designated, Ready
// while both are set and nothing runs, and Running while a search is in
// flight. Edits are refused while Running; Clear is always accepted and
// cancels the run.
//
// The controller, not the grid, guarantees that a cell is never both
// start and end and that obstacles are never painted over either of them.
//
// # Runs
//
// [Session.Begin] returns a [Run] that an event loop advances with
// [Run.Step], one unit of search work per frame. [Session.Run] drives the
// same Run synchronously and calls a render callback after every step.
// After a run finishes its Frontier/Visited/Path marks stay on the board
// until the next edit or run clears them.
//
// A Session is not safe for concurrent use; it belongs to one event loop.
package session

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/observability"
	"github.com/matzehuels/gridpath/pkg/search"
)

// State is the interaction state of a session.
type State int

const (
	// Idle: start or end still missing.
	Idle State = iota
	// Ready: start and end set, no run in progress.
	Ready
	// Running: a search is in flight.
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Action describes the effect of an input event on the board.
type Action int

const (
	// NoAction: the event was accepted but changed nothing.
	NoAction Action = iota
	PlacedStart
	PlacedEnd
	PlacedObstacle
	ResetCell
)

func (a Action) String() string {
	switch a {
	case PlacedStart:
		return "start"
	case PlacedEnd:
		return "end"
	case PlacedObstacle:
		return "obstacle"
	case ResetCell:
		return "reset"
	default:
		return "none"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for run lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces the run ID generator (uuid by default).
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Session owns the board and its designations.
//
// The zero value is not usable; use New.
type Session struct {
	dim    int
	g      *grid.Grid
	start  *grid.Cell
	end    *grid.Cell
	run    *Run
	stale  bool // board still shows the marks of a finished run
	logger *log.Logger
	newID  func() string
}

// New creates a session with an empty dimension×dimension board.
// It returns an INVALID_DIMENSION error for a non-positive dimension.
func New(dimension int, opts ...Option) (*Session, error) {
	g, err := grid.New(dimension)
	if err != nil {
		return nil, err
	}
	s := &Session{
		dim:    dimension,
		g:      g,
		logger: log.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Grid returns the current board. Clear replaces it, so callers should not
// hold on to the returned pointer across a clear.
func (s *Session) Grid() *grid.Grid { return s.g }

// Dimension returns the board size N.
func (s *Session) Dimension() int { return s.dim }

// Start returns the designated start cell, or nil.
func (s *Session) Start() *grid.Cell { return s.start }

// End returns the designated end cell, or nil.
func (s *Session) End() *grid.Cell { return s.end }

// State reports the current interaction state.
func (s *Session) State() State {
	switch {
	case s.run != nil && !s.run.Done():
		return Running
	case s.start != nil && s.end != nil:
		return Ready
	default:
		return Idle
	}
}

// Active returns the most recent run, which may be finished, or nil.
func (s *Session) Active() *Run { return s.run }

// Primary handles a primary press on (row, col). On a Free cell it
// designates the start if none is set, otherwise the end if none is set,
// otherwise it paints an obstacle. Presses on any other cell change
// nothing.
func (s *Session) Primary(ctx context.Context, row, col int) (Action, error) {
	c, err := s.editable(ctx, "primary", row, col)
	if err != nil {
		return NoAction, err
	}
	if !c.IsFree() {
		return NoAction, nil
	}

	var act Action
	switch {
	case s.start == nil:
		c.Classify(grid.Start)
		s.start = c
		act = PlacedStart
	case s.end == nil:
		c.Classify(grid.End)
		s.end = c
		act = PlacedEnd
	default:
		c.Classify(grid.Obstacle)
		act = PlacedObstacle
	}
	observability.Edit().OnEdit(ctx, act.String(), c.Pos())
	return act, nil
}

// Secondary handles a secondary press on (row, col): the cell becomes
// Free and loses its start or end designation.
func (s *Session) Secondary(ctx context.Context, row, col int) (Action, error) {
	c, err := s.editable(ctx, "secondary", row, col)
	if err != nil {
		return NoAction, err
	}
	if c.IsFree() {
		return NoAction, nil
	}

	c.Reset()
	if c == s.start {
		s.start = nil
	}
	if c == s.end {
		s.end = nil
	}
	observability.Edit().OnEdit(ctx, ResetCell.String(), c.Pos())
	return ResetCell, nil
}

// editable resolves a cell for an edit and clears the marks of a finished
// run. Edits during a run and out-of-range cells are refused without
// touching the board.
func (s *Session) editable(ctx context.Context, action string, row, col int) (*grid.Cell, error) {
	if s.State() == Running {
		err := errors.New(errors.ErrCodePrecondition, "cannot edit the board while a search is running")
		observability.Edit().OnRejected(ctx, action, err)
		return nil, err
	}
	c, err := s.g.CellAt(row, col)
	if err != nil {
		observability.Edit().OnRejected(ctx, action, err)
		return nil, err
	}
	s.settle()
	return c, nil
}

// settle drops the marks left by a finished run.
func (s *Session) settle() {
	if s.stale {
		s.g.ClearSearch()
		s.stale = false
	}
}

// Begin starts a search from the designated start to the designated end.
// It refuses with PRECONDITION_VIOLATION, leaving the board untouched,
// unless the session is Ready. On success the adjacency has been
// recomputed and the returned Run is Running.
func (s *Session) Begin(ctx context.Context) (*Run, error) {
	switch s.State() {
	case Running:
		err := errors.New(errors.ErrCodePrecondition, "a search is already running")
		observability.Edit().OnRejected(ctx, "run", err)
		return nil, err
	case Idle:
		err := errors.New(errors.ErrCodePrecondition, "place both a start and an end before running")
		observability.Edit().OnRejected(ctx, "run", err)
		return nil, err
	}

	s.g.ClearSearch()
	s.stale = false
	s.g.UpdateAdjacency()

	sr, err := search.New(s.g, s.start, s.end)
	if err != nil {
		return nil, err
	}
	r := newRun(ctx, s, s.newID(), sr)
	s.run = r

	s.logger.Debug("search started", "run", r.ID, "start", s.start.Pos(), "end", s.end.Pos(), "size", s.dim)
	observability.Search().OnRunStart(ctx, r.ID, s.dim, s.start.Pos(), s.end.Pos())
	return r, nil
}

// Run starts a search and drives it to completion, invoking onStep after
// every step. It is the synchronous counterpart of Begin.
func (s *Session) Run(ctx context.Context, onStep func()) (search.Result, error) {
	r, err := s.Begin(ctx)
	if err != nil {
		return search.Result{Distance: grid.Unreached}, err
	}
	for !r.Done() {
		c, err := r.Step()
		if err != nil {
			return r.Result(), err
		}
		if c != nil && onStep != nil {
			onStep()
		}
	}
	return r.Result(), r.Err()
}

// Cancel asks the active run to stop. The run observes the request on its
// next step. It is a no-op when nothing runs.
func (s *Session) Cancel() {
	if s.run != nil && !s.run.Done() {
		s.run.Cancel()
	}
}

// Clear cancels any active run, drops the start and end designations and
// rebuilds the board with every cell Free.
func (s *Session) Clear(ctx context.Context) error {
	if s.run != nil && !s.run.Done() {
		s.run.abort(ctx)
	}
	g, err := grid.New(s.dim)
	if err != nil {
		return err
	}
	s.g = g
	s.start = nil
	s.end = nil
	s.run = nil
	s.stale = false
	observability.Edit().OnClear(ctx, s.dim)
	return nil
}

// finished is called by a run when it reaches a terminal state.
func (s *Session) finished(r *Run) {
	if s.run == r {
		s.stale = true
	}
}
