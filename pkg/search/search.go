package search

import (
	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

// NoParent marks an undiscovered cell in a predecessor map.
const NoParent = -1

// Phase is the stage a Search is in.
type Phase int

const (
	// Exploring: cells are being dequeued and expanded.
	Exploring Phase = iota
	// Tracing: the end was reached and the path is being marked.
	Tracing
	// Found: the path is fully marked.
	Found
	// Exhausted: the frontier emptied without reaching the end.
	Exhausted
)

func (p Phase) String() string {
	switch p {
	case Exploring:
		return "exploring"
	case Tracing:
		return "tracing"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result summarizes a finished (or cancelled) search.
type Result struct {
	Found     bool
	Cancelled bool
	// Distance is the hop count from start to end, or grid.Unreached.
	Distance int
	// Steps counts dequeues.
	Steps int
	// Path lists the cells from start to end inclusive; nil unless Found.
	Path []grid.Pos
	// Pred is the predecessor map indexed by row-major cell index.
	Pred []int
}

// Search is the state of one breadth-first run.
//
// A Search owns the grid's Frontier/Visited/Path marks while it is active;
// callers must not edit the grid between calls to Next.
type Search struct {
	g      *grid.Grid
	start  int
	end    int
	queue  []int
	head   int
	pred   []int
	phase  Phase
	steps  int
	tracer *Tracer
}

// New validates the preconditions of a run and seeds the frontier with
// start. It refuses, without touching the grid, when start or end is nil,
// when they are the same cell, when either lies outside g, or when g has
// no adjacency snapshot.
func New(g *grid.Grid, start, end *grid.Cell) (*Search, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodePrecondition, "grid is nil")
	}
	if start == nil || end == nil {
		return nil, errors.New(errors.ErrCodePrecondition, "start and end must both be set")
	}
	if !g.InBounds(start.Row, start.Col) || !g.InBounds(end.Row, end.Col) {
		return nil, errors.New(errors.ErrCodePrecondition, "start %s or end %s is not on the grid", start.Pos(), end.Pos())
	}
	s, e := g.IndexOf(start), g.IndexOf(end)
	if g.At(s) != start || g.At(e) != end {
		return nil, errors.New(errors.ErrCodePrecondition, "start and end must belong to the searched grid")
	}
	if s == e {
		return nil, errors.New(errors.ErrCodePrecondition, "start and end must be distinct, both are %s", start.Pos())
	}
	if !g.HasAdjacency() {
		return nil, errors.New(errors.ErrCodePrecondition, "grid adjacency has not been computed")
	}

	pred := make([]int, g.Len())
	for i := range pred {
		pred[i] = NoParent
	}
	pred[s] = s

	start.SetDistance(0)
	queue := make([]int, 1, g.Len())
	queue[0] = s

	return &Search{
		g:     g,
		start: s,
		end:   e,
		queue: queue,
		pred:  pred,
		phase: Exploring,
	}, nil
}

// Phase returns the current stage.
func (s *Search) Phase() Phase { return s.phase }

// Done reports whether the search has reached a terminal phase.
func (s *Search) Done() bool { return s.phase == Found || s.phase == Exhausted }

// Steps returns the number of dequeues so far.
func (s *Search) Steps() int { return s.steps }

// FrontierLen returns the number of discovered cells awaiting expansion.
func (s *Search) FrontierLen() int { return len(s.queue) - s.head }

// Pred returns the predecessor map. The slice is shared with the search.
func (s *Search) Pred() []int { return s.pred }

// Next performs one unit of work and returns the cell it touched: the
// dequeued cell while exploring, or the newly marked path cell while
// tracing. It returns a nil cell once the search is done.
//
// An INTERNAL_INCONSISTENCY error means the predecessor map is corrupt.
func (s *Search) Next() (*grid.Cell, error) {
	switch s.phase {
	case Exploring:
		return s.expand()
	case Tracing:
		return s.trace()
	default:
		return nil, nil
	}
}

func (s *Search) expand() (*grid.Cell, error) {
	if s.head == len(s.queue) {
		s.phase = Exhausted
		return nil, nil
	}
	cur := s.queue[s.head]
	s.head++
	s.steps++

	if cur == s.end {
		s.phase = Tracing
		s.tracer = NewTracer(s.g, s.pred, s.start, s.end)
		return s.trace()
	}

	c := s.g.At(cur)
	next := c.Distance() + 1
	for _, idx := range s.g.Adjacent(cur) {
		nb := s.g.At(idx)
		if !nb.IsFree() && !nb.IsEnd() {
			continue
		}
		if !nb.Closer(next) {
			continue
		}
		s.pred[idx] = cur
		nb.SetDistance(next)
		if !nb.IsEnd() {
			nb.Classify(grid.Frontier)
		}
		s.queue = append(s.queue, idx)
	}

	if cur != s.start {
		c.Classify(grid.Visited)
	}
	if s.head == len(s.queue) {
		s.phase = Exhausted
	}
	return c, nil
}

func (s *Search) trace() (*grid.Cell, error) {
	c, err := s.tracer.Next()
	if err != nil {
		return nil, err
	}
	if s.tracer.Done() {
		s.phase = Found
	}
	return c, nil
}

// Result summarizes the search in its current state.
func (s *Search) Result() Result {
	r := Result{
		Found:    s.phase == Found,
		Distance: grid.Unreached,
		Steps:    s.steps,
		Pred:     s.pred,
	}
	if r.Found {
		r.Distance = s.g.At(s.end).Distance()
		r.Path = s.tracer.Path()
	}
	return r
}
