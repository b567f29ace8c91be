package search

import (
	"slices"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

// Tracer walks a predecessor map from the end cell back to the start,
// marking one path cell per call to Next.
type Tracer struct {
	g     *grid.Grid
	pred  []int
	start int
	end   int
	cur   int
	walk  []int // end first
	done  bool
}

// NewTracer prepares a walk from end to start over pred. No cell is
// marked until Next is called.
func NewTracer(g *grid.Grid, pred []int, start, end int) *Tracer {
	return &Tracer{g: g, pred: pred, start: start, end: end, cur: end}
}

// Done reports whether the walk has arrived at the start.
func (t *Tracer) Done() bool { return t.done }

// Next marks the current cell as Path and moves to its predecessor.
// The end cell keeps its End class and the start cell is never marked.
// A missing or out-of-range predecessor, or a walk longer than the grid,
// is an INTERNAL_INCONSISTENCY error.
func (t *Tracer) Next() (*grid.Cell, error) {
	if t.done {
		return nil, nil
	}
	if t.cur == t.start {
		t.done = true
		t.walk = append(t.walk, t.cur)
		return nil, nil
	}
	if len(t.walk) >= len(t.pred) {
		return nil, errors.Internal("path walk from %s did not reach the start", t.g.PosOf(t.end))
	}

	c := t.g.At(t.cur)
	if t.cur != t.end {
		c.Classify(grid.Path)
	}
	t.walk = append(t.walk, t.cur)

	parent := t.pred[t.cur]
	if parent == NoParent || parent < 0 || parent >= len(t.pred) {
		return nil, errors.Internal("no predecessor recorded for %s", t.g.PosOf(t.cur))
	}
	if parent == t.cur {
		return nil, errors.Internal("%s is a root but not the start", t.g.PosOf(t.cur))
	}
	t.cur = parent
	if t.cur == t.start {
		t.done = true
		t.walk = append(t.walk, t.cur)
	}
	return c, nil
}

// Path returns the walked cells ordered from start to end. It is only
// complete once Done reports true.
func (t *Tracer) Path() []grid.Pos {
	out := make([]grid.Pos, len(t.walk))
	for i, idx := range t.walk {
		out[i] = t.g.PosOf(idx)
	}
	slices.Reverse(out)
	return out
}

// Reconstruct walks pred from end to start, marking every cell except the
// start as Path (the end keeps its End class) and invoking onStep once per
// marked cell. It returns the path ordered from start to end, which holds
// distance(end)+1 cells.
func Reconstruct(g *grid.Grid, pred []int, start, end *grid.Cell, onStep func()) ([]grid.Pos, error) {
	if len(pred) != g.Len() {
		return nil, errors.Internal("predecessor map has %d entries for %d cells", len(pred), g.Len())
	}
	t := NewTracer(g, pred, g.IndexOf(start), g.IndexOf(end))
	for !t.Done() {
		c, err := t.Next()
		if err != nil {
			return nil, err
		}
		if c != nil && onStep != nil {
			onStep()
		}
	}
	return t.Path(), nil
}
