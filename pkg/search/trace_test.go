package search

import (
	"slices"
	"testing"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

// line builds the predecessor map of a straight walk along row 0.
func line(g *grid.Grid, length int) []int {
	pred := make([]int, g.Len())
	for i := range pred {
		pred[i] = NoParent
	}
	pred[0] = 0
	for c := 1; c < length; c++ {
		pred[c] = c - 1
	}
	return pred
}

func TestReconstruct(t *testing.T) {
	g, _ := grid.New(4)
	start, _ := g.CellAt(0, 0)
	end, _ := g.CellAt(0, 3)
	start.Classify(grid.Start)
	end.Classify(grid.End)

	calls := 0
	path, err := Reconstruct(g, line(g, 4), start, end, func() { calls++ })
	if err != nil {
		t.Fatalf("Reconstruct() error: %v", err)
	}

	want := []grid.Pos{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
	if !slices.Equal(path, want) {
		t.Errorf("path = %v, want %v", path, want)
	}
	if calls != 3 {
		t.Errorf("callbacks = %d, want 3", calls)
	}
	for _, col := range []int{1, 2} {
		c, _ := g.CellAt(0, col)
		if !c.IsPath() {
			t.Errorf("(0,%d) kind = %v, want path", col, c.Kind())
		}
	}
	if !start.IsStart() || !end.IsEnd() {
		t.Error("endpoints must keep their classes")
	}
}

func TestReconstructMissingPredecessor(t *testing.T) {
	g, _ := grid.New(4)
	start, _ := g.CellAt(0, 0)
	end, _ := g.CellAt(0, 3)

	pred := line(g, 4)
	pred[1] = NoParent

	_, err := Reconstruct(g, pred, start, end, nil)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Reconstruct() error = %v, want INTERNAL_INCONSISTENCY", err)
	}
}

func TestReconstructCycle(t *testing.T) {
	g, _ := grid.New(3)
	start, _ := g.CellAt(0, 0)
	end, _ := g.CellAt(0, 2)

	pred := line(g, 3)
	pred[1] = 2 // 2 -> 1 -> 2 ...

	_, err := Reconstruct(g, pred, start, end, nil)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Reconstruct() error = %v, want INTERNAL_INCONSISTENCY", err)
	}
}

func TestReconstructForeignRoot(t *testing.T) {
	g, _ := grid.New(3)
	start, _ := g.CellAt(0, 0)
	end, _ := g.CellAt(0, 2)

	pred := line(g, 3)
	pred[1] = 1

	_, err := Reconstruct(g, pred, start, end, nil)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Reconstruct() error = %v, want INTERNAL_INCONSISTENCY", err)
	}
}

func TestReconstructWrongMapSize(t *testing.T) {
	g, _ := grid.New(3)
	start, _ := g.CellAt(0, 0)
	end, _ := g.CellAt(0, 2)

	_, err := Reconstruct(g, []int{0, 0}, start, end, nil)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Reconstruct() error = %v, want INTERNAL_INCONSISTENCY", err)
	}
}

func TestTracerStepwise(t *testing.T) {
	g, _ := grid.New(3)
	tr := NewTracer(g, line(g, 3), 0, 2)

	var marked []grid.Pos
	for !tr.Done() {
		c, err := tr.Next()
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		marked = append(marked, c.Pos())
	}
	want := []grid.Pos{{0, 2}, {0, 1}}
	if !slices.Equal(marked, want) {
		t.Errorf("marked = %v, want %v", marked, want)
	}
	if c, err := tr.Next(); c != nil || err != nil {
		t.Errorf("Next() after Done = %v, %v", c, err)
	}
}
