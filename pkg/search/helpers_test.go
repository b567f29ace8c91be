package search

import (
	"testing"

	"github.com/matzehuels/gridpath/pkg/grid"
)

// board builds a square grid from rows of '.', '#', 'S' and 'E' and
// snapshots its adjacency.
func board(t *testing.T, rows ...string) (g *grid.Grid, start, end *grid.Cell) {
	t.Helper()
	g, err := grid.New(len(rows))
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	for r, line := range rows {
		if len(line) != len(rows) {
			t.Fatalf("row %d has %d columns, want %d", r, len(line), len(rows))
		}
		for c, ch := range line {
			cell, _ := g.CellAt(r, c)
			switch ch {
			case '#':
				cell.Classify(grid.Obstacle)
			case 'S':
				cell.Classify(grid.Start)
				start = cell
			case 'E':
				cell.Classify(grid.End)
				end = cell
			}
		}
	}
	g.UpdateAdjacency()
	return g, start, end
}

func countKind(g *grid.Grid, k grid.Kind) int {
	return g.Census()[k]
}

// checkPath verifies that path is a connected, obstacle-free walk from
// start to end.
func checkPath(t *testing.T, g *grid.Grid, path []grid.Pos, start, end grid.Pos) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if path[0] != start {
		t.Errorf("path starts at %v, want %v", path[0], start)
	}
	if path[len(path)-1] != end {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], end)
	}
	for i := 1; i < len(path); i++ {
		if path[i-1].Manhattan(path[i]) != 1 {
			t.Errorf("path step %v -> %v is not a unit move", path[i-1], path[i])
		}
		c, _ := g.CellAt(path[i].Row, path[i].Col)
		if c.IsObstacle() {
			t.Errorf("path crosses obstacle at %v", path[i])
		}
	}
}
