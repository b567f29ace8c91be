package grid

import (
	"iter"

	"github.com/matzehuels/gridpath/pkg/errors"
)

// offsets lists the 4-directional steps in neighbor order: down, up, left, right.
var offsets = [4][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}

// Grid is an N×N board of cells stored in row-major order.
//
// The zero value is not usable; use New.
type Grid struct {
	n     int
	cells []Cell
	adj   [][]int // row-major index -> adjacent indices, nil until UpdateAdjacency
}

// New builds a dimension×dimension grid of Free cells with unknown distances.
// It returns an INVALID_DIMENSION error for a non-positive dimension.
func New(dimension int) (*Grid, error) {
	if dimension <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimension, "grid dimension must be positive, got %d", dimension)
	}
	g := &Grid{
		n:     dimension,
		cells: make([]Cell, dimension*dimension),
	}
	for r := 0; r < dimension; r++ {
		for c := 0; c < dimension; c++ {
			g.cells[r*dimension+c] = newCell(r, c)
		}
	}
	return g, nil
}

// Dimension returns N, the number of rows (and columns).
func (g *Grid) Dimension() int { return g.n }

// Len returns the number of cells, N².
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// CellAt returns the cell at (row, col).
// Out-of-bounds indices yield an OUT_OF_RANGE error; they are never clamped.
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, errors.New(errors.ErrCodeOutOfRange, "cell (%d,%d) outside %dx%d grid", row, col, g.n, g.n)
	}
	return &g.cells[row*g.n+col], nil
}

// At returns the cell at a row-major index. It panics on an invalid index,
// like a slice access; use CellAt for user-supplied coordinates.
func (g *Grid) At(idx int) *Cell { return &g.cells[idx] }

// Index maps a position to its row-major index.
func (g *Grid) Index(p Pos) int { return p.Row*g.n + p.Col }

// IndexOf returns the row-major index of c, which must belong to g.
func (g *Grid) IndexOf(c *Cell) int { return c.Row*g.n + c.Col }

// PosOf maps a row-major index back to a position.
func (g *Grid) PosOf(idx int) Pos { return Pos{Row: idx / g.n, Col: idx % g.n} }

// All iterates over every cell in row-major order.
func (g *Grid) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// Row returns the cells of row r, left to right. The slice aliases the grid.
func (g *Grid) Row(r int) []Cell {
	return g.cells[r*g.n : (r+1)*g.n]
}

// NeighborsOf returns the in-bounds, non-Obstacle neighbors of c in the
// order down, up, left, right, computed from the current classifications.
func (g *Grid) NeighborsOf(c *Cell) []*Cell {
	out := make([]*Cell, 0, len(offsets))
	for _, d := range offsets {
		r, col := c.Row+d[0], c.Col+d[1]
		if !g.InBounds(r, col) {
			continue
		}
		nb := &g.cells[r*g.n+col]
		if nb.IsObstacle() {
			continue
		}
		out = append(out, nb)
	}
	return out
}

// UpdateAdjacency snapshots NeighborsOf for every cell. Searches read the
// snapshot through Adjacent, so it must be called after the last obstacle
// edit and before a run.
func (g *Grid) UpdateAdjacency() {
	adj := make([][]int, len(g.cells))
	for i := range g.cells {
		nbs := g.NeighborsOf(&g.cells[i])
		ids := make([]int, len(nbs))
		for j, nb := range nbs {
			ids[j] = g.IndexOf(nb)
		}
		adj[i] = ids
	}
	g.adj = adj
}

// HasAdjacency reports whether an adjacency snapshot exists.
func (g *Grid) HasAdjacency() bool { return g.adj != nil }

// Adjacent returns the snapshotted neighbor indices of the cell at idx.
// It returns nil when no snapshot has been taken.
func (g *Grid) Adjacent(idx int) []int {
	if g.adj == nil {
		return nil
	}
	return g.adj[idx]
}

// ResetAll makes every cell Free with an unknown distance and drops the
// adjacency snapshot. Calling it repeatedly has no further effect.
func (g *Grid) ResetAll() {
	for i := range g.cells {
		g.cells[i].Reset()
	}
	g.adj = nil
}

// ClearSearch reverts Frontier, Visited and Path cells to Free and forgets
// every distance, keeping Obstacle, Start and End in place.
func (g *Grid) ClearSearch() {
	for i := range g.cells {
		c := &g.cells[i]
		if c.kind.IsSearchMark() {
			c.Reset()
			continue
		}
		c.dist = Unreached
	}
}

// Census counts cells per kind.
func (g *Grid) Census() map[Kind]int {
	out := make(map[Kind]int, len(kindNames))
	for i := range g.cells {
		out[g.cells[i].kind]++
	}
	return out
}

// Find returns the first cell of kind k in row-major order, or nil.
func (g *Grid) Find(k Kind) *Cell {
	for i := range g.cells {
		if g.cells[i].kind == k {
			return &g.cells[i]
		}
	}
	return nil
}
