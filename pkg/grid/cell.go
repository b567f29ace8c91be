package grid

import "fmt"

// Kind classifies a cell.
type Kind uint8

const (
	// Free is an empty, traversable cell.
	Free Kind = iota
	// Obstacle blocks movement.
	Obstacle
	// Start is the search source. At most one cell holds it.
	Start
	// End is the search target. At most one cell holds it.
	End
	// Frontier cells have been discovered but not yet expanded.
	Frontier
	// Visited cells have been dequeued and expanded.
	Visited
	// Path cells lie on the reconstructed shortest path.
	Path
)

var kindNames = [...]string{
	Free:     "free",
	Obstacle: "obstacle",
	Start:    "start",
	End:      "end",
	Frontier: "frontier",
	Visited:  "visited",
	Path:     "path",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsSearchMark reports whether the kind is written by a search run
// (Frontier, Visited or Path) rather than by the user.
func (k Kind) IsSearchMark() bool {
	return k == Frontier || k == Visited || k == Path
}

// Kinds lists every classification in declaration order.
func Kinds() []Kind {
	return []Kind{Free, Obstacle, Start, End, Frontier, Visited, Path}
}

// Unreached is the distance of a cell no search has reached yet.
const Unreached = -1

// Pos addresses a cell by row and column.
type Pos struct {
	Row int
	Col int
}

// String formats the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the 4-directional distance between p and q.
func (p Pos) Manhattan(q Pos) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell is one square of the grid and one vertex of the search graph.
//
// The zero value is a Free cell at (0,0) with distance 0; cells built by
// [New] start with an unknown distance instead.
type Cell struct {
	Row  int
	Col  int
	kind Kind
	dist int
}

func newCell(row, col int) Cell {
	return Cell{Row: row, Col: col, kind: Free, dist: Unreached}
}

// Pos returns the cell's position.
func (c *Cell) Pos() Pos { return Pos{Row: c.Row, Col: c.Col} }

// Kind returns the current classification.
func (c *Cell) Kind() Kind { return c.kind }

// Classify overwrites the classification. Reclassifying a cell as Free
// also forgets its distance.
func (c *Cell) Classify(k Kind) {
	c.kind = k
	if k == Free {
		c.dist = Unreached
	}
}

// Reset makes the cell Free with an unknown distance.
func (c *Cell) Reset() {
	c.kind = Free
	c.dist = Unreached
}

// SetDistance records the hop count from the search source.
func (c *Cell) SetDistance(d int) { c.dist = d }

// Distance returns the hop count from the search source, or Unreached.
func (c *Cell) Distance() int { return c.dist }

// Reached reports whether a search has assigned the cell a distance.
func (c *Cell) Reached() bool { return c.dist != Unreached }

// Closer reports whether d is strictly shorter than the cell's current
// distance. An unknown distance counts as infinite.
func (c *Cell) Closer(d int) bool {
	return c.dist == Unreached || d < c.dist
}

func (c *Cell) IsFree() bool     { return c.kind == Free }
func (c *Cell) IsObstacle() bool { return c.kind == Obstacle }
func (c *Cell) IsStart() bool    { return c.kind == Start }
func (c *Cell) IsEnd() bool      { return c.kind == End }
func (c *Cell) IsFrontier() bool { return c.kind == Frontier }
func (c *Cell) IsVisited() bool  { return c.kind == Visited }
func (c *Cell) IsPath() bool     { return c.kind == Path }

// String formats the cell for diagnostics, e.g. "(2,3) visited d=5".
func (c *Cell) String() string {
	if c.dist == Unreached {
		return fmt.Sprintf("%s %s", c.Pos(), c.kind)
	}
	return fmt.Sprintf("%s %s d=%d", c.Pos(), c.kind, c.dist)
}
