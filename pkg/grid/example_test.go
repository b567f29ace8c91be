package grid_test

import (
	"fmt"

	"github.com/matzehuels/gridpath/pkg/grid"
)

func ExampleGrid_NeighborsOf() {
	g, _ := grid.New(3)
	wall, _ := g.CellAt(1, 0)
	wall.Classify(grid.Obstacle)

	c, _ := g.CellAt(1, 1)
	for _, nb := range g.NeighborsOf(c) {
		fmt.Println(nb.Pos())
	}
	// Output:
	// (2,1)
	// (0,1)
	// (1,2)
}

func ExampleGrid_CellAt() {
	g, _ := grid.New(2)
	_, err := g.CellAt(2, 0)
	fmt.Println(err)
	// Output:
	// OUT_OF_RANGE: cell (2,0) outside 2x2 grid
}
