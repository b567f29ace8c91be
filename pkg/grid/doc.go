// Package grid provides the square board the path search runs on.
//
// # Overview
//
// A [Grid] is an N×N matrix of [Cell] values stored in row-major order.
// Every cell carries an explicit classification ([Kind]) and a tentative
// hop distance. Classification is the single source of truth for what a
// cell is: renderers map kinds to colors, never the other way around.
//
// # Adjacency
//
// Cells are connected 4-directionally. [Grid.NeighborsOf] computes the
// neighbors of a cell from the live classifications, always in the order
// down, up, left, right. Only [Obstacle] cells block movement; Start and
// End are traversable.
//
// Searches do not call NeighborsOf directly. The caller snapshots the
// whole adjacency with [Grid.UpdateAdjacency] right before a run and the
// search reads it through [Grid.Adjacent]. Obstacle edits made while the
// board is idle are therefore cheap and batched into a single recompute.
//
// # Lifecycle
//
//	g, err := grid.New(40)       // all cells Free, distance unknown
//	c, err := g.CellAt(3, 7)     // bounds-checked lookup
//	c.Classify(grid.Obstacle)
//	g.UpdateAdjacency()          // before each search run
//	g.ClearSearch()              // drop Frontier/Visited/Path marks
//	g.ResetAll()                 // everything Free again
//
// A Grid is not safe for concurrent use; it is owned by a single event loop.
package grid
