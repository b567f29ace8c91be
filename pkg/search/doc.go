// Package search runs unweighted shortest-path searches over a [grid.Grid].
//
// # Algorithm
//
// The engine is a breadth-first search. All edges have unit weight and the
// frontier is FIFO, so the first distance assigned to a cell is already
// minimal; the "distance" of a cell is a hop count, not a priority key.
// Each discovery is still guarded by a distance comparison
// (current+1 < neighbor), which in a unit-step graph never admits a second
// rediscovery, so every cell is enqueued at most once.
//
// Neighbors come from the grid's adjacency snapshot, which the caller must
// refresh with [grid.Grid.UpdateAdjacency] right before the search starts.
//
// # Step-wise and synchronous use
//
// [Search] exposes the run one unit of work at a time through
// [Search.Next]: one dequeue while exploring, then one path cell while
// tracing. Event loops use it to interleave input handling with the
// animation. [Run] drives a Search to completion, invoking a render
// callback after every step and polling its context once per iteration:
//
//	g.UpdateAdjacency()
//	res, err := search.Run(ctx, g, start, end, redraw)
//	if res.Found {
//	    fmt.Println("distance:", res.Distance)
//	}
//
// # Predecessors
//
// The predecessor map is a slice indexed by row-major cell index. A cell
// whose parent is itself is the root (the start cell); [NoParent] marks a
// cell that was never discovered. [Reconstruct] and [Tracer] walk the map
// from the end back to the start, marking [grid.Path] cells.
package search
