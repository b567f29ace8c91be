// Package nodelink renders a board as a node-link diagram.
//
// # Overview
//
// Every cell becomes a node filled with the colour of its classification,
// and every pair of orthogonally adjacent traversable cells becomes an
// undirected edge. Grid rows are pinned to the same rank so the diagram
// keeps the shape of the board. Edges along the shortest path are drawn
// thick.
//
// # Usage
//
// Convert a solved board to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, res.Path, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the hop distance from the start
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
