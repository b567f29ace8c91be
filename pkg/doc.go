// Package pkg provides the core libraries of gridpath, a breadth-first
// shortest-path visualizer for square grids.
//
// # Overview
//
// Gridpath lets a user place a start, an end and obstacles on an N×N board
// and animates an unweighted breadth-first search between the two, followed
// by the reconstruction of the shortest path. The pkg directory is organized
// into four areas:
//
//  1. [grid], [search] - Domain logic (board model, search engine, path walk)
//  2. [session] - Interaction controller owning the board and its runs
//  3. [layout], [render] - Text boards in and out, terminal and Graphviz drawing
//  4. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through gridpath:
//
//	mouse presses / layout file
//	         ↓
//	    [session] package (designate start, end, obstacles)
//	         ↓
//	    [grid] package (classified cells + adjacency snapshot)
//	         ↓
//	    [search] package (BFS, one dequeue per step, then path walk)
//	         ↓
//	    [render] packages (terminal blocks, DOT/SVG)
//
// # Quick Start
//
// Solve a board described as text:
//
//	import (
//	    "context"
//	    "fmt"
//	    "strings"
//	    "github.com/matzehuels/gridpath/pkg/layout"
//	)
//
//	l, _ := layout.Read(strings.NewReader("S..\n.#.\n..E\n"))
//	s, _ := l.Load(context.Background())
//	res, _ := s.Run(context.Background(), nil)
//	fmt.Println(res.Distance) // 4
//	fmt.Print(layout.Format(s.Grid()))
//
// # Main Packages
//
// [grid] - The board: cells with an explicit classification and hop
// distance, 4-directional adjacency in the order down, up, left, right.
//
// [search] - The engine. [search.New] checks preconditions and seeds the
// queue; [search.Search.Next] performs one unit of work so event loops can
// redraw between steps. [search.Run] drives it synchronously.
//
// [session] - Turns primary and secondary presses into grid edits, enforces
// the start/end invariants and owns the active run.
//
// [layout] - Plain-text boards ('.', '#', 'S', 'E') replayed through a
// session, and printed back with search marks.
//
// [render] - Terminal block rendering and Graphviz node-link export.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for per-step diagnostics and edit events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/search/...     # Specific package
//	go test -run Example ./...   # Examples only
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/gridpath/pkg/grid
// [search]: https://pkg.go.dev/github.com/matzehuels/gridpath/pkg/search
// [session]: https://pkg.go.dev/github.com/matzehuels/gridpath/pkg/session
// [layout]: https://pkg.go.dev/github.com/matzehuels/gridpath/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/gridpath/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridpath/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridpath/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/gridpath/pkg/buildinfo
package pkg
