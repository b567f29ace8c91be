// Package render groups the ways a board is drawn.
//
// # Overview
//
// Rendering is kept out of the grid: cells only carry a classification and
// each renderer decides what that looks like.
//
//   - Terminal blocks (in [term] subpackage)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Terminal
//
// The [term] subpackage draws one coloured block per cell and is what the
// interactive visualizer redraws after every search step.
//
//	r := term.New(2)
//	fmt.Println(r.Render(g))
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage exports a solved board through Graphviz.
//
//	dot := nodelink.ToDOT(g, res.Path, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [term]: github.com/matzehuels/gridpath/pkg/render/term
// [nodelink]: github.com/matzehuels/gridpath/pkg/render/nodelink
package render
