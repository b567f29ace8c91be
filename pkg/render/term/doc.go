// Package term draws a board as coloured blocks in a terminal.
//
// Every cell becomes a run of CellWidth spaces whose background colour is
// looked up in a [Palette] keyed by the cell's classification. The colour
// is a rendering concern only; the grid never stores it.
//
//	r := term.New(2)
//	fmt.Println(r.Render(g))
//	fmt.Println(r.Legend())
//
// Terminals without colour support fall back to the layout alphabet when
// [Renderer.Glyphs] is set, which is also what the tests use to inspect
// frames.
//
// [Renderer.Locate] maps a terminal position inside the drawn board back to
// a cell by integer division by the cell width.
package term
