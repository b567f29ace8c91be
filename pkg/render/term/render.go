package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/layout"
)

// Renderer draws boards. The zero value is not usable; use New.
type Renderer struct {
	Palette   Palette
	CellWidth int
	// Glyphs prints layout symbols instead of coloured blocks.
	Glyphs bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPalette replaces the default palette.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		if p != nil {
			r.Palette = p
		}
	}
}

// WithGlyphs switches to symbol output.
func WithGlyphs(on bool) Option {
	return func(r *Renderer) { r.Glyphs = on }
}

// New returns a renderer drawing cellWidth columns per cell. Widths below
// one are raised to one.
func New(cellWidth int, opts ...Option) *Renderer {
	r := &Renderer{Palette: DefaultPalette(), CellWidth: max(cellWidth, 1)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws g, one terminal line per grid row.
func (r *Renderer) Render(g *grid.Grid) string {
	n := g.Dimension()
	lines := make([]string, n)
	var sb strings.Builder
	for row := 0; row < n; row++ {
		sb.Reset()
		for _, c := range g.Row(row) {
			sb.WriteString(r.block(c.Kind()))
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) block(k grid.Kind) string {
	if r.Glyphs {
		return strings.Repeat(string(layout.Symbol(k)), r.CellWidth)
	}
	return r.Palette.Style(k).Render(strings.Repeat(" ", r.CellWidth))
}

// Legend draws one swatch per classification with its name.
func (r *Renderer) Legend() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	parts := make([]string, 0, len(grid.Kinds()))
	for _, k := range grid.Kinds() {
		parts = append(parts, r.block(k)+" "+label.Render(k.String()))
	}
	return strings.Join(parts, "  ")
}

// Width returns the number of terminal columns a board of dimension n
// occupies.
func (r *Renderer) Width(n int) int { return n * r.CellWidth }

// Locate maps a position relative to the top-left corner of a drawn
// board of dimension n to a cell. ok is false outside the board.
func (r *Renderer) Locate(x, y, n int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y, x/r.CellWidth
	if row >= n || col >= n {
		return 0, 0, false
	}
	return row, col, true
}
