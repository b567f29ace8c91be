package layout

import (
	"io"
	"strings"

	"github.com/matzehuels/gridpath/pkg/grid"
)

var symbols = map[grid.Kind]byte{
	grid.Free:     '.',
	grid.Obstacle: '#',
	grid.Start:    'S',
	grid.End:      'E',
	grid.Frontier: 'o',
	grid.Visited:  'x',
	grid.Path:     '*',
}

// Symbol returns the layout character for a classification.
func Symbol(k grid.Kind) byte {
	if b, ok := symbols[k]; ok {
		return b
	}
	return '?'
}

// Format prints g one row per line, including search marks.
func Format(g *grid.Grid) string {
	var sb strings.Builder
	n := g.Dimension()
	sb.Grow(n * (n + 1))
	for r := 0; r < n; r++ {
		for _, c := range g.Row(r) {
			sb.WriteByte(Symbol(c.Kind()))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write prints g to w as by [Format].
func Write(w io.Writer, g *grid.Grid) error {
	_, err := io.WriteString(w, Format(g))
	return err
}
