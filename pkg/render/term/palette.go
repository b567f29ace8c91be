package term

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridpath/pkg/grid"
)

// Palette maps a classification to the style of its block.
type Palette map[grid.Kind]lipgloss.Style

var (
	colorFree     = lipgloss.Color("#FFFFFF")
	colorObstacle = lipgloss.Color("#000000")
	colorStart    = lipgloss.Color("#FFA500")
	colorEnd      = lipgloss.Color("#40E0D0")
	colorFrontier = lipgloss.Color("#00FF00")
	colorVisited  = lipgloss.Color("#FF0000")
	colorPath     = lipgloss.Color("#800080")
)

// DefaultPalette returns the standard colours: white free cells, black
// obstacles, orange start, turquoise end, green frontier, red visited and
// purple path.
func DefaultPalette() Palette {
	block := lipgloss.NewStyle()
	return Palette{
		grid.Free:     block.Background(colorFree),
		grid.Obstacle: block.Background(colorObstacle),
		grid.Start:    block.Background(colorStart),
		grid.End:      block.Background(colorEnd),
		grid.Frontier: block.Background(colorFrontier),
		grid.Visited:  block.Background(colorVisited),
		grid.Path:     block.Background(colorPath),
	}
}

// Style returns the style for k, or an unstyled block for kinds the
// palette does not cover.
func (p Palette) Style(k grid.Kind) lipgloss.Style {
	if s, ok := p[k]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
