package term

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridpath/pkg/grid"
)

func board(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(3)
	if err != nil {
		t.Fatal(err)
	}
	mark := func(row, col int, k grid.Kind) {
		c, err := g.CellAt(row, col)
		if err != nil {
			t.Fatal(err)
		}
		c.Classify(k)
	}
	mark(0, 0, grid.Start)
	mark(2, 2, grid.End)
	mark(1, 1, grid.Obstacle)
	mark(0, 1, grid.Visited)
	mark(1, 0, grid.Path)
	mark(0, 2, grid.Frontier)
	return g
}

func TestRenderGlyphs(t *testing.T) {
	r := New(2, WithGlyphs(true))
	got := r.Render(board(t))
	want := "SSxxoo\n**##..\n....EE"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderDimensions(t *testing.T) {
	for _, width := range []int{1, 2, 4} {
		r := New(width)
		lines := strings.Split(r.Render(board(t)), "\n")
		if len(lines) != 3 {
			t.Fatalf("width %d: %d lines, want 3", width, len(lines))
		}
		for i, line := range lines {
			if w := lipgloss.Width(line); w != r.Width(3) {
				t.Errorf("width %d: line %d is %d columns, want %d", width, i, w, r.Width(3))
			}
		}
	}
}

func TestNewClampsWidth(t *testing.T) {
	if r := New(0); r.CellWidth != 1 {
		t.Errorf("CellWidth = %d, want 1", r.CellWidth)
	}
}

func TestPaletteCoversKinds(t *testing.T) {
	p := DefaultPalette()
	for _, k := range grid.Kinds() {
		if _, ok := p[k]; !ok {
			t.Errorf("DefaultPalette() misses %v", k)
		}
	}
	custom := Palette{grid.Free: lipgloss.NewStyle()}
	if r := New(1, WithPalette(custom)); len(r.Palette) != 1 {
		t.Error("WithPalette not applied")
	}
	if r := New(1, WithPalette(nil)); len(r.Palette) != len(grid.Kinds()) {
		t.Error("WithPalette(nil) should keep the default")
	}
}

func TestLegend(t *testing.T) {
	legend := New(1, WithGlyphs(true)).Legend()
	for _, k := range grid.Kinds() {
		if !strings.Contains(legend, k.String()) {
			t.Errorf("Legend() misses %q: %s", k, legend)
		}
	}
}

func TestLocate(t *testing.T) {
	r := New(2)
	tests := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{1, 0, 0, 0, true},
		{2, 0, 0, 1, true},
		{5, 2, 2, 2, true},
		{6, 0, 0, 0, false},
		{0, 3, 0, 0, false},
		{-1, 0, 0, 0, false},
	}
	for _, tt := range tests {
		row, col, ok := r.Locate(tt.x, tt.y, 3)
		if ok != tt.ok || (ok && (row != tt.row || col != tt.col)) {
			t.Errorf("Locate(%d,%d) = %d,%d,%v, want %d,%d,%v", tt.x, tt.y, row, col, ok, tt.row, tt.col, tt.ok)
		}
	}
}
