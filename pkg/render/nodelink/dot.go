package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the hop distance of reached cells to node labels.
	// When false, only the cell position is shown.
	Detailed bool
}

var fills = map[grid.Kind]string{
	grid.Free:     "#FFFFFF",
	grid.Obstacle: "#000000",
	grid.Start:    "#FFA500",
	grid.End:      "#40E0D0",
	grid.Frontier: "#00FF00",
	grid.Visited:  "#FF0000",
	grid.Path:     "#800080",
}

// ToDOT converts a board to Graphviz DOT format. path is the start→end
// cell sequence of a found route, or nil.
//
// Obstacles are drawn but have no visible edges; invisible edges keep
// them in their row and column.
func ToDOT(g *grid.Grid, path []grid.Pos, opts Options) string {
	onPath := make(map[[2]grid.Pos]bool, len(path))
	for i := 1; i < len(path); i++ {
		onPath[[2]grid.Pos{path[i-1], path[i]}] = true
		onPath[[2]grid.Pos{path[i], path[i-1]}] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, width=0.6, height=0.6, fixedsize=true];\n")
	buf.WriteString("  edge [dir=none, color=\"#888888\"];\n")
	buf.WriteString("  ranksep=0.3;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	n := g.Dimension()
	for r := 0; r < n; r++ {
		ids := make([]string, 0, n)
		for _, c := range g.Row(r) {
			id := nodeID(c.Pos())
			ids = append(ids, id)
			fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(fmtAttrs(&c, opts.Detailed), ", "))
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
	}

	buf.WriteString("\n")
	for c := range g.All() {
		p := c.Pos()
		for _, q := range []grid.Pos{{Row: p.Row, Col: p.Col + 1}, {Row: p.Row + 1, Col: p.Col}} {
			nb, err := g.CellAt(q.Row, q.Col)
			if err != nil {
				continue
			}
			var attrs []string
			switch {
			case c.IsObstacle() || nb.IsObstacle():
				attrs = append(attrs, "style=invis")
			case onPath[[2]grid.Pos{p, q}]:
				attrs = append(attrs, "color=\""+fills[grid.Path]+"\"", "penwidth=4")
			}
			fmt.Fprintf(&buf, "  %s -> %s", nodeID(p), nodeID(q))
			if len(attrs) > 0 {
				fmt.Fprintf(&buf, " [%s]", strings.Join(attrs, ", "))
			}
			buf.WriteString(";\n")
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p grid.Pos) string {
	return fmt.Sprintf("c%d_%d", p.Row, p.Col)
}

func fmtLabel(c *grid.Cell, detailed bool) string {
	label := fmt.Sprintf("%d,%d", c.Row, c.Col)
	if detailed && c.Reached() {
		label += "\nd=" + strconv.Itoa(c.Distance())
	}
	return label
}

func fmtAttrs(c *grid.Cell, detailed bool) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(c, detailed)),
		fmt.Sprintf("fillcolor=%q", fills[c.Kind()]),
	}
	switch c.Kind() {
	case grid.Obstacle, grid.Visited, grid.Path:
		attrs = append(attrs, "fontcolor=white")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
