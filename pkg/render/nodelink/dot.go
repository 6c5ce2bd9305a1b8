package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/depvis/pkg/depgraph"
)

// Options configures DOT generation.
type Options struct {
	// Styled adds layout and node attributes for rasterized output.
	// When false, the output is the bare statement list.
	Styled bool

	// Highlight fills the named packages (typically packages on a cycle).
	// Only used when Styled is set.
	Highlight map[string]bool
}

// ToDOT converts an adjacency map to Graphviz DOT, one statement per line:
// a declaration for every package without dependencies and one edge per
// dependency, in adjacency order.
func ToDOT(adj *depgraph.AdjacencyMap, opts Options) string {
	lines := []string{"digraph dependencies {"}
	if opts.Styled {
		lines = append(lines,
			"  rankdir=TB;",
			`  bgcolor="transparent";`,
			`  node [shape=box, style="rounded,filled", fillcolor=white, fontsize=14, margin="0.2,0.1"];`,
		)
		for _, id := range adj.Nodes() {
			if opts.Highlight[id] {
				lines = append(lines, fmt.Sprintf("  %q [fillcolor=%q];", id, "#f4cccc"))
			}
		}
	}

	for id, deps := range adj.All() {
		if len(deps) == 0 {
			lines = append(lines, fmt.Sprintf("  %q;", id))
		}
		for _, d := range deps {
			lines = append(lines, fmt.Sprintf("  %q -> %q;", id, d))
		}
	}

	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing scales from the
// origin regardless of the Graphviz page margins.
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

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// Formats lists the output formats accepted by [Render].
var Formats = []string{"dot", "svg", "png"}

// Render produces the named output format from DOT source.
func Render(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case "dot":
		return []byte(dot + "\n"), nil
	case "svg":
		return RenderSVG(ctx, dot)
	case "png":
		return RenderPNG(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}
