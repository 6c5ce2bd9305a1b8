package pipeline

import (
	"bytes"
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/depvis/pkg/depgraph"
	"github.com/matzehuels/depvis/pkg/errors"
	"github.com/matzehuels/depvis/pkg/io"
	"github.com/matzehuels/depvis/pkg/render/nodelink"
	"github.com/matzehuels/depvis/pkg/render/tree"
)

// Output formats.
const (
	FormatDOT  = "dot"
	FormatTree = "tree"
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatTree: true,
	FormatJSON: true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// ValidateFormat reports an INVALID_FORMAT error for unsupported formats.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (want one of %s)", format, formatList())
	}
	return nil
}

func formatList() string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// Render produces res in the given format. Text formats end with a newline.
// The tree is drawn from the graph root down to its depth bound.
func Render(ctx context.Context, res *Result, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	switch format {
	case FormatDOT:
		return []byte(nodelink.ToDOT(res.Graph.Adjacency, nodelink.Options{}) + "\n"), nil
	case FormatTree:
		return []byte(tree.Render(res.Graph.Adjacency, res.Graph.Root, res.Graph.MaxDepth) + "\n"), nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := io.WriteJSON(&buf, res.Report()); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode report")
		}
		return buf.Bytes(), nil
	default:
		out, err := nodelink.Render(ctx, StyledDOT(res), format)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		return out, nil
	}
}

// StyledDOT returns DOT with layout attributes and packages on a cycle filled.
func StyledDOT(res *Result) string {
	return nodelink.ToDOT(res.Graph.Adjacency, nodelink.Options{
		Styled:    true,
		Highlight: depgraph.OnCycle(res.Cycles),
	})
}

// FromReport turns a saved report back into a result, so it can be
// rendered without querying a source.
func FromReport(rep *io.Report) *Result {
	g := rep.Graph()
	cycles := make([]depgraph.Cycle, len(rep.Cycles))
	for i, c := range rep.Cycles {
		cycles[i] = depgraph.Cycle(c)
	}
	return &Result{
		Graph:   g,
		Cycles:  cycles,
		Inverse: depgraph.Inverse(g.Adjacency),
		Stats: Stats{
			NodeCount: g.Adjacency.Len(),
			EdgeCount: g.Adjacency.EdgeCount(),
		},
	}
}

// FormatFromPath infers an output format from a file extension.
func FormatFromPath(path string) (string, error) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %q", path)
	}
	format := strings.ToLower(path[i+1:])
	if format == "txt" {
		format = FormatTree
	}
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
