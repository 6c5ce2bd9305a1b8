// Package tree renders a dependency graph as an indented text tree.
//
// The output is pre-order from a root:
//
//	A
//	├─ B
//	│  └─ C
//	└─ C
//
// Cycle marking is path-local: a package is printed as "name (cycle)" only
// when it is already an ancestor on the current downward path, so a shared
// dependency reached through two branches is expanded under both.
package tree

import (
	"strings"

	"github.com/matzehuels/depvis/pkg/depgraph"
)

// Markers used in the rendering.
const (
	Branch     = "├─ "
	LastBranch = "└─ "
	Pipe       = "│  "
	Blank      = "   "

	CycleSuffix = " (cycle)"
	Truncated   = "... (max depth reached)"
)

// Render returns the tree of root in adj, one package per line, joined by
// newlines without a trailing newline. Packages below maxLevels (the root is
// level 0) are replaced by a [Truncated] placeholder.
func Render(adj *depgraph.AdjacencyMap, root string, maxLevels int) string {
	r := &renderer{
		adj:       adj,
		maxLevels: maxLevels,
		ancestors: make(map[string]bool),
	}
	r.node(root, "", "", 0)
	return strings.Join(r.lines, "\n")
}

type renderer struct {
	adj       *depgraph.AdjacencyMap
	maxLevels int
	ancestors map[string]bool
	lines     []string
}

// node writes id with its branch marker, then its children under indent.
func (r *renderer) node(id, indent, marker string, level int) {
	if level > r.maxLevels {
		r.lines = append(r.lines, indent+marker+Truncated)
		return
	}
	r.lines = append(r.lines, indent+marker+id)

	children, _ := r.adj.Deps(id)
	if len(children) == 0 {
		return
	}

	childIndent := indent + continuation(marker)
	r.ancestors[id] = true
	for i, c := range children {
		m := Branch
		if i == len(children)-1 {
			m = LastBranch
		}
		if r.ancestors[c] {
			r.lines = append(r.lines, childIndent+m+c+CycleSuffix)
			continue
		}
		r.node(c, childIndent, m, level+1)
	}
	delete(r.ancestors, id)
}

func continuation(marker string) string {
	switch marker {
	case Branch:
		return Pipe
	case LastBranch:
		return Blank
	default:
		return ""
	}
}
