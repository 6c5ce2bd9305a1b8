// Package depgraph builds and analyzes directed package dependency graphs.
//
// # Overview
//
// A graph is built once from a root package by [Build], which walks the
// dependencies reported by a [deps.Source] breadth-first up to a depth
// bound. The result is a [Graph] holding an insertion-ordered
// [AdjacencyMap]. After construction nothing mutates the graph; the
// analyses below are pure functions of it and may run in any order:
//
//   - [DetectCycles]: every closed walk found by a colored depth-first search
//   - [Inverse]: who depends on each package
//
// Renderings live in sibling packages ([tree] and [nodelink]).
//
// # Construction
//
// Build maintains a FIFO queue of (package, depth) pairs seeded with the
// root at depth 0. Each distinct package is fetched at most once, on first
// discovery. A package discovered at depth d is expanded only when
// d+1 <= MaxDepth, so packages one level past the bound appear as terminal
// leaves: they are listed as dependencies but never become keys.
//
//	g, err := depgraph.Build(ctx, src, "A", depgraph.Options{MaxDepth: 10})
//	if err != nil {
//	    var be *depgraph.BuildError
//	    if errors.As(err, &be) {
//	        fmt.Println("lookup failed for", be.Package)
//	    }
//	}
//
// Construction is all-or-nothing: the first failing lookup aborts the build
// and no partial graph is returned.
//
// # Cycles
//
// DetectCycles starts a search from every key that is still unvisited, in
// key order, so cycles in components unreachable from the root are reported
// too. A cycle is reported each time the search meets a node that is on the
// current path; the same loop may be reported more than once when it is
// entered through different edges.
//
// # Concurrency
//
// A Graph is safe for concurrent reads. Build itself is sequential unless
// [Options.Concurrency] is above one, in which case the packages of a single
// BFS level are fetched in parallel while the recorded order stays the same.
//
// [tree]: github.com/matzehuels/depvis/pkg/render/tree
// [nodelink]: github.com/matzehuels/depvis/pkg/render/nodelink
package depgraph
