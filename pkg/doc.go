// Package pkg provides the core libraries for depvis dependency analysis.
//
// # Overview
//
// depvis builds the transitive dependency graph of a package, either from the
// PyPI JSON API or from a local test repository file, detects dependency
// cycles, computes reverse dependencies and renders the result as Graphviz
// DOT, an ASCII tree, a JSON report, SVG or PNG.
//
// # Architecture
//
// The typical data flow:
//
//	config file (XML or TOML)
//	         ↓
//	    [deps] source (PyPI or test repository)
//	         ↓
//	    [depgraph] package (bounded BFS, cycles, inverse graph)
//	         ↓
//	    [render] packages (DOT, ASCII tree) and [io] (JSON report)
//
// # Quick Start
//
//	src := fixture.New(map[string][]string{
//	    "A": {"B", "C"},
//	    "B": {"C"},
//	})
//	g, _ := depgraph.Build(ctx, src, "A", depgraph.Options{MaxDepth: 10})
//
//	for _, c := range depgraph.DetectCycles(g.Adjacency) {
//	    fmt.Println(c)
//	}
//	fmt.Println(nodelink.ToDOT(g.Adjacency, nodelink.Options{}))
//	fmt.Println(tree.Render(g.Adjacency, g.Root, g.MaxDepth))
//
// # Package Layout
//
// [config] - XML and TOML configuration with validation and defaults.
//
// [deps] - The [deps.Source] interface and its two implementations:
// deps/python (PyPI) and deps/fixture (test repository file).
//
// [integrations] - HTTP client shared by registry clients, and the PyPI
// client in integrations/pypi.
//
// [depgraph] - Graph construction, cycle detection and the inverse graph.
//
// [render] - Output formats: render/nodelink (DOT, SVG, PNG) and render/tree.
//
// [io] - JSON report export and import.
//
// [pipeline] - Config to source to graph to rendered output, shared by the
// CLI and the HTTP server.
//
// [observability] - Build hooks for logging construction progress.
//
// [errors] - Coded errors, exit codes and input validation.
//
// # Testing
//
//	go test ./...
//	go test ./pkg/depgraph/...
package pkg
