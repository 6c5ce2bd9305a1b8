// Package render groups the textual and graphical renderings of a
// dependency graph.
//
//   - [tree]: indented ASCII tree from a root, with path-local cycle marking
//   - [nodelink]: Graphviz DOT serialization and in-process SVG/PNG rendering
//
// Both are pure functions of an adjacency map; neither mutates the graph.
//
//	fmt.Println(tree.Render(g.Adjacency, g.Root, 10))
//	dot := nodelink.ToDOT(g.Adjacency, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(g.Adjacency, nodelink.Options{Styled: true}))
//
// [tree]: github.com/matzehuels/depvis/pkg/render/tree
// [nodelink]: github.com/matzehuels/depvis/pkg/render/nodelink
package render
