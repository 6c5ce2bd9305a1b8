// Package deps defines where dependency data comes from.
//
// # Overview
//
// depvis builds graphs from one of two interchangeable sources:
//
//   - A live package index ([python.Source], backed by the PyPI JSON API)
//   - A static test repository ([fixture.Repository], a flat text file)
//
// Both implement [Source]. The graph engine ([depgraph.Build]) depends only
// on that interface and never on which variant is active; the variant is
// selected from configuration by [pipeline.NewSource].
//
// # Errors
//
// Sources report failures as [*SourceError], which names the variant and
// wraps the cause:
//
//	deps, err := src.FetchDirect(ctx, "requests")
//	var se *deps.SourceError
//	if errors.As(err, &se) {
//	    fmt.Println("lookup failed in", se.Source)
//	}
//
// # Testing
//
// [SourceFunc] turns a closure into a Source, which keeps test doubles short:
//
//	src := deps.SourceFunc(func(ctx context.Context, pkg string) ([]string, error) {
//	    return map[string][]string{"A": {"B"}}[pkg], nil
//	})
//
// [python.Source]: github.com/matzehuels/depvis/pkg/deps/python
// [fixture.Repository]: github.com/matzehuels/depvis/pkg/deps/fixture
// [depgraph.Build]: github.com/matzehuels/depvis/pkg/depgraph
// [pipeline.NewSource]: github.com/matzehuels/depvis/pkg/pipeline
package deps
