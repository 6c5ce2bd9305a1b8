// Package pipeline runs the depvis analysis workflow.
//
// This package holds the logic shared by the CLI and the HTTP API, so both
// entry points select sources, build graphs and render outputs the same way.
//
// # Stages
//
//  1. Source: pick the dependency source from configuration ([NewSource])
//  2. Direct: look up the root's direct dependencies ([Runner.Direct])
//  3. Analyze: build the bounded graph, detect cycles, invert edges ([Runner.Analyze])
//  4. Render: produce DOT, tree, JSON, SVG or PNG output ([Render])
//
// # Usage
//
//	cfg, err := config.Load("config_example.xml")
//	src, err := pipeline.NewSource(cfg)
//	runner := pipeline.NewRunner(src, logger)
//
//	res, err := runner.Analyze(ctx, cfg.PackageName, pipeline.Options{MaxDepth: cfg.MaxDepth})
//	out, err := pipeline.Render(ctx, res, pipeline.FormatDOT)
package pipeline

import (
	"time"

	"github.com/matzehuels/depvis/pkg/config"
	"github.com/matzehuels/depvis/pkg/depgraph"
	"github.com/matzehuels/depvis/pkg/deps"
	"github.com/matzehuels/depvis/pkg/deps/fixture"
	"github.com/matzehuels/depvis/pkg/deps/python"
	"github.com/matzehuels/depvis/pkg/errors"
	"github.com/matzehuels/depvis/pkg/io"
	"github.com/matzehuels/depvis/pkg/observability"
)

// DefaultMaxDepth is the depth bound used when none is configured.
const DefaultMaxDepth = config.DefaultMaxDepth

// Options configures one analysis.
type Options struct {
	MaxDepth    int                       // Depth bound for construction
	Concurrency int                       // Parallel fetches per BFS level (<= 1 is sequential)
	Hooks       observability.BuildHooks // Build observer (default: log hooks on the runner's logger)
}

// Result is the outcome of one analysis.
type Result struct {
	RunID   string                 // Unique id of this run, attached to log lines
	Graph   *depgraph.Graph        // Explored graph
	Cycles  []depgraph.Cycle       // Cycles in discovery order, duplicates preserved
	Inverse *depgraph.AdjacencyMap // Direct dependents of every package
	Stats   Stats
}

// Stats holds analysis metrics.
type Stats struct {
	BuildTime time.Duration
	NodeCount int
	EdgeCount int
}

// Report converts the result to its JSON report form.
func (r *Result) Report() *io.Report {
	return io.NewReport(r.Graph, r.Cycles, r.Inverse)
}

// Dependents returns the packages that depend directly on id.
func (r *Result) Dependents(id string) []string {
	deps, _ := r.Inverse.Deps(id)
	return deps
}

// NewSource returns the dependency source selected by cfg: the fixture file
// named by repository_url in test mode, otherwise the PyPI JSON API with
// package_version pinned for the root package.
func NewSource(cfg *config.Config) (deps.Source, error) {
	if cfg.TestRepoMode {
		repo, err := fixture.Load(cfg.RepositoryURL)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFixture, err, "load test repository")
		}
		return repo, nil
	}
	return python.NewSource(python.Options{
		BaseURL: cfg.RepositoryURL,
		Timeout: cfg.Timeout(),
		Pins:    map[string]string{cfg.PackageName: cfg.PackageVersion},
	}), nil
}
