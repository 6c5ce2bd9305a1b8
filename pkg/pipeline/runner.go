package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/depvis/pkg/depgraph"
	"github.com/matzehuels/depvis/pkg/deps"
	"github.com/matzehuels/depvis/pkg/errors"
	"github.com/matzehuels/depvis/pkg/observability"
)

// Runner executes the workflow against one dependency source.
//
// The Runner keeps no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Source deps.Source
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(src deps.Source, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Source: src, Logger: logger}
}

// Direct returns the direct dependencies of pkg.
func (r *Runner) Direct(ctx context.Context, pkg string) ([]string, error) {
	if err := errors.ValidatePackageName(pkg); err != nil {
		return nil, err
	}
	deps, err := r.Source.FetchDirect(ctx, pkg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSource, err, "direct dependencies of %s", pkg)
	}
	r.Logger.Debug("direct dependencies", "package", pkg, "count", len(deps))
	return deps, nil
}

// Analyze builds the dependency graph of root and derives its cycles and
// inverse. Construction is all-or-nothing: on failure no result is returned.
func (r *Runner) Analyze(ctx context.Context, root string, opts Options) (*Result, error) {
	if err := errors.ValidatePackageName(root); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := r.Logger.With("run", runID)

	hooks := opts.Hooks
	if hooks == nil {
		hooks = observability.NewLogHooks(logger)
	}

	start := time.Now()
	g, err := depgraph.Build(ctx, r.Source, root, depgraph.Options{
		MaxDepth:    opts.MaxDepth,
		Concurrency: opts.Concurrency,
		Hooks:       hooks,
	})
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeConstruction, err, "build dependency graph of %s", root)
	}

	res := &Result{
		RunID:   runID,
		Graph:   g,
		Cycles:  depgraph.DetectCycles(g.Adjacency),
		Inverse: depgraph.Inverse(g.Adjacency),
		Stats: Stats{
			BuildTime: time.Since(start),
			NodeCount: g.Adjacency.Len(),
			EdgeCount: g.Adjacency.EdgeCount(),
		},
	}

	logger.Debug("analyzed graph",
		"nodes", res.Stats.NodeCount,
		"edges", res.Stats.EdgeCount,
		"cycles", len(res.Cycles))
	return res, nil
}
