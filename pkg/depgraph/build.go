package depgraph

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/depvis/pkg/deps"
	"github.com/matzehuels/depvis/pkg/errors"
	"github.com/matzehuels/depvis/pkg/observability"
)

// DefaultMaxDepth is the depth bound used by callers that have no configuration.
const DefaultMaxDepth = 10

// Options configures graph construction.
type Options struct {
	// MaxDepth is the number of edges from the root that will be expanded.
	// Zero fetches the root only; negative values are rejected.
	MaxDepth int

	// Concurrency bounds parallel fetches within one BFS level.
	// Values <= 1 fetch strictly one package at a time in FIFO order.
	Concurrency int

	// Hooks observes the build (optional).
	Hooks observability.BuildHooks
}

// BuildError reports the package whose lookup aborted construction.
type BuildError struct {
	Package PackageID // Package whose dependencies could not be fetched
	Depth   int       // Discovery depth of Package
	Err     error     // Source failure
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("fetch dependencies of %s: %v", e.Package, e.Err)
}

// Unwrap returns the source failure.
func (e *BuildError) Unwrap() error { return e.Err }

// Build constructs the dependency graph of root from src.
//
// Each distinct package is fetched at most once. Packages are fetched in BFS
// level order and siblings in the order src returned them. If any lookup
// fails, Build returns a [*BuildError] and no graph.
func Build(ctx context.Context, src deps.Source, root PackageID, opts Options) (*Graph, error) {
	switch {
	case src == nil:
		return nil, errors.New(errors.ErrCodeInvalidInput, "dependency source is nil")
	case root == "":
		return nil, errors.New(errors.ErrCodeInvalidInput, "root package is empty")
	case opts.MaxDepth < 0:
		return nil, errors.New(errors.ErrCodeInvalidInput, "max depth must not be negative, got %d", opts.MaxDepth)
	}

	b := &builder{
		ctx:     ctx,
		src:     src,
		opts:    opts,
		hooks:   observability.OrDefault(opts.Hooks),
		adj:     newAdjacencyMap(0),
		visited: make(map[PackageID]bool),
	}

	start := time.Now()
	b.hooks.OnBuildStart(ctx, root, opts.MaxDepth)

	var err error
	if opts.Concurrency > 1 {
		err = b.runLevels(root)
	} else {
		err = b.runQueue(root)
	}

	b.hooks.OnBuildComplete(ctx, root, b.adj.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &Graph{Root: root, MaxDepth: opts.MaxDepth, Adjacency: b.adj}, nil
}

// builder is the state of a single Build call.
type builder struct {
	ctx   context.Context
	src   deps.Source
	opts  Options
	hooks observability.BuildHooks

	adj     *AdjacencyMap
	visited map[PackageID]bool
}

type queued struct {
	id    PackageID
	depth int
}

func (b *builder) runQueue(root PackageID) error {
	queue := []queued{{id: root}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if b.visited[item.id] {
			continue
		}
		b.visited[item.id] = true

		deps, err := b.fetch(b.ctx, item.id, item.depth)
		if err != nil {
			return err
		}
		b.adj.set(item.id, deps)

		if item.depth+1 > b.opts.MaxDepth {
			continue
		}
		for _, d := range deps {
			if !b.visited[d] {
				queue = append(queue, queued{id: d, depth: item.depth + 1})
			}
		}
	}
	return nil
}

// runLevels is the concurrent variant of runQueue: every not-yet-visited
// package of one level is fetched before the next level starts, and results
// are recorded in the level's discovery order.
func (b *builder) runLevels(root PackageID) error {
	level := []PackageID{root}
	for depth := 0; len(level) > 0; depth++ {
		batch := b.claim(level)
		results, err := b.fetchAll(batch, depth)
		if err != nil {
			return err
		}

		var next []PackageID
		for i, id := range batch {
			b.adj.set(id, results[i])
			if depth+1 > b.opts.MaxDepth {
				continue
			}
			for _, d := range results[i] {
				if !b.visited[d] {
					next = append(next, d)
				}
			}
		}
		level = next
	}
	return nil
}

// claim drops duplicates and visited packages from level and marks the rest visited.
func (b *builder) claim(level []PackageID) []PackageID {
	var batch []PackageID
	for _, id := range level {
		if b.visited[id] {
			continue
		}
		b.visited[id] = true
		batch = append(batch, id)
	}
	return batch
}

// fetchAll queries every package of batch with bounded parallelism. When
// several lookups fail, the error of the earliest package in batch order wins.
func (b *builder) fetchAll(batch []PackageID, depth int) ([][]PackageID, error) {
	results := make([][]PackageID, len(batch))
	errs := make([]error, len(batch))

	var g errgroup.Group
	g.SetLimit(b.opts.Concurrency)
	for i, id := range batch {
		g.Go(func() error {
			results[i], errs[i] = b.fetch(b.ctx, id, depth)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (b *builder) fetch(ctx context.Context, id PackageID, depth int) ([]PackageID, error) {
	start := time.Now()
	deps, err := b.src.FetchDirect(ctx, id)
	b.hooks.OnFetch(ctx, id, depth, len(deps), time.Since(start), err)
	if err != nil {
		return nil, &BuildError{Package: id, Depth: depth, Err: err}
	}
	return deps, nil
}
