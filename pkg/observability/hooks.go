// Package observability provides hooks for graph construction events.
//
// Hooks let callers observe a build (progress logging, metrics, tests)
// without the graph engine depending on any backend. They are passed
// explicitly through build options; there is no process-wide registry.
//
// # Usage
//
//	g, err := depgraph.Build(ctx, src, "requests", depgraph.Options{
//	    MaxDepth: 10,
//	    Hooks:    observability.NewLogHooks(logger),
//	})
//
// Hook implementations must be safe for concurrent use when the build
// fetches with Concurrency > 1.
package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// BuildHooks receives events from dependency graph construction.
type BuildHooks interface {
	// OnBuildStart is called once before the root is fetched.
	OnBuildStart(ctx context.Context, root string, maxDepth int)

	// OnFetch is called after each source query with the discovery depth
	// of pkg and the number of dependencies it returned.
	OnFetch(ctx context.Context, pkg string, depth, deps int, duration time.Duration, err error)

	// OnBuildComplete is called once when construction finishes or aborts.
	OnBuildComplete(ctx context.Context, root string, nodes int, duration time.Duration, err error)
}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(context.Context, string, int)                           {}
func (NoopBuildHooks) OnFetch(context.Context, string, int, int, time.Duration, error)     {}
func (NoopBuildHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {}

// LogHooks reports build events through a charmbracelet logger.
// Fetches are logged at debug level, completion at info level and
// failures at error level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks creates LogHooks writing to l. A nil logger uses [log.Default].
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnBuildStart(_ context.Context, root string, maxDepth int) {
	h.logger.Debug("building dependency graph", "root", root, "max_depth", maxDepth)
}

func (h *LogHooks) OnFetch(_ context.Context, pkg string, depth, deps int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("fetch failed", "package", pkg, "depth", depth, "err", err)
		return
	}
	h.logger.Debug("fetched", "package", pkg, "depth", depth, "deps", deps, "duration", d.Round(time.Millisecond))
}

func (h *LogHooks) OnBuildComplete(_ context.Context, root string, nodes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("graph construction aborted", "root", root, "err", err)
		return
	}
	h.logger.Info("built dependency graph", "root", root, "nodes", nodes, "duration", d.Round(time.Millisecond))
}

// OrDefault returns h, or [NoopBuildHooks] when h is nil.
func OrDefault(h BuildHooks) BuildHooks {
	if h == nil {
		return NoopBuildHooks{}
	}
	return h
}
