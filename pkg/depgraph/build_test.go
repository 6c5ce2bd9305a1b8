package depgraph

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/depvis/pkg/deps"
	deperrors "github.com/matzehuels/depvis/pkg/errors"
)

// mapSource serves dependencies from a map and records every query.
type mapSource struct {
	mu    sync.Mutex
	deps  map[string][]string
	fail  map[string]error
	calls []string
}

func newMapSource(deps map[string][]string) *mapSource {
	return &mapSource{deps: deps, fail: map[string]error{}}
}

func (s *mapSource) FetchDirect(_ context.Context, pkg string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, pkg)
	if err := s.fail[pkg]; err != nil {
		return nil, err
	}
	return s.deps[pkg], nil
}

func (s *mapSource) count(pkg string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == pkg {
			n++
		}
	}
	return n
}

var _ deps.Source = (*mapSource)(nil)

func TestBuild_Diamond(t *testing.T) {
	src := newMapSource(map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {},
	})

	g, err := Build(context.Background(), src, "A", Options{MaxDepth: 10})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if got, want := g.Adjacency.Keys(), []string{"A", "B", "C", "D"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got, want := src.calls, []string{"A", "B", "C", "D"}; !slices.Equal(got, want) {
		t.Errorf("fetch order = %v, want %v", got, want)
	}
	if n := src.count("D"); n != 1 {
		t.Errorf("D fetched %d times, want 1", n)
	}
	if g.Root != "A" || g.MaxDepth != 10 {
		t.Errorf("Graph = {%q, %d}, want {A, 10}", g.Root, g.MaxDepth)
	}
}

func TestBuild_DepthBound(t *testing.T) {
	chain := map[string][]string{
		"A": {"B"},
		"B": {"C"},
		"C": {"D"},
		"D": {},
	}

	tests := []struct {
		name     string
		maxDepth int
		keys     []string
	}{
		{"root only", 0, []string{"A"}},
		{"one level", 1, []string{"A", "B"}},
		{"two levels", 2, []string{"A", "B", "C"}},
		{"unbounded", 10, []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(context.Background(), newMapSource(chain), "A", Options{MaxDepth: tt.maxDepth})
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if got := g.Adjacency.Keys(); !slices.Equal(got, tt.keys) {
				t.Errorf("Keys() = %v, want %v", got, tt.keys)
			}
			// The deepest explored package keeps its list even though its
			// dependencies are not keys.
			last := tt.keys[len(tt.keys)-1]
			deps, _ := g.Adjacency.Deps(last)
			if want := chain[last]; !slices.Equal(deps, want) {
				t.Errorf("Deps(%s) = %v, want %v", last, deps, want)
			}
		})
	}
}

func TestBuild_Cycle(t *testing.T) {
	src := newMapSource(map[string][]string{
		"A": {"B"},
		"B": {"A"},
	})

	g, err := Build(context.Background(), src, "A", Options{MaxDepth: 10})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if g.Adjacency.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Adjacency.Len())
	}
	if len(src.calls) != 2 {
		t.Errorf("fetches = %v, want 2", src.calls)
	}
}

func TestBuild_UnknownPackageIsLeaf(t *testing.T) {
	src := newMapSource(map[string][]string{"A": {"ghost"}})

	g, err := Build(context.Background(), src, "A", Options{MaxDepth: 3})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	deps, ok := g.Adjacency.Deps("ghost")
	if !ok || len(deps) != 0 {
		t.Errorf("Deps(ghost) = %v, %v; want [], true", deps, ok)
	}
}

func TestBuild_FetchError(t *testing.T) {
	cause := errors.New("boom")
	src := newMapSource(map[string][]string{
		"A": {"B", "C"},
		"C": {},
	})
	src.fail["B"] = cause

	for _, conc := range []int{1, 4} {
		t.Run(fmt.Sprintf("concurrency=%d", conc), func(t *testing.T) {
			g, err := Build(context.Background(), src, "A", Options{MaxDepth: 5, Concurrency: conc})
			if g != nil {
				t.Errorf("Build() graph = %v, want nil", g)
			}
			var be *BuildError
			if !errors.As(err, &be) {
				t.Fatalf("Build() error = %v, want *BuildError", err)
			}
			if be.Package != "B" || be.Depth != 1 {
				t.Errorf("BuildError = {%s, %d}, want {B, 1}", be.Package, be.Depth)
			}
			if !errors.Is(err, cause) {
				t.Error("errors.Is(err, cause) = false")
			}
		})
	}
}

func TestBuild_InvalidInput(t *testing.T) {
	src := newMapSource(nil)

	tests := []struct {
		name string
		src  deps.Source
		root string
		opts Options
	}{
		{"nil source", nil, "A", Options{}},
		{"empty root", src, "", Options{}},
		{"negative depth", src, "A", Options{MaxDepth: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(context.Background(), tt.src, tt.root, tt.opts)
			if !deperrors.Is(err, deperrors.ErrCodeInvalidInput) {
				t.Errorf("Build() error = %v, want INVALID_INPUT", err)
			}
		})
	}
	if len(src.calls) != 0 {
		t.Errorf("source queried on invalid input: %v", src.calls)
	}
}

func TestBuild_ConcurrentMatchesSequential(t *testing.T) {
	data := map[string][]string{
		"root": {"a", "b", "c"},
		"a":    {"d", "e", "b"},
		"b":    {"e", "f"},
		"c":    {"g", "a"},
		"d":    {"h"},
		"e":    {"h", "root"},
		"f":    {},
		"g":    {"i"},
		"h":    {},
		"i":    {"j"},
		"j":    {},
	}

	seq, err := Build(context.Background(), newMapSource(data), "root", Options{MaxDepth: 3})
	if err != nil {
		t.Fatalf("sequential Build() error: %v", err)
	}

	src := newMapSource(data)
	par, err := Build(context.Background(), src, "root", Options{MaxDepth: 3, Concurrency: 4})
	if err != nil {
		t.Fatalf("concurrent Build() error: %v", err)
	}

	if got, want := par.Adjacency.Keys(), seq.Adjacency.Keys(); !slices.Equal(got, want) {
		t.Errorf("concurrent Keys() = %v, want %v", got, want)
	}
	for id, want := range seq.Adjacency.All() {
		got, _ := par.Adjacency.Deps(id)
		if !slices.Equal(got, want) {
			t.Errorf("Deps(%s) = %v, want %v", id, got, want)
		}
	}
	for _, id := range par.Adjacency.Keys() {
		if n := src.count(id); n != 1 {
			t.Errorf("%s fetched %d times, want 1", id, n)
		}
	}
}

type recordingHooks struct {
	mu       sync.Mutex
	started  bool
	fetches  int
	finished int
	err      error
}

func (h *recordingHooks) OnBuildStart(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = true
}

func (h *recordingHooks) OnFetch(context.Context, string, int, int, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fetches++
}

func (h *recordingHooks) OnBuildComplete(_ context.Context, _ string, nodes int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.finished = nodes
	h.err = err
}

func TestBuild_Hooks(t *testing.T) {
	src := newMapSource(map[string][]string{
		"A": {"B", "C"},
		"B": {},
		"C": {},
	})
	hooks := &recordingHooks{}

	if _, err := Build(context.Background(), src, "A", Options{MaxDepth: 2, Hooks: hooks}); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !hooks.started {
		t.Error("OnBuildStart not called")
	}
	if hooks.fetches != 3 {
		t.Errorf("OnFetch called %d times, want 3", hooks.fetches)
	}
	if hooks.finished != 3 || hooks.err != nil {
		t.Errorf("OnBuildComplete(nodes=%d, err=%v), want (3, nil)", hooks.finished, hooks.err)
	}
}
