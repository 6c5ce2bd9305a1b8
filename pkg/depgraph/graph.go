package depgraph

import (
	"iter"
	"slices"
)

// PackageID identifies a node. Comparison is exact and case-sensitive.
type PackageID = string

// Entry is one adjacency record: a package and its ordered direct dependencies.
type Entry struct {
	ID   PackageID
	Deps []PackageID
}

// Edge is a single dependency relation From -> To.
type Edge struct {
	From PackageID
	To   PackageID
}

// AdjacencyMap maps packages to their ordered direct dependencies.
//
// Keys keep insertion order. A package that is not a key is unexplored; a key
// with an empty list was explored and has no dependencies. Dependency lists
// are kept verbatim, duplicates included.
//
// An AdjacencyMap is read-only once constructed and safe for concurrent reads.
// Methods on a nil *AdjacencyMap behave like an empty map.
type AdjacencyMap struct {
	keys []PackageID
	deps map[PackageID][]PackageID
}

// NewAdjacencyMap builds a map from entries. A repeated ID replaces the
// earlier dependency list but keeps its original position.
func NewAdjacencyMap(entries ...Entry) *AdjacencyMap {
	m := newAdjacencyMap(len(entries))
	for _, e := range entries {
		m.set(e.ID, e.Deps)
	}
	return m
}

func newAdjacencyMap(capacity int) *AdjacencyMap {
	return &AdjacencyMap{
		keys: make([]PackageID, 0, capacity),
		deps: make(map[PackageID][]PackageID, capacity),
	}
}

func (m *AdjacencyMap) set(id PackageID, deps []PackageID) {
	m.ensure(id)
	m.deps[id] = append([]PackageID{}, deps...)
}

func (m *AdjacencyMap) ensure(id PackageID) {
	if _, ok := m.deps[id]; !ok {
		m.keys = append(m.keys, id)
		m.deps[id] = []PackageID{}
	}
}

// Len returns the number of keys.
func (m *AdjacencyMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Has reports whether id is a key.
func (m *AdjacencyMap) Has(id PackageID) bool {
	if m == nil {
		return false
	}
	_, ok := m.deps[id]
	return ok
}

// Keys returns the keys in insertion order.
func (m *AdjacencyMap) Keys() []PackageID {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Deps returns a copy of the dependency list of id and whether id is a key.
func (m *AdjacencyMap) Deps(id PackageID) ([]PackageID, bool) {
	if m == nil {
		return nil, false
	}
	deps, ok := m.deps[id]
	if !ok {
		return nil, false
	}
	return slices.Clone(deps), true
}

// All iterates over keys and their dependency lists in insertion order.
// The yielded slices are shared with the map and must not be modified.
func (m *AdjacencyMap) All() iter.Seq2[PackageID, []PackageID] {
	return func(yield func(PackageID, []PackageID) bool) {
		if m == nil {
			return
		}
		for _, id := range m.keys {
			if !yield(id, m.deps[id]) {
				return
			}
		}
	}
}

// Edges returns every (key, dependency) pair in iteration order.
func (m *AdjacencyMap) Edges() []Edge {
	edges := make([]Edge, 0, m.EdgeCount())
	for id, deps := range m.All() {
		for _, d := range deps {
			edges = append(edges, Edge{From: id, To: d})
		}
	}
	return edges
}

// EdgeCount returns the total length of all dependency lists.
func (m *AdjacencyMap) EdgeCount() int {
	n := 0
	for _, deps := range m.All() {
		n += len(deps)
	}
	return n
}

// Nodes returns every package that appears in the map, as a key or as a
// dependency, in first-appearance order.
func (m *AdjacencyMap) Nodes() []PackageID {
	seen := make(map[PackageID]bool, m.Len())
	var nodes []PackageID
	add := func(id PackageID) {
		if !seen[id] {
			seen[id] = true
			nodes = append(nodes, id)
		}
	}
	for id, deps := range m.All() {
		add(id)
		for _, d := range deps {
			add(d)
		}
	}
	return nodes
}

// Graph is the result of one construction pass.
type Graph struct {
	Root      PackageID     // Package the build started from
	MaxDepth  int           // Depth bound used for the build
	Adjacency *AdjacencyMap // Explored packages and their direct dependencies
}

// New wraps an existing adjacency map as a Graph, for fixtures and tests.
func New(root PackageID, maxDepth int, adj *AdjacencyMap) *Graph {
	if adj == nil {
		adj = newAdjacencyMap(0)
	}
	return &Graph{Root: root, MaxDepth: maxDepth, Adjacency: adj}
}
