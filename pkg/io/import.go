package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/depvis/pkg/depgraph"
)

// ReadJSON decodes a report from r. It fails when the root is missing or a
// node ID is empty or repeated. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if rep.Root == "" {
		return nil, fmt.Errorf("report has no root")
	}

	seen := make(map[string]bool, len(rep.Nodes))
	for i, n := range rep.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node %d: empty id", i)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("node %s: duplicate id", n.ID)
		}
		seen[n.ID] = true
	}
	return &rep, nil
}

// ImportJSON reads the report stored at path.
func ImportJSON(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rep, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rep, nil
}

// Graph rebuilds the dependency graph described by the report.
func (r *Report) Graph() *depgraph.Graph {
	entries := make([]depgraph.Entry, len(r.Nodes))
	for i, n := range r.Nodes {
		entries[i] = depgraph.Entry{ID: n.ID, Deps: n.Dependencies}
	}
	return depgraph.New(r.Root, r.MaxDepth, depgraph.NewAdjacencyMap(entries...))
}
