package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/depvis/pkg/depgraph"
)

// Report is the serialized form of an analysis.
type Report struct {
	Root     string     `json:"root"`
	MaxDepth int        `json:"max_depth"`
	Nodes    []Node     `json:"nodes"`
	Cycles   [][]string `json:"cycles"`
	Reverse  []Reverse  `json:"reverse"`
}

// Node is an explored package and its ordered direct dependencies.
type Node struct {
	ID           string   `json:"id"`
	Dependencies []string `json:"dependencies"`
}

// Reverse lists the packages that depend on ID directly.
type Reverse struct {
	ID         string   `json:"id"`
	Dependents []string `json:"dependents"`
}

// NewReport assembles a report. A nil inverse is computed from g.
func NewReport(g *depgraph.Graph, cycles []depgraph.Cycle, inverse *depgraph.AdjacencyMap) *Report {
	if inverse == nil {
		inverse = depgraph.Inverse(g.Adjacency)
	}

	r := &Report{
		Root:     g.Root,
		MaxDepth: g.MaxDepth,
		Nodes:    make([]Node, 0, g.Adjacency.Len()),
		Cycles:   make([][]string, 0, len(cycles)),
		Reverse:  make([]Reverse, 0, inverse.Len()),
	}
	for id, deps := range g.Adjacency.All() {
		r.Nodes = append(r.Nodes, Node{ID: id, Dependencies: nonNil(deps)})
	}
	for _, c := range cycles {
		r.Cycles = append(r.Cycles, nonNil(c))
	}
	for id, deps := range inverse.All() {
		r.Reverse = append(r.Reverse, Reverse{ID: id, Dependents: nonNil(deps)})
	}
	return r
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// WriteJSON encodes r as indented JSON and writes it to w.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes r to a JSON file at path.
func ExportJSON(r *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, r)
}
