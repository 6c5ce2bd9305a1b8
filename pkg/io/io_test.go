package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/depvis/pkg/depgraph"
)

func scenarioGraph() *depgraph.Graph {
	return depgraph.New("A", 10, depgraph.NewAdjacencyMap(
		depgraph.Entry{ID: "A", Deps: []string{"B", "C"}},
		depgraph.Entry{ID: "B", Deps: []string{"C"}},
		depgraph.Entry{ID: "C"},
	))
}

func TestWriteJSON(t *testing.T) {
	g := scenarioGraph()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewReport(g, depgraph.DetectCycles(g.Adjacency), nil)); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["root"] != "A" || got["max_depth"] != float64(10) {
		t.Errorf("root/max_depth = %v/%v", got["root"], got["max_depth"])
	}
	if cycles, ok := got["cycles"].([]any); !ok || len(cycles) != 0 {
		t.Errorf("cycles = %v, want []", got["cycles"])
	}

	out := buf.String()
	for _, want := range []string{
		`"id": "C",`,
		`"dependencies": []`,
		`"dependents": [`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if strings.Index(out, `"id": "A"`) > strings.Index(out, `"id": "B"`) {
		t.Error("nodes not in adjacency order")
	}
}

func TestNewReport_Reverse(t *testing.T) {
	r := NewReport(scenarioGraph(), nil, nil)

	want := []Reverse{
		{ID: "A", Dependents: []string{}},
		{ID: "B", Dependents: []string{"A"}},
		{ID: "C", Dependents: []string{"A", "B"}},
	}
	if len(r.Reverse) != len(want) {
		t.Fatalf("Reverse = %v, want %v", r.Reverse, want)
	}
	for i := range want {
		if r.Reverse[i].ID != want[i].ID || !slices.Equal(r.Reverse[i].Dependents, want[i].Dependents) {
			t.Errorf("Reverse[%d] = %v, want %v", i, r.Reverse[i], want[i])
		}
	}
}

func TestExportImportJSON(t *testing.T) {
	g := depgraph.New("a", 2, depgraph.NewAdjacencyMap(
		depgraph.Entry{ID: "a", Deps: []string{"b"}},
		depgraph.Entry{ID: "b", Deps: []string{"a", "leaf"}},
	))
	path := filepath.Join(t.TempDir(), "report.json")

	if err := ExportJSON(NewReport(g, depgraph.DetectCycles(g.Adjacency), nil), path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	rep, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if len(rep.Cycles) != 1 || !slices.Equal(rep.Cycles[0], []string{"a", "b", "a"}) {
		t.Errorf("Cycles = %v", rep.Cycles)
	}

	back := rep.Graph()
	if back.Root != "a" || back.MaxDepth != 2 {
		t.Errorf("Graph() = {%s, %d}", back.Root, back.MaxDepth)
	}
	if !slices.Equal(back.Adjacency.Keys(), g.Adjacency.Keys()) {
		t.Errorf("Keys() = %v, want %v", back.Adjacency.Keys(), g.Adjacency.Keys())
	}
	if deps, _ := back.Adjacency.Deps("b"); !slices.Equal(deps, []string{"a", "leaf"}) {
		t.Errorf("Deps(b) = %v", deps)
	}
	if back.Adjacency.Has("leaf") {
		t.Error("terminal leaf became a key")
	}
}

func TestReadJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"root":`},
		{"no root", `{"nodes":[]}`},
		{"empty id", `{"root":"a","nodes":[{"id":""}]}`},
		{"duplicate id", `{"root":"a","nodes":[{"id":"a"},{"id":"a"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadJSON() expected error")
			}
		})
	}
}

func TestImportJSON_Missing(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ImportJSON() error = %v, want not-exist", err)
	}
}
