package depgraph

import (
	"slices"
	"testing"
)

func TestInverse(t *testing.T) {
	adj := NewAdjacencyMap(
		Entry{"A", nil},
		Entry{"B", []string{"A"}},
		Entry{"C", []string{"A", "B"}},
	)

	inv := Inverse(adj)

	if got, want := inv.Keys(), []string{"A", "B", "C"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	want := map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
		"C": {},
	}
	for id, w := range want {
		got, ok := inv.Deps(id)
		if !ok || !slices.Equal(got, w) {
			t.Errorf("Inverse[%s] = %v, want %v", id, got, w)
		}
	}
}

func TestInverse_DanglingAndDuplicates(t *testing.T) {
	adj := NewAdjacencyMap(
		Entry{"A", []string{"X", "X"}},
	)

	inv := Inverse(adj)

	if got, want := inv.Keys(), []string{"A", "X"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got, _ := inv.Deps("X"); !slices.Equal(got, []string{"A", "A"}) {
		t.Errorf("Inverse[X] = %v, want [A A]", got)
	}
}

func TestInverse_EdgeCount(t *testing.T) {
	adj := NewAdjacencyMap(
		Entry{"a", []string{"b", "c"}},
		Entry{"b", []string{"c"}},
		Entry{"c", []string{"a"}},
	)

	inv := Inverse(adj)
	if inv.EdgeCount() != adj.EdgeCount() {
		t.Errorf("EdgeCount() = %d, want %d", inv.EdgeCount(), adj.EdgeCount())
	}
	for _, e := range adj.Edges() {
		deps, _ := inv.Deps(e.To)
		if !slices.Contains(deps, e.From) {
			t.Errorf("Inverse[%s] missing %s", e.To, e.From)
		}
	}
}

func TestInverse_Empty(t *testing.T) {
	if inv := Inverse(nil); inv.Len() != 0 {
		t.Errorf("Inverse(nil).Len() = %d, want 0", inv.Len())
	}
}
