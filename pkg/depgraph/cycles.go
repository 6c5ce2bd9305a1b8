package depgraph

import "strings"

// Cycle is a closed walk: the first and last element are equal.
// A self-loop is the two-element cycle [A, A].
type Cycle []PackageID

// String formats the cycle as "A -> B -> A".
func (c Cycle) String() string {
	return strings.Join(c, " -> ")
}

// DetectCycles returns the cycles found by a three-color depth-first search
// over every key of adj, in key order. Dependencies that are not keys are
// dead ends. The search keeps its own frame stack, so deep chains do not
// grow the goroutine stack.
func DetectCycles(adj *AdjacencyMap) []Cycle {
	const (
		white = iota
		gray
		black
	)

	type frame struct {
		id   PackageID
		deps []PackageID
		next int
	}

	var (
		color  = make(map[PackageID]int, adj.Len())
		onPath = make(map[PackageID]int) // gray node -> index in path
		path   []PackageID
		stack  []frame
		cycles []Cycle
	)

	enter := func(id PackageID) {
		color[id] = gray
		onPath[id] = len(path)
		path = append(path, id)
		var deps []PackageID
		if adj != nil {
			deps = adj.deps[id]
		}
		stack = append(stack, frame{id: id, deps: deps})
	}

	for root := range adj.All() {
		if color[root] != white {
			continue
		}
		enter(root)

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.deps) {
				color[top.id] = black
				delete(onPath, top.id)
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}

			v := top.deps[top.next]
			top.next++

			switch color[v] {
			case gray:
				cycle := make(Cycle, 0, len(path)-onPath[v]+1)
				cycle = append(cycle, path[onPath[v]:]...)
				cycles = append(cycles, append(cycle, v))
			case white:
				enter(v)
			}
		}
	}
	return cycles
}

// OnCycle returns the set of packages that belong to at least one cycle.
func OnCycle(cycles []Cycle) map[PackageID]bool {
	set := make(map[PackageID]bool)
	for _, c := range cycles {
		for _, id := range c {
			set[id] = true
		}
	}
	return set
}
