package depgraph

// Inverse returns, for every package in adj, the ordered list of packages
// that depend on it directly. Every key of adj has an entry, empty when
// nothing depends on it; dependencies that are not keys get an entry too.
//
// Reverse lists follow the forward iteration order of (u, v) pairs, so a
// duplicated forward edge yields a duplicated reverse entry.
func Inverse(adj *AdjacencyMap) *AdjacencyMap {
	inv := newAdjacencyMap(adj.Len())
	for u, deps := range adj.All() {
		inv.ensure(u)
		for _, v := range deps {
			inv.ensure(v)
			inv.deps[v] = append(inv.deps[v], u)
		}
	}
	return inv
}
