package graph

// Deps partitions every node other than target into dependencies (nodes
// preceding target in topological order) and dependents (nodes following
// it), preserving the topological order within each slice.
//
// The partition is index-based: a topological sort is computed and each
// node is classified by its position relative to target's position. When
// the index lookup cannot place a node - in practice, when target itself
// is absent from the graph - classification falls back to the comparator:
// negative means dependency, positive means dependent, zero means neither.
// The fallback is only as good as the agreement between the comparator and
// the sort, which is part of the [CompareFunc] contract.
//
// Like [TopologicalSort], Deps assumes an acyclic graph.
func Deps[N any, K comparable](g Graph[N], identity IdentityFunc[N, K], compare CompareFunc[N], target N) Partition[N] {
	order := TopologicalSort(g, identity, compare)

	index := make(map[K]int, len(order))
	for i, n := range order {
		index[identity(n)] = i
	}

	targetPos, targetPlaced := index[identity(target)]

	var p Partition[N]
	for _, n := range order {
		pos, placed := index[identity(n)]
		if targetPlaced && placed {
			switch {
			case pos < targetPos:
				p.Dependencies = append(p.Dependencies, n)
			case pos > targetPos:
				p.Dependents = append(p.Dependents, n)
			}
			continue
		}
		switch c := compare(n, target); {
		case c < 0:
			p.Dependencies = append(p.Dependencies, n)
		case c > 0:
			p.Dependents = append(p.Dependents, n)
		}
	}
	return p
}
