package graph

// Analyzer binds an identity function and a comparator once and exposes
// the traversal operations without repeating them on every call. It adds
// no semantics over the package-level functions.
//
// An Analyzer holds no per-call state, so a single instance is safe to
// share across goroutines as long as the graphs passed in are not being
// mutated concurrently.
type Analyzer[N any, K comparable] struct {
	identity IdentityFunc[N, K]
	compare  CompareFunc[N]
}

// NewAnalyzer creates an analyzer bound to the given identity function and
// comparator. Both must satisfy the contracts documented on
// [IdentityFunc] and [CompareFunc].
func NewAnalyzer[N any, K comparable](identity IdentityFunc[N, K], compare CompareFunc[N]) *Analyzer[N, K] {
	return &Analyzer[N, K]{identity: identity, compare: compare}
}

// IsCyclical reports whether g contains a directed cycle.
func (a *Analyzer[N, K]) IsCyclical(g Graph[N]) bool {
	return IsCyclical(g, a.identity, a.compare)
}

// Cycles enumerates discovered cycles, one per DFS root that contains one.
func (a *Analyzer[N, K]) Cycles(g Graph[N]) []Cycle[N] {
	return Cycles(g, a.identity, a.compare)
}

// TopologicalSort returns g's nodes in topological order.
// The graph must be acyclic; see [TopologicalSort].
func (a *Analyzer[N, K]) TopologicalSort(g Graph[N]) []N {
	return TopologicalSort(g, a.identity, a.compare)
}

// Deps partitions g's nodes into dependencies and dependents of target.
func (a *Analyzer[N, K]) Deps(g Graph[N], target N) Partition[N] {
	return Deps(g, a.identity, a.compare, target)
}
