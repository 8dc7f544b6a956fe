// Package graph provides directed-graph traversal over caller-defined node
// types: cycle detection, cycle enumeration, topological sorting, and
// dependency partitioning.
//
// # Overview
//
// The package is parametric over two caller-supplied functions instead of
// requiring nodes to implement an interface: an [IdentityFunc] that
// extracts a stable key, and a three-way [CompareFunc] whose zero result
// also serves as the edge-matching predicate. This keeps arbitrary node
// types usable without wrapper types or a base interface.
//
// A [Graph] is a plain value - a node slice and an edge slice - treated as
// an immutable snapshot for the duration of each call. There is no
// construction or mutation API and no validation; callers assemble graphs
// from whatever source data they have (schema dependency lists, file
// trees, manifests) and pass them in.
//
// # Basic Usage
//
// Bind identity and comparison once with [NewAnalyzer], then run the
// operations:
//
//	a := graph.NewAnalyzer(
//		func(t Table) string { return t.Name },
//		func(x, y Table) int { return strings.Compare(x.Name, y.Name) },
//	)
//	if a.IsCyclical(g) {
//		for _, c := range a.Cycles(g) {
//			// report c.Nodes / c.Edges
//		}
//		return
//	}
//	order := a.TopologicalSort(g)
//	part := a.Deps(g, target)
//
// # Semantics Worth Knowing
//
//   - [TopologicalSort] does not check for cycles; on cyclic input its
//     result is unspecified. Run [IsCyclical] first when validity matters.
//   - [Cycles] reports at most one record per DFS root and stops that
//     root's exploration at the first cycle found.
//   - Self-loops are cycles of length one. Duplicate identity keys
//     collapse distinct nodes in the visited-set bookkeeping; keeping keys
//     unique per node is the caller's responsibility.
//   - Panics from caller-supplied functions propagate unmodified.
//
// # Concurrency
//
// All operations are pure over their inputs: the only mutable state is
// each call's local visited and recursion-stack sets. Concurrent calls are
// safe as long as the shared Graph value is not mutated while in use.
package graph
