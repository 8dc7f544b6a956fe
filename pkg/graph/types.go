package graph

// Graph is an immutable snapshot of a directed graph: a node list and an
// edge list. The library never inspects node structure - identity and
// ordering are supplied by the caller through an [IdentityFunc] and a
// [CompareFunc]. No validation is performed; edges referencing nodes that
// are missing from Nodes are the caller's responsibility.
//
// Node list order is irrelevant to correctness, but it seeds DFS start
// order, which affects which cycle records [Cycles] reports (not whether
// cycles are detected).
type Graph[N any] struct {
	Nodes []N
	Edges []Edge[N]
}

// Edge is a directed dependency: From depends on To.
// Edges are immutable value pairs with no identity of their own.
type Edge[N any] struct {
	From N
	To   N
}

// IdentityFunc extracts a stable key for a node. It must be pure and
// deterministic for the duration of a call. Two nodes are the same graph
// position exactly when their keys are equal; distinct nodes sharing a key
// silently collapse under the traversal's visited-set bookkeeping.
type IdentityFunc[N any, K comparable] func(N) K

// CompareFunc is a three-way comparator consistent with a total order over
// nodes: negative when a < b, zero when equal, positive when a > b.
//
// The zero result doubles as the edge-matching predicate: an edge e is an
// outgoing edge of node n when compare(e.From, n) == 0. Callers must
// therefore keep comparator equality in agreement with identity equality.
type CompareFunc[N any] func(a, b N) int

// Cycle is one discovered cycle: the DFS path at the moment a back-edge
// was found. The path is not necessarily a minimal cycle and records are
// not deduplicated across DFS roots.
type Cycle[N any] struct {
	Nodes []N
	Edges []Edge[N]
}

// Partition splits a graph's nodes relative to a target node.
// Dependencies precede the target in topological order, Dependents follow
// it. Both slices preserve topological order.
type Partition[N any] struct {
	Dependencies []N
	Dependents   []N
}
