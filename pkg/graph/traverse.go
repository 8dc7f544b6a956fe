package graph

// IsCyclical reports whether the graph contains at least one directed cycle.
//
// The search is a depth-first traversal started from every node that has
// not been visited yet, in node list order. Outgoing edges of a node are
// selected by scanning the full edge list and keeping edges whose From
// compares equal to the node, so the cost is O(V*E). That is deliberate:
// dependency and schema graphs stay small, and the edge scan keeps neighbour
// iteration order identical to the input edge order, which [Cycles] relies on.
//
// A self-loop counts as a cycle of length one.
func IsCyclical[N any, K comparable](g Graph[N], identity IdentityFunc[N, K], compare CompareFunc[N]) bool {
	visited := make(map[K]bool, len(g.Nodes))
	onStack := make(map[K]bool)

	var visit func(n N) bool
	visit = func(n N) bool {
		key := identity(n)
		visited[key] = true
		onStack[key] = true

		for _, e := range g.Edges {
			if compare(e.From, n) != 0 {
				continue
			}
			next := identity(e.To)
			if !visited[next] {
				if visit(e.To) {
					return true
				}
			} else if onStack[next] {
				// Back-edge to an ancestor on the current path.
				return true
			}
		}

		delete(onStack, key)
		return false
	}

	for _, n := range g.Nodes {
		if !visited[identity(n)] && visit(n) {
			return true
		}
	}
	return false
}

// Cycles enumerates discovered cycles, one record per DFS root that
// contains one. Each record is the live DFS path (nodes and edges) at the
// moment a back-edge was found, so a record may carry a lead-in prefix
// before the cycle proper.
//
// Once a root's traversal hits a cycle it stops exploring that root, so
// additional disjoint cycles reachable from the same root after the first
// are not reported. Callers that depend on the coarse granularity get it
// unchanged; callers that need every elementary cycle need a different
// algorithm.
func Cycles[N any, K comparable](g Graph[N], identity IdentityFunc[N, K], compare CompareFunc[N]) []Cycle[N] {
	visited := make(map[K]bool, len(g.Nodes))
	onStack := make(map[K]bool)

	var (
		found    []Cycle[N]
		path     []N
		edgePath []Edge[N]
	)

	var visit func(n N) bool
	visit = func(n N) bool {
		key := identity(n)
		visited[key] = true
		onStack[key] = true
		path = append(path, n)

		for _, e := range g.Edges {
			if compare(e.From, n) != 0 {
				continue
			}
			edgePath = append(edgePath, e)

			next := identity(e.To)
			if !visited[next] {
				if visit(e.To) {
					return true
				}
			} else if onStack[next] {
				found = append(found, Cycle[N]{
					Nodes: append([]N(nil), path...),
					Edges: append([]Edge[N](nil), edgePath...),
				})
				return true
			}

			edgePath = edgePath[:len(edgePath)-1]
		}

		path = path[:len(path)-1]
		delete(onStack, key)
		return false
	}

	for _, n := range g.Nodes {
		if !visited[identity(n)] {
			path = path[:0]
			edgePath = edgePath[:0]
			visit(n)
		}
	}
	return found
}

// TopologicalSort returns the nodes in topological order: every edge's
// From appears before its To.
//
// The graph must be acyclic. No cycle check is performed here - on cyclic
// input the result is unspecified. Callers that need a guaranteed-valid
// order must run [IsCyclical] first.
//
// The order is deterministic for a given node and edge order: standard
// DFS postorder pushed onto a stack and reversed.
func TopologicalSort[N any, K comparable](g Graph[N], identity IdentityFunc[N, K], compare CompareFunc[N]) []N {
	visited := make(map[K]bool, len(g.Nodes))
	stack := make([]N, 0, len(g.Nodes))

	var visit func(n N)
	visit = func(n N) {
		visited[identity(n)] = true
		for _, e := range g.Edges {
			if compare(e.From, n) != 0 {
				continue
			}
			if !visited[identity(e.To)] {
				visit(e.To)
			}
		}
		stack = append(stack, n)
	}

	for _, n := range g.Nodes {
		if !visited[identity(n)] {
			visit(n)
		}
	}

	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return stack
}
