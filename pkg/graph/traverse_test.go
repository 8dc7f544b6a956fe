package graph

import (
	"slices"
	"strings"
	"testing"
)

// Test graphs use string nodes with the canonical identity/comparator pair.
func id(s string) string          { return s }
func cmp(a, b string) int         { return strings.Compare(a, b) }
func edge(from, to string) Edge[string] {
	return Edge[string]{From: from, To: to}
}

func build(nodes []string, edges ...Edge[string]) Graph[string] {
	return Graph[string]{Nodes: nodes, Edges: edges}
}

// requireOrder fails unless every edge's From appears before its To in order.
func requireOrder(t *testing.T, order []string, g Graph[string]) {
	t.Helper()
	pos := make(map[string]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	for _, e := range g.Edges {
		if pos[e.From] >= pos[e.To] {
			t.Errorf("order %v places %q after %q", order, e.From, e.To)
		}
	}
}

func TestIsCyclical_EmptyGraph(t *testing.T) {
	g := build(nil)
	if IsCyclical(g, id, cmp) {
		t.Error("IsCyclical() = true for empty graph")
	}
}

func TestIsCyclical_SingleNode(t *testing.T) {
	g := build([]string{"a"})
	if IsCyclical(g, id, cmp) {
		t.Error("IsCyclical() = true for single node without edges")
	}
}

func TestIsCyclical_Chain(t *testing.T) {
	g := build([]string{"a", "b", "c"}, edge("a", "b"), edge("b", "c"))
	if IsCyclical(g, id, cmp) {
		t.Error("IsCyclical() = true for acyclic chain")
	}
}

func TestIsCyclical_SelfLoop(t *testing.T) {
	g := build([]string{"a"}, edge("a", "a"))
	if !IsCyclical(g, id, cmp) {
		t.Error("IsCyclical() = false for self-loop")
	}
}

func TestIsCyclical_Triangle(t *testing.T) {
	g := build([]string{"a", "b", "c"}, edge("a", "b"), edge("b", "c"), edge("c", "a"))
	if !IsCyclical(g, id, cmp) {
		t.Error("IsCyclical() = false for 3-node cycle")
	}
}

func TestIsCyclical_Diamond(t *testing.T) {
	//   a
	//  / \
	// b   c
	//  \ /
	//   d
	g := build([]string{"a", "b", "c", "d"},
		edge("a", "b"), edge("a", "c"), edge("b", "d"), edge("c", "d"))
	if IsCyclical(g, id, cmp) {
		t.Error("IsCyclical() = true for diamond (shared sink is not a cycle)")
	}
}

func TestIsCyclical_CycleBehindPrefix(t *testing.T) {
	// a → b → c → d → b: the back-edge targets an ancestor, not the root.
	g := build([]string{"a", "b", "c", "d"},
		edge("a", "b"), edge("b", "c"), edge("c", "d"), edge("d", "b"))
	if !IsCyclical(g, id, cmp) {
		t.Error("IsCyclical() = false for cycle reached through a prefix path")
	}
}

func TestIsCyclical_CrossEdgeIsNotCycle(t *testing.T) {
	// Two roots sharing a sink: b is visited twice but never on the stack twice.
	g := build([]string{"a", "c", "b"}, edge("a", "b"), edge("c", "b"))
	if IsCyclical(g, id, cmp) {
		t.Error("IsCyclical() = true for cross-edge to an already-finished node")
	}
}

func TestCycles_Acyclic(t *testing.T) {
	g := build([]string{"a", "b", "c"}, edge("a", "b"), edge("b", "c"))
	if got := Cycles(g, id, cmp); len(got) != 0 {
		t.Errorf("Cycles() returned %d records, want 0", len(got))
	}
}

func TestCycles_SelfLoop(t *testing.T) {
	g := build([]string{"a"}, edge("a", "a"))
	got := Cycles(g, id, cmp)
	if len(got) != 1 {
		t.Fatalf("Cycles() returned %d records, want 1", len(got))
	}
	if !slices.Contains(got[0].Nodes, "a") {
		t.Errorf("cycle nodes = %v, want to contain %q", got[0].Nodes, "a")
	}
	if len(got[0].Edges) != 1 || got[0].Edges[0] != edge("a", "a") {
		t.Errorf("cycle edges = %v, want [a→a]", got[0].Edges)
	}
}

func TestCycles_TriangleClosesPath(t *testing.T) {
	g := build([]string{"a", "b", "c"}, edge("a", "b"), edge("b", "c"), edge("c", "a"))
	got := Cycles(g, id, cmp)
	if len(got) == 0 {
		t.Fatal("Cycles() returned no records for 3-node cycle")
	}
	c := got[0]
	if len(c.Edges) == 0 {
		t.Fatal("cycle record has no edges")
	}
	// The edge path must chain and the final back-edge must return to a
	// node on the recorded path.
	for i := 0; i < len(c.Edges)-1; i++ {
		if c.Edges[i].To != c.Edges[i+1].From {
			t.Errorf("edge path broken at %d: %v", i, c.Edges)
		}
	}
	last := c.Edges[len(c.Edges)-1]
	if !slices.Contains(c.Nodes, last.To) {
		t.Errorf("back-edge target %q not on recorded path %v", last.To, c.Nodes)
	}
}

func TestCycles_RecordsLeadInPrefix(t *testing.T) {
	// a → b → c → b: the record keeps the live DFS path, lead-in included.
	g := build([]string{"a", "b", "c"},
		edge("a", "b"), edge("b", "c"), edge("c", "b"))
	got := Cycles(g, id, cmp)
	if len(got) != 1 {
		t.Fatalf("Cycles() returned %d records, want 1", len(got))
	}
	wantNodes := []string{"a", "b", "c"}
	if !slices.Equal(got[0].Nodes, wantNodes) {
		t.Errorf("cycle nodes = %v, want %v", got[0].Nodes, wantNodes)
	}
	wantEdges := []Edge[string]{edge("a", "b"), edge("b", "c"), edge("c", "b")}
	if !slices.Equal(got[0].Edges, wantEdges) {
		t.Errorf("cycle edges = %v, want %v", got[0].Edges, wantEdges)
	}
}

func TestCycles_RootStopsAtFirstCycle(t *testing.T) {
	// The root reaches two disjoint cycles but its traversal stops at the
	// first one, so the root's record never includes the c/d branch. The
	// untouched c/d component is picked up by a later DFS root.
	g := build([]string{"root", "a", "b", "c", "d"},
		edge("root", "a"), edge("a", "b"), edge("b", "a"),
		edge("root", "c"), edge("c", "d"), edge("d", "c"))
	got := Cycles(g, id, cmp)
	if len(got) != 2 {
		t.Fatalf("Cycles() returned %d records, want 2", len(got))
	}
	wantFirst := []string{"root", "a", "b"}
	if !slices.Equal(got[0].Nodes, wantFirst) {
		t.Errorf("first record nodes = %v, want %v", got[0].Nodes, wantFirst)
	}
	for _, n := range got[0].Nodes {
		if n == "c" || n == "d" {
			t.Errorf("root record %v explored past the first cycle", got[0].Nodes)
		}
	}
}

func TestCycles_IndependentRootsReportSeparately(t *testing.T) {
	// Two components, each cyclic: one record each.
	g := build([]string{"a", "b", "c", "d"},
		edge("a", "b"), edge("b", "a"),
		edge("c", "d"), edge("d", "c"))
	got := Cycles(g, id, cmp)
	if len(got) != 2 {
		t.Errorf("Cycles() returned %d records, want 2", len(got))
	}
}

func TestTopologicalSort_Chain(t *testing.T) {
	g := build([]string{"c", "a", "b"}, edge("a", "b"), edge("b", "c"))
	order := TopologicalSort(g, id, cmp)
	if len(order) != 3 {
		t.Fatalf("order has %d nodes, want 3", len(order))
	}
	requireOrder(t, order, g)
}

func TestTopologicalSort_Diamond(t *testing.T) {
	g := build([]string{"a", "b", "c", "d"},
		edge("a", "b"), edge("a", "c"), edge("b", "d"), edge("c", "d"))
	order := TopologicalSort(g, id, cmp)
	requireOrder(t, order, g)

	pos := make(map[string]int)
	for i, n := range order {
		pos[n] = i
	}
	if pos["a"] != 0 {
		t.Errorf("order %v does not start with a", order)
	}
	if pos["d"] != 3 {
		t.Errorf("order %v does not end with d", order)
	}
}

func TestTopologicalSort_Deterministic(t *testing.T) {
	g := build([]string{"a", "b", "c", "d", "e"},
		edge("a", "c"), edge("b", "c"), edge("c", "d"), edge("c", "e"))
	first := TopologicalSort(g, id, cmp)
	second := TopologicalSort(g, id, cmp)
	if !slices.Equal(first, second) {
		t.Errorf("repeated sorts differ: %v vs %v", first, second)
	}
}

func TestTopologicalSort_DisconnectedNodes(t *testing.T) {
	g := build([]string{"x", "a", "b"}, edge("a", "b"))
	order := TopologicalSort(g, id, cmp)
	if len(order) != 3 {
		t.Fatalf("order has %d nodes, want 3", len(order))
	}
	requireOrder(t, order, g)
}
