package diagram

import (
	"strings"
	"testing"

	"github.com/mverbeek/depchart/pkg/graph"
)

func nodeText(n string) NodeLine { return NodeLine{Text: n} }

func edgeText(e graph.Edge[string]) EdgeLine {
	return EdgeLine{From: e.From, To: e.To}
}

func TestPlantUML_TwoNodesOneEdge(t *testing.T) {
	g := graph.Graph[string]{
		Nodes: []string{"A", "B"},
		Edges: []graph.Edge[string]{{From: "A", To: "B"}},
	}

	got := PlantUML(g, nodeText, edgeText)

	want := "@startuml\nA\nB\nA --> B\n@enduml"
	if got != want {
		t.Errorf("PlantUML() = %q, want %q", got, want)
	}
}

func TestPlantUML_EmptyGraph(t *testing.T) {
	got := PlantUML(graph.Graph[string]{}, nodeText, edgeText)
	if want := "@startuml\n@enduml"; got != want {
		t.Errorf("PlantUML() = %q, want %q", got, want)
	}
}

func TestPlantUML_Features(t *testing.T) {
	g := graph.Graph[string]{
		Nodes: []string{"users"},
		Edges: []graph.Edge[string]{{From: "users", To: "users"}},
	}
	node := func(n string) NodeLine {
		return NodeLine{Text: n, Features: []string{"<<table>>", "#line:blue"}}
	}
	edge := func(e graph.Edge[string]) EdgeLine {
		return EdgeLine{From: e.From, To: e.To, Features: []string{": self"}}
	}

	got := PlantUML(g, node, edge)

	want := "@startuml\nusers <<table>> #line:blue\nusers --> users : self\n@enduml"
	if got != want {
		t.Errorf("PlantUML() = %q, want %q", got, want)
	}
}

func TestPlantUML_PreservesInputOrder(t *testing.T) {
	g := graph.Graph[string]{
		Nodes: []string{"z", "a", "m"},
		Edges: []graph.Edge[string]{
			{From: "z", To: "a"},
			{From: "m", To: "z"},
		},
	}

	got := PlantUML(g, nodeText, edgeText)

	lines := strings.Split(got, "\n")
	want := []string{"@startuml", "z", "a", "m", "z --> a", "m --> z", "@enduml"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDOT_Shape(t *testing.T) {
	g := graph.Graph[string]{
		Nodes: []string{"A", "B"},
		Edges: []graph.Edge[string]{{From: "A", To: "B"}},
	}

	got := DOT(g, nodeText, edgeText)

	for _, want := range []string{"digraph G {", `"A";`, `"B";`, `"A" -> "B";`} {
		if !strings.Contains(got, want) {
			t.Errorf("DOT() missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "}\n") {
		t.Errorf("DOT() not closed:\n%s", got)
	}
}

func TestDOT_FeaturesBecomeAttributes(t *testing.T) {
	g := graph.Graph[string]{
		Nodes: []string{"A"},
		Edges: []graph.Edge[string]{{From: "A", To: "A"}},
	}
	node := func(n string) NodeLine {
		return NodeLine{Text: n, Features: []string{"fillcolor=lightgrey", "style=filled"}}
	}
	edge := func(e graph.Edge[string]) EdgeLine {
		return EdgeLine{From: e.From, To: e.To, Features: []string{"style=dashed"}}
	}

	got := DOT(g, node, edge)

	if !strings.Contains(got, `"A" [fillcolor=lightgrey, style=filled];`) {
		t.Errorf("DOT() node attrs wrong:\n%s", got)
	}
	if !strings.Contains(got, `"A" -> "A" [style=dashed];`) {
		t.Errorf("DOT() edge attrs wrong:\n%s", got)
	}
}
