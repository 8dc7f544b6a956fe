package diagram

import (
	"strings"

	"github.com/mverbeek/depchart/pkg/graph"
)

// NodeLine is the textual representation of one node in a diagram.
// Features are appended after the text, space-separated, and are passed
// through verbatim (PlantUML stereotypes, colors, and so on).
type NodeLine struct {
	Text     string
	Features []string
}

// EdgeLine is the textual representation of one edge in a diagram.
// From and To are the rendered endpoint labels; no check is made that they
// correspond to any declared node line.
type EdgeLine struct {
	From     string
	To       string
	Features []string
}

// NodeFunc renders a node into its diagram line.
type NodeFunc[N any] func(N) NodeLine

// EdgeFunc renders an edge into its diagram line.
type EdgeFunc[N any] func(graph.Edge[N]) EdgeLine

// PlantUML renders the graph as a PlantUML text block: a @startuml marker,
// one line per node, one line per edge (`from --> to`), and a @enduml
// marker. Sections follow input order, with all node lines before all edge
// lines. The output is purely textual concatenation - callers own label
// uniqueness and escaping.
func PlantUML[N any](g graph.Graph[N], node NodeFunc[N], edge EdgeFunc[N]) string {
	var b strings.Builder
	b.WriteString("@startuml")

	for _, n := range g.Nodes {
		line := node(n)
		b.WriteString("\n")
		b.WriteString(line.Text)
		writeFeatures(&b, line.Features)
	}

	for _, e := range g.Edges {
		line := edge(e)
		b.WriteString("\n")
		b.WriteString(line.From)
		b.WriteString(" --> ")
		b.WriteString(line.To)
		writeFeatures(&b, line.Features)
	}

	b.WriteString("\n@enduml")
	return b.String()
}

func writeFeatures(b *strings.Builder, features []string) {
	for _, f := range features {
		b.WriteString(" ")
		b.WriteString(f)
	}
}
