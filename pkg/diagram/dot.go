package diagram

import (
	"bytes"
	"fmt"

	"github.com/mverbeek/depchart/pkg/graph"
)

// DOT renders the graph in Graphviz DOT syntax using the same label
// functions as [PlantUML]. Node features become comma-separated attribute
// lists; edge features likewise. The output is text only - rasterizing it
// is left to external tooling.
func DOT[N any](g graph.Graph[N], node NodeFunc[N], edge EdgeFunc[N]) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=rounded];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		line := node(n)
		if len(line.Features) > 0 {
			fmt.Fprintf(&buf, "  %q [%s];\n", line.Text, joinFeatures(line.Features))
		} else {
			fmt.Fprintf(&buf, "  %q;\n", line.Text)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		line := edge(e)
		if len(line.Features) > 0 {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", line.From, line.To, joinFeatures(line.Features))
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", line.From, line.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func joinFeatures(features []string) string {
	var buf bytes.Buffer
	for i, f := range features {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(f)
	}
	return buf.String()
}
