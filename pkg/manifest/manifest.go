package manifest

import (
	"strings"

	"github.com/mverbeek/depchart/pkg/errors"
	"github.com/mverbeek/depchart/pkg/graph"
)

// Node is a declared graph vertex. ID is the stable identity used for
// traversal and cache keys; Label is the display text for diagrams and
// defaults to ID when empty. Meta carries arbitrary string pairs (owner,
// kind, schema) that flow into detailed diagram labels.
type Node struct {
	ID    string            `json:"id" toml:"id"`
	Label string            `json:"label,omitempty" toml:"label"`
	Meta  map[string]string `json:"meta,omitempty" toml:"meta"`
}

// Display returns the node's diagram label: Label when set, ID otherwise.
func (n Node) Display() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge declares a directed dependency: From depends on To.
type Edge struct {
	From string `json:"from" toml:"from"`
	To   string `json:"to" toml:"to"`
}

// Document is a declared dependency graph as loaded from a manifest file.
type Document struct {
	Name  string `json:"name,omitempty" toml:"name"`
	Nodes []Node `json:"nodes" toml:"nodes"`
	Edges []Edge `json:"edges" toml:"edges"`
}

// Validate checks the document for structural problems: invalid or
// duplicate node IDs and edges referencing undeclared nodes. Returns a
// structured error with an INVALID_* code on the first problem found.
func (d *Document) Validate() error {
	if err := errors.ValidateGraphName(d.Name); err != nil {
		return err
	}

	seen := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return err
		}
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate node ID %q", n.ID)
		}
		seen[n.ID] = true
	}

	for _, e := range d.Edges {
		if !seen[e.From] {
			return errors.New(errors.ErrCodeInvalidEdge, "edge references undeclared node %q", e.From)
		}
		if !seen[e.To] {
			return errors.New(errors.ErrCodeInvalidEdge, "edge references undeclared node %q", e.To)
		}
	}
	return nil
}

// Node returns the declared node with the given ID, or false.
func (d *Document) Node(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Graph assembles the traversal snapshot for the graph core. Edge
// endpoints are resolved against the declared nodes so that node metadata
// is available on both ends; Validate should be called first.
func (d *Document) Graph() graph.Graph[Node] {
	byID := make(map[string]Node, len(d.Nodes))
	for _, n := range d.Nodes {
		byID[n.ID] = n
	}

	g := graph.Graph[Node]{
		Nodes: append([]Node(nil), d.Nodes...),
		Edges: make([]graph.Edge[Node], 0, len(d.Edges)),
	}
	for _, e := range d.Edges {
		g.Edges = append(g.Edges, graph.Edge[Node]{
			From: byID[e.From],
			To:   byID[e.To],
		})
	}
	return g
}

// Identity is the canonical identity function for manifest nodes.
func Identity(n Node) string { return n.ID }

// Compare is the canonical comparator for manifest nodes, ordering by ID.
// Its equality agrees with [Identity] as the graph core requires.
func Compare(a, b Node) int { return strings.Compare(a.ID, b.ID) }

// Analyzer returns a graph analyzer bound to the canonical identity and
// comparator for manifest nodes.
func Analyzer() *graph.Analyzer[Node, string] {
	return graph.NewAnalyzer(Identity, Compare)
}
