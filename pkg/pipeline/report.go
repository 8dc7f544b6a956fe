package pipeline

// Report is the analysis result for one graph document. It is shaped for
// direct JSON serialization by the HTTP API.
type Report struct {
	Name      string `json:"name,omitempty"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
	Cyclic    bool   `json:"cyclic"`

	// Cycles lists the node IDs along each discovered cycle, at most one
	// cycle per traversal root. Empty for acyclic graphs.
	Cycles [][]string `json:"cycles,omitempty"`

	// Order is a topological order of the node IDs. Omitted for cyclic
	// graphs, where no such order exists.
	Order []string `json:"order,omitempty"`

	// Deps is the dependency partition around the requested target node.
	// Only present when a target was requested.
	Deps *DepsReport `json:"deps,omitempty"`
}

// DepsReport partitions the graph's nodes around a target by topological
// position: Dependencies lists the nodes preceding the target in the
// order, Dependents the nodes following it.
type DepsReport struct {
	Target       string   `json:"target"`
	Dependencies []string `json:"dependencies"`
	Dependents   []string `json:"dependents"`
}
