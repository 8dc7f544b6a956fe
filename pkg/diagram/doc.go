// Package diagram renders graphs as textual diagram formats.
//
// Two exporters share the same shape: the caller supplies a [NodeFunc] and
// an [EdgeFunc] that turn nodes and edges into text lines, and the
// exporter concatenates them inside format markers. [PlantUML] produces a
// @startuml/@enduml block suitable for embedding in generated
// documentation; [DOT] produces a Graphviz digraph for external tooling.
//
// The exporters are deliberately dumb: no escaping, no validation that
// edge endpoint labels match node labels, no layout. Output line order is
// input order, nodes before edges.
package diagram
