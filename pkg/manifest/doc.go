// Package manifest loads declared dependency graphs from TOML or JSON
// files and adapts them for the graph core.
//
// A manifest declares nodes and directed edges ("from depends on to"):
//
//	name = "sales schema"
//
//	[[nodes]]
//	id = "orders"
//	label = "Orders"
//
//	[[nodes]]
//	id = "customers"
//
//	[[edges]]
//	from = "orders"
//	to = "customers"
//
// [LoadFile] detects the format from the extension and validates the
// result: node IDs must be unique and non-empty, and every edge endpoint
// must be declared. [Document.Graph] produces the immutable snapshot the
// traversal operations consume, with [Identity] and [Compare] as the
// canonical identity/comparator pair.
package manifest
