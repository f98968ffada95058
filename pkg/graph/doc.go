// Package graph implements the tagged, attributed directed multigraph at
// the center of the engine: nodes and edges carrying [metadata.Metadata],
// owned exclusively by the [Graph] that holds them.
//
// # Architecture
//
// The graph uses arena+index ownership rather than direct node↔edge
// references: the graph owns a node table keyed case-insensitively by
// [keyset.Normalize]; each [Node] owns two adjacency maps — sources and
// targets — keyed by the other endpoint's key and valued by the shared
// [Edge]. An edge that appears in a source node's targets always appears
// in the target node's sources under the same key; mutators that change
// one side always update the other in the same call.
//
// # Mutation
//
// [Graph.AddNode] and [Graph.Connect] fail loudly on invariant violations
// (duplicate node, duplicate edge, missing endpoint). Removal operations
// ([Graph.Disconnect], [Graph.RemoveNodes], …) are lenient: missing nodes
// or edges are silently skipped rather than treated as errors.
//
// # Serialization
//
// [WriteGraph]/[ReadGraph] implement the JSON wire format: node iteration
// is alphabetical by key, and per-node targets are alphabetical by target
// key, so repeated serialization of the same graph is byte-identical.
package graph
