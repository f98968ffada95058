package graph

import "github.com/matzehuels/graphops/pkg/metadata"

// Edge is a directed connection from Source to Target. At most one Edge
// exists between any ordered pair of nodes; self-edges (Source == Target)
// are permitted, but only one.
type Edge struct {
	Source   *Node
	Target   *Node
	Metadata *metadata.Metadata
}

func newEdge(source, target *Node) *Edge {
	return &Edge{Source: source, Target: target, Metadata: metadata.New()}
}
