package rewrite

import "github.com/matzehuels/graphops/pkg/graph"

// PruneEdge removes the edge from source to target, if present. Missing
// endpoints or an already-absent edge are no-ops.
func PruneEdge(g *graph.Graph, source, target string) {
	g.Disconnect(source, target)
}

// PruneEdgesInto removes every edge into target. A missing target is a
// no-op.
func PruneEdgesInto(g *graph.Graph, target string) {
	g.DisconnectAllSources(target)
}

// PruneEdgesOutOf removes every edge out of source. A missing source is a
// no-op.
func PruneEdgesOutOf(g *graph.Graph, source string) {
	g.DisconnectAllTargets(source)
}

// PruneNode removes a node and all of its edges. A missing node is a
// no-op.
func PruneNode(g *graph.Graph, key string) {
	g.RemoveNodes([]string{key})
}
