// Package rewrite implements the graph-to-graph transforms of spec.md
// §4.7: tag-based filtering, targeted pruning, and the two purification
// strategies (classic transitive reduction and SCC-quotient reduction).
package rewrite

import (
	"github.com/matzehuels/graphops/pkg/graph"
	"github.com/matzehuels/graphops/pkg/keyset"
)

// Filter selects nodes whose metadata carries any of tags under tagKey
// (default unkeyed tag key if tagKey is ""), then either keeps
// (include=true) or drops (include=false) them, scrubbing any resulting
// dangling edges from the remainder.
func Filter(g *graph.Graph, tags []string, tagKey string, include bool) {
	matched := keyset.NewSet(g.FindTaggedNodesAny(tags, tagKey)...)
	if include {
		g.RemoveOtherNodes(matched)
		return
	}
	g.RemoveNodes(matched.Slice())
}
