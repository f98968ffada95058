package scc

import (
	"strconv"

	"github.com/matzehuels/graphops/pkg/graph"
)

// ComponentGraph materializes the quotient DAG of result over source: one
// node per component (named as in [Run], carrying an "sccindex" property
// equal to its index), and one edge between the components of u and v for
// every edge (u,v) in source whose endpoints lie in different components
// (duplicates merged via ConnectOrMergeEdge; self-edges at the component
// level are suppressed). Nodes of source absent from result's component
// map are tolerated — edges touching them are ignored.
func ComponentGraph(source *graph.Graph, result *Result) (*graph.Graph, error) {
	out := graph.New()
	for _, c := range result.Components {
		n, err := out.AddNode(c.Name)
		if err != nil {
			return nil, err
		}
		idx := c.Index
		n.Metadata.SetProperty("sccindex", strp(strconv.Itoa(idx)))
	}

	for _, srcKey := range source.NodeKeys() {
		srcComp, ok := result.ComponentForNode.Get(srcKey)
		if !ok {
			continue
		}
		n, _ := source.Node(srcKey)
		for _, tgtKey := range n.TargetKeys() {
			tgtComp, ok := result.ComponentForNode.Get(tgtKey)
			if !ok {
				continue
			}
			if tgtComp.Name == srcComp.Name {
				continue
			}
			if _, err := out.ConnectOrMergeEdge(srcComp.Name, tgtComp.Name, nil); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func strp(s string) *string { return &s }
