// Package csv emits a graph's nodes as CSV for the `csv` subcommand: one
// row per node with its key, kind, in-degree, out-degree, and (when an
// SCC run has been computed) its component index, using the standard
// library's encoding/csv writer.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/matzehuels/graphops/pkg/graph"
	"github.com/matzehuels/graphops/pkg/scc"
)

var header = []string{"key", "kind", "in_degree", "out_degree", "sccindex"}

// WriteNodes writes one CSV row per node of g, ascending by key. If
// result is non-nil, the sccindex column is populated from it;
// otherwise it is left blank.
func WriteNodes(w io.Writer, g *graph.Graph, result *scc.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, key := range g.NodeKeys() {
		n, _ := g.Node(key)
		sccIndex := ""
		if result != nil {
			if c, ok := result.ComponentForNode.Get(key); ok {
				sccIndex = strconv.Itoa(c.Index)
			}
		}
		row := []string{
			key,
			n.Kind().String(),
			strconv.Itoa(n.InDegree()),
			strconv.Itoa(n.OutDegree()),
			sccIndex,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
