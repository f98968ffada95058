package dot

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/matzehuels/graphops/pkg/graph"
)

// Options configures a single DOT emission.
type Options struct {
	// ID is the optional top-level graph identifier.
	ID string
	// Directed selects digraph/-> (true) versus graph/-- (false).
	Directed bool
	// Horizontal sets rankdir=LR instead of GraphViz's default TB.
	Horizontal bool
	// ClusterBy optionally assigns a node key to a cluster/subgraph id;
	// ok=false leaves the node outside any subgraph. A cluster id
	// prefixed "cluster" renders with GraphViz cluster semantics.
	ClusterBy func(key string) (clusterID string, ok bool)
}

// sublabelProperty is folded into the node's label rather than emitted as
// its own attribute.
const sublabelProperty = "sublabel"

// Write emits deterministic DOT source for g to w: nodes in ascending
// key order (grouped into their clusters first, in ascending cluster-id
// order, then unclustered nodes), each node's properties as attributes
// (sublabel folded into an HTML label alongside the key), followed by
// edges in (source, target) ascending order with the edge's properties
// as attributes.
func Write(w io.Writer, g *graph.Graph, opts Options) error {
	dw := New(w)
	dw.OpenGraph(opts.ID, opts.Directed)
	if opts.Horizontal {
		dw.Attr("rankdir", "LR")
	}

	keys := g.NodeKeys()
	clustered := map[string][]string{}
	var unclustered []string
	if opts.ClusterBy != nil {
		for _, k := range keys {
			if id, ok := opts.ClusterBy(k); ok {
				clustered[id] = append(clustered[id], k)
				continue
			}
			unclustered = append(unclustered, k)
		}
	} else {
		unclustered = keys
	}

	clusterIDs := make([]string, 0, len(clustered))
	for id := range clustered {
		clusterIDs = append(clusterIDs, id)
	}
	sort.Strings(clusterIDs)

	for _, id := range clusterIDs {
		dw.OpenSubgraph(id)
		for _, k := range clustered[id] {
			writeNode(dw, g, k)
		}
		dw.Close()
	}
	for _, k := range unclustered {
		writeNode(dw, g, k)
	}

	for _, k := range keys {
		n, _ := g.Node(k)
		for _, tk := range n.TargetKeys() {
			e, _ := n.EdgeTo(tk)
			writeEdge(dw, opts.Directed, k, tk, e)
		}
	}

	dw.Close()
	return dw.Err()
}

func writeNode(dw *Writer, g *graph.Graph, key string) {
	n, _ := g.Node(key)
	sublabel, _ := n.Metadata.GetProperty(sublabelProperty)

	dw.OpenNode(key)
	dw.NodeAttr("label", nodeLabel(key, sublabel))
	for _, pk := range n.Metadata.PropertyKeys() {
		if pk == sublabelProperty {
			continue
		}
		v, _ := n.Metadata.GetProperty(pk)
		dw.NodeAttr(pk, v)
	}
	dw.Close()
}

func writeEdge(dw *Writer, directed bool, source, target string, e *graph.Edge) {
	dw.OpenEdge(source, target, directed)
	if e != nil {
		for _, pk := range e.Metadata.PropertyKeys() {
			v, _ := e.Metadata.GetProperty(pk)
			dw.NodeAttr(pk, v)
		}
	}
	dw.Close()
}

// nodeLabel builds an HTML-like label (bold key, italic left-aligned
// sublabel line) when sublabel is non-empty; otherwise it returns the
// plain key.
func nodeLabel(key, sublabel string) string {
	if sublabel == "" {
		return key
	}
	return fmt.Sprintf("<<B>%s</B><BR ALIGN=\"LEFT\"/><I>%s</I>>", escapeHTML(key), escapeHTML(sublabel))
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// WriteString returns the DOT source for g as a string.
func WriteString(g *graph.Graph, opts Options) (string, error) {
	var buf strings.Builder
	if err := Write(&buf, g, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFile writes the DOT source for g to a file at path.
func WriteFile(g *graph.Graph, opts Options, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, g, opts)
}
