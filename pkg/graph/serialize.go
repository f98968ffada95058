package graph

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/graphops/pkg/errors"
	"github.com/matzehuels/graphops/pkg/metadata"
)

// reserved top-level and node field names (spec.md §6.1).
var (
	topLevelReserved  = map[string]bool{"nodes": true, "tags": true, "keytags": true}
	nodeFieldReserved = map[string]bool{"key": true, "targets": true, "tags": true, "keytags": true}
)

// kv is one ordered field of a JSON object under construction.
type kv struct {
	key string
	val json.RawMessage
}

func renderObject(pairs []kv, depth int) string {
	if len(pairs) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	ind := strings.Repeat("  ", depth+1)
	for i, p := range pairs {
		sb.WriteString(ind)
		kb, _ := json.Marshal(p.key)
		sb.Write(kb)
		sb.WriteString(": ")
		sb.Write(p.val)
		if i < len(pairs)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("}")
	return sb.String()
}

func rawString(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}

func rawStrings(ss []string) json.RawMessage {
	b, _ := json.Marshal(ss)
	return b
}

// metadataPairs builds the ordered field list for m (properties, "tags",
// "keytags"), where depth is the depth at which those fields themselves
// are rendered by the caller's renderObject call.
func metadataPairs(m *metadata.Metadata, depth int) []kv {
	var pairs []kv
	for _, k := range m.PropertyKeys() {
		v, _ := m.GetProperty(k)
		pairs = append(pairs, kv{k, rawString(v)})
	}
	if s, ok := m.TryGetTags(metadata.UnkeyedTagKey); ok {
		pairs = append(pairs, kv{"tags", rawStrings(s.Slice())})
	}
	var ktPairs []kv
	for _, k := range m.TagKeys() {
		if k == metadata.UnkeyedTagKey {
			continue
		}
		s, ok := m.TryGetTags(k)
		if !ok {
			continue
		}
		vals := s.Slice()
		if len(vals) == 1 {
			ktPairs = append(ktPairs, kv{k, rawString(vals[0])})
		} else {
			ktPairs = append(ktPairs, kv{k, rawStrings(vals)})
		}
	}
	if len(ktPairs) > 0 {
		pairs = append(pairs, kv{"keytags", json.RawMessage(renderObject(ktPairs, depth))})
	}
	return pairs
}

func edgeObjectString(e *Edge, depth int) string {
	return renderObject(metadataPairs(e.Metadata, depth+1), depth)
}

func nodeObjectString(n *Node, depth int) string {
	pairs := metadataPairs(n.Metadata, depth+1)
	var targetEntries []kv
	for _, tk := range n.TargetKeys() {
		e, _ := n.EdgeTo(tk)
		targetEntries = append(targetEntries, kv{tk, json.RawMessage(edgeObjectString(e, depth+2))})
	}
	pairs = append(pairs, kv{"targets", json.RawMessage(renderObject(targetEntries, depth+1))})
	return renderObject(pairs, depth)
}

// WriteGraph writes g as JSON to w, terminated by a single trailing
// newline. Node iteration is alphabetical by key; per-node targets are
// alphabetical by target key (spec.md §6.1).
func WriteGraph(g *Graph, w io.Writer) error {
	var nodeEntries []kv
	for _, nk := range g.NodeKeys() {
		n, _ := g.Node(nk)
		nodeEntries = append(nodeEntries, kv{nk, json.RawMessage(nodeObjectString(n, 2))})
	}
	topPairs := []kv{{"nodes", json.RawMessage(renderObject(nodeEntries, 1))}}
	topPairs = append(topPairs, metadataPairs(g.Metadata, 1)...)

	if _, err := io.WriteString(w, renderObject(topPairs, 0)); err != nil {
		return errors.Wrap(errors.CodeIOError, err, "write graph")
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrap(errors.CodeIOError, err, "write graph")
	}
	return nil
}

// MarshalGraph serializes g to an in-memory byte slice.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes g to path as JSON, creating or truncating the
// file with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.CodeIOError, err, "create %s", path)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a JSON graph from r. Fails with CodeMalformedInput on
// non-object JSON or an edge referencing a missing target node; the
// returned error wraps the underlying decode failure.
func ReadGraph(r io.Reader) (*Graph, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.CodeMalformedInput, err, "decode graph")
	}
	return graphFromRaw(raw)
}

// ReadGraphFile reads path and decodes it as a JSON graph.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.CodeIOError, err, "open %s", path)
	}
	defer f.Close()
	return ReadGraph(f)
}

func graphFromRaw(raw map[string]any) (*Graph, error) {
	g := New()
	g.Metadata.FillFromObject(raw, topLevelReserved)

	nodesRaw, _ := raw["nodes"].(map[string]any)
	for key, v := range nodesRaw {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, errors.New(errors.CodeMalformedInput, "node %q is not an object", key)
		}
		n, err := g.AddNode(key)
		if err != nil {
			return nil, errors.Wrap(errors.CodeMalformedInput, err, "node %q", key)
		}
		n.Metadata.FillFromObject(obj, nodeFieldReserved)
	}

	for key, v := range nodesRaw {
		obj, ok := v.(map[string]any)
		if !ok {
			continue
		}
		targetsRaw, _ := obj["targets"].(map[string]any)
		for tk, tv := range targetsRaw {
			if !g.HasNode(tk) {
				return nil, errors.New(errors.CodeMalformedInput, "edge %s -> %s: unknown target", key, tk)
			}
			e, err := g.Connect(key, tk)
			if err != nil {
				return nil, errors.Wrap(errors.CodeMalformedInput, err, "edge %s -> %s", key, tk)
			}
			if eobj, ok := tv.(map[string]any); ok {
				e.Metadata.FillFromObject(eobj, map[string]bool{})
			}
		}
	}

	return g, nil
}
