package graph

import (
	"github.com/matzehuels/graphops/pkg/errors"
	"github.com/matzehuels/graphops/pkg/keyset"
	"github.com/matzehuels/graphops/pkg/metadata"
)

// Graph owns a node table keyed case-insensitively by node key. It
// exclusively owns its nodes and edges; edges are co-owned by both
// endpoints' adjacency tables, kept synchronized by every mutator here.
type Graph struct {
	Metadata *metadata.Metadata

	nodes *keyset.KeyMap[*Node]
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		Metadata: metadata.New(),
		nodes:    keyset.NewKeyMap[*Node](),
	}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the sum of target-set sizes across all nodes.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, k := range g.nodes.Keys() {
		n, _ := g.nodes.Get(k)
		total += n.OutDegree()
	}
	return total
}

// SeedCount returns the number of seed nodes (no sources, some targets).
func (g *Graph) SeedCount() int { return g.countKind(KindSeed) }

// SinkCount returns the number of sink nodes (some sources, no targets).
func (g *Graph) SinkCount() int { return g.countKind(KindSink) }

func (g *Graph) countKind(k Kind) int {
	count := 0
	for _, key := range g.nodes.Keys() {
		n, _ := g.nodes.Get(key)
		if n.Kind() == k {
			count++
		}
	}
	return count
}

// Node returns the node at key, if present.
func (g *Graph) Node(key string) (*Node, bool) { return g.nodes.Get(key) }

// HasNode reports whether a node with key is present.
func (g *Graph) HasNode(key string) bool { return g.nodes.Has(key) }

// NodeKeys returns every node key in ascending case-insensitive order.
func (g *Graph) NodeKeys() []string { return g.nodes.Keys() }

// Nodes returns every node in the graph, ordered by NodeKeys.
func (g *Graph) Nodes() []*Node {
	keys := g.nodes.Keys()
	out := make([]*Node, len(keys))
	for i, k := range keys {
		out[i], _ = g.nodes.Get(k)
	}
	return out
}

// AddNode creates a node at key. Fails with CodeInvariantViolation if key
// is already present.
func (g *Graph) AddNode(key string) (*Node, error) {
	if g.nodes.Has(key) {
		return nil, errors.New(errors.CodeInvariantViolation, "duplicate node %q", key)
	}
	n := newNode(key)
	g.nodes.Set(key, n)
	return n, nil
}

// GetOrAddNode returns the existing node at key, or creates one.
func (g *Graph) GetOrAddNode(key string) *Node {
	return g.nodes.GetOrInit(key, func() *Node { return newNode(key) })
}

// Connect creates an edge from source to target. Fails with
// CodeInvariantViolation if either endpoint is missing or the edge
// already exists.
func (g *Graph) Connect(source, target string) (*Edge, error) {
	sn, ok := g.nodes.Get(source)
	if !ok {
		return nil, errors.New(errors.CodeInvariantViolation, "connect: unknown source %q", source)
	}
	tn, ok := g.nodes.Get(target)
	if !ok {
		return nil, errors.New(errors.CodeInvariantViolation, "connect: unknown target %q", target)
	}
	if _, exists := sn.targets.Get(tn.Key); exists {
		return nil, errors.New(errors.CodeInvariantViolation, "edge %q -> %q already exists", source, target)
	}
	e := newEdge(sn, tn)
	sn.targets.Set(tn.Key, e)
	tn.sources.Set(sn.Key, e)
	return e, nil
}

// ConnectOrMergeEdge creates an edge from source to target, or — if it
// already exists — merges srcMeta into the existing edge's metadata (all
// tags/properties copied when srcMeta is non-nil).
func (g *Graph) ConnectOrMergeEdge(source, target string, srcMeta *metadata.Metadata) (*Edge, error) {
	sn, ok := g.nodes.Get(source)
	if !ok {
		return nil, errors.New(errors.CodeInvariantViolation, "connect: unknown source %q", source)
	}
	tn, ok := g.nodes.Get(target)
	if !ok {
		return nil, errors.New(errors.CodeInvariantViolation, "connect: unknown target %q", target)
	}
	if e, exists := sn.targets.Get(tn.Key); exists {
		if srcMeta != nil {
			e.Metadata.Import(srcMeta, nil, nil)
		}
		return e, nil
	}
	e := newEdge(sn, tn)
	if srcMeta != nil {
		e.Metadata.Import(srcMeta, nil, nil)
	}
	sn.targets.Set(tn.Key, e)
	tn.sources.Set(sn.Key, e)
	return e, nil
}

// FindEdge returns the edge from source to target, or nil if absent.
// Fails with CodeInvariantViolation if either endpoint is missing.
func (g *Graph) FindEdge(source, target string) (*Edge, error) {
	sn, ok := g.nodes.Get(source)
	if !ok {
		return nil, errors.New(errors.CodeInvariantViolation, "find edge: unknown source %q", source)
	}
	if _, ok := g.nodes.Get(target); !ok {
		return nil, errors.New(errors.CodeInvariantViolation, "find edge: unknown target %q", target)
	}
	e, _ := sn.targets.Get(target)
	return e, nil
}

// Disconnect removes the edge from source to target, if present, and
// returns it. Returns nil without error if either endpoint or the edge
// itself is missing.
func (g *Graph) Disconnect(source, target string) *Edge {
	sn, ok := g.nodes.Get(source)
	if !ok {
		return nil
	}
	tn, ok := g.nodes.Get(target)
	if !ok {
		return nil
	}
	e, ok := sn.targets.Get(tn.Key)
	if !ok {
		return nil
	}
	sn.targets.Delete(tn.Key)
	tn.sources.Delete(sn.Key)
	return e
}

// DisconnectAllSources removes every edge into target, returning them.
// No-op on a missing node.
func (g *Graph) DisconnectAllSources(target string) []*Edge {
	tn, ok := g.nodes.Get(target)
	if !ok {
		return nil
	}
	var removed []*Edge
	for _, sk := range tn.SourceKeys() {
		e, ok := tn.sources.Get(sk)
		if !ok {
			continue
		}
		tn.sources.Delete(sk)
		e.Source.targets.Delete(tn.Key)
		removed = append(removed, e)
	}
	return removed
}

// DisconnectAllTargets removes every edge out of source, returning them.
// No-op on a missing node.
func (g *Graph) DisconnectAllTargets(source string) []*Edge {
	sn, ok := g.nodes.Get(source)
	if !ok {
		return nil
	}
	return sn.DisconnectAllExcept(keyset.NewSet())
}

// RemoveNodes drops each node in keys, then scrubs dangling edges from the
// remaining nodes in a single pass (the scrub never attempts to touch the
// removed side, since it no longer exists).
func (g *Graph) RemoveNodes(keys []string) {
	removedKeys := keyset.NewSet(keys...)
	for _, k := range keys {
		g.nodes.Delete(k)
	}
	for _, k := range g.nodes.Keys() {
		n, _ := g.nodes.Get(k)
		for _, sk := range n.SourceKeys() {
			if removedKeys.Contains(sk) {
				n.sources.Delete(sk)
			}
		}
		for _, tk := range n.TargetKeys() {
			if removedKeys.Contains(tk) {
				n.targets.Delete(tk)
			}
		}
	}
}

// RemoveOtherNodes removes every node whose key is not in keep.
func (g *Graph) RemoveOtherNodes(keep *keyset.Set) {
	var drop []string
	for _, k := range g.nodes.Keys() {
		if keep == nil || !keep.Contains(k) {
			drop = append(drop, k)
		}
	}
	g.RemoveNodes(drop)
}

// DisconnectTargetsExcept applies, for each source node present in
// targetEdgeMap, DisconnectAllExcept(targetEdgeMap[source]). For source
// nodes absent from the map, all outgoing edges are removed if
// disconnectMissing is true; otherwise they are left untouched.
func (g *Graph) DisconnectTargetsExcept(targetEdgeMap *keyset.KeySetMap, disconnectMissing bool) {
	for _, k := range g.nodes.Keys() {
		n, _ := g.nodes.Get(k)
		if keep, ok := targetEdgeMap.Get(k); ok {
			n.DisconnectAllExcept(keep)
			continue
		}
		if disconnectMissing {
			n.DisconnectAllExcept(keyset.NewSet())
		}
	}
}

// ClassifyNodes groups node keys by projector(key), skipping keys for
// which projector returns false, preserving graph iteration order within
// each class.
func (g *Graph) ClassifyNodes(projector func(key string) (class string, ok bool)) map[string][]string {
	out := map[string][]string{}
	for _, k := range g.nodes.Keys() {
		class, ok := projector(k)
		if !ok {
			continue
		}
		out[class] = append(out[class], k)
	}
	return out
}

// EdgesSnapshot returns an independent MapView of node key -> target-key
// set, decoupled from subsequent mutation of g.
func (g *Graph) EdgesSnapshot() *keyset.MapView {
	m := keyset.NewKeySetMap()
	for _, k := range g.nodes.Keys() {
		n, _ := g.nodes.Get(k)
		m.Set(k, keyset.NewSet(n.TargetKeys()...))
	}
	return keyset.NewMapView(m)
}

// FindTaggedNodes returns the keys of nodes whose metadata has tag under
// tagKey (default unkeyed if tagKey is "").
func (g *Graph) FindTaggedNodes(tag, tagKey string) []string {
	return g.FindTaggedNodesAny([]string{tag}, tagKey)
}

// FindTaggedNodesAny returns the keys of nodes whose metadata has any of
// tags under tagKey.
func (g *Graph) FindTaggedNodesAny(tags []string, tagKey string) []string {
	var out []string
	for _, k := range g.nodes.Keys() {
		n, _ := g.nodes.Get(k)
		if n.Metadata.HasAnyTag(tagKey, tags) {
			out = append(out, k)
		}
	}
	return out
}
