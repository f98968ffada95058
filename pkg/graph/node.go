package graph

import (
	"github.com/matzehuels/graphops/pkg/keyset"
	"github.com/matzehuels/graphops/pkg/metadata"
)

// Kind classifies a node by its adjacency shape.
type Kind int

const (
	// KindOther has both sources and targets.
	KindOther Kind = iota
	// KindSeed has no sources but at least one target.
	KindSeed
	// KindSink has sources but no targets.
	KindSink
	// KindLoose has neither sources nor targets.
	KindLoose
)

// String renders the kind the way the CLI and DOT writer print it.
func (k Kind) String() string {
	switch k {
	case KindSeed:
		return "seed"
	case KindSink:
		return "sink"
	case KindLoose:
		return "loose"
	default:
		return "other"
	}
}

// Node is a vertex owned exclusively by its [Graph]. Key is the stable,
// case-insensitive identifier under which the graph indexes it; sources
// and targets are this node's incoming and outgoing edges, each keyed by
// the other endpoint's key.
type Node struct {
	Key      string
	Metadata *metadata.Metadata

	sources *keyset.KeyMap[*Edge]
	targets *keyset.KeyMap[*Edge]
}

func newNode(key string) *Node {
	return &Node{
		Key:      key,
		Metadata: metadata.New(),
		sources:  keyset.NewKeyMap[*Edge](),
		targets:  keyset.NewKeyMap[*Edge](),
	}
}

// Kind derives the node's classification from its current adjacency.
func (n *Node) Kind() Kind {
	switch {
	case n.sources.Len() == 0 && n.targets.Len() > 0:
		return KindSeed
	case n.sources.Len() > 0 && n.targets.Len() == 0:
		return KindSink
	case n.sources.Len() == 0 && n.targets.Len() == 0:
		return KindLoose
	default:
		return KindOther
	}
}

// SourceKeys returns the keys of nodes with an edge into n, alphabetically.
func (n *Node) SourceKeys() []string { return n.sources.Keys() }

// TargetKeys returns the keys of nodes n has an edge to, alphabetically.
func (n *Node) TargetKeys() []string { return n.targets.Keys() }

// EdgeFrom returns the edge from the node with key source into n, if any.
func (n *Node) EdgeFrom(source string) (*Edge, bool) { return n.sources.Get(source) }

// EdgeTo returns the edge from n to the node with key target, if any.
func (n *Node) EdgeTo(target string) (*Edge, bool) { return n.targets.Get(target) }

// InDegree returns the number of incoming edges.
func (n *Node) InDegree() int { return n.sources.Len() }

// OutDegree returns the number of outgoing edges.
func (n *Node) OutDegree() int { return n.targets.Len() }

// DisconnectAllExcept removes every outgoing edge of n whose target key is
// not in keep, updating both this node's targets and the target's
// sources. It returns the removed edges.
func (n *Node) DisconnectAllExcept(keep *keyset.Set) []*Edge {
	var removed []*Edge
	for _, tk := range n.TargetKeys() {
		if keep != nil && keep.Contains(tk) {
			continue
		}
		e, ok := n.targets.Get(tk)
		if !ok {
			continue
		}
		n.targets.Delete(tk)
		e.Target.sources.Delete(n.Key)
		removed = append(removed, e)
	}
	return removed
}
