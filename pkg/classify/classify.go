// Package classify implements node classification into equivalence
// classes and the construction of the resulting quotient graph (spec.md
// §4.6's Classifier & SuperGraph).
package classify

import (
	"fmt"

	"github.com/matzehuels/graphops/pkg/errors"
	"github.com/matzehuels/graphops/pkg/graph"
)

// Classifier maps a node key to an optional class string. A false second
// return value means "skip this node" (it belongs to no class).
type Classifier interface {
	Classify(key string) (class string, ok bool)
}

// PropertyClassifier classifies a node by the value of a given property,
// skipping nodes where the property is missing or empty.
type PropertyClassifier struct {
	Graph    *graph.Graph
	Property string
}

// Classify implements Classifier.
func (c PropertyClassifier) Classify(key string) (string, bool) {
	n, ok := c.Graph.Node(key)
	if !ok {
		return "", false
	}
	v, ok := n.Metadata.GetProperty(c.Property)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// MapClassifier classifies nodes from an explicit key -> class mapping.
type MapClassifier struct {
	assignments map[string]string
}

// NewMapClassifier builds a MapClassifier from an explicit key->class
// mapping.
func NewMapClassifier(assignments map[string]string) *MapClassifier {
	m := make(map[string]string, len(assignments))
	for k, v := range assignments {
		m[k] = v
	}
	return &MapClassifier{assignments: m}
}

// NewMapClassifierFromClasses builds a MapClassifier from a class -> keys
// mapping. Fails with CodeInvariantViolation if the same key is assigned
// to two different classes.
func NewMapClassifierFromClasses(classes map[string][]string) (*MapClassifier, error) {
	assignments := map[string]string{}
	for class, keys := range classes {
		for _, k := range keys {
			if existing, ok := assignments[k]; ok && existing != class {
				return nil, errors.New(errors.CodeInvariantViolation,
					"node %q assigned to conflicting classes %q and %q", k, existing, class)
			}
			assignments[k] = class
		}
	}
	return &MapClassifier{assignments: assignments}, nil
}

// Classify implements Classifier.
func (c *MapClassifier) Classify(key string) (string, bool) {
	v, ok := c.assignments[key]
	return v, ok
}

// ClassifyAll groups keys by classifier.Classify(key), preserving the
// order of keys within each class.
func ClassifyAll(keys []string, classifier Classifier) map[string][]string {
	out := map[string][]string{}
	for _, k := range keys {
		class, ok := classifier.Classify(k)
		if !ok {
			continue
		}
		out[class] = append(out[class], k)
	}
	return out
}

// SuperGraph constructs the quotient graph of g under classifier: one
// node per class (with a "sublabel" property of the form "(N nodes)"),
// and one edge per distinct cross-class pair with at least one original
// edge between their members (self-edges suppressed, unclassified
// targets dropped). If addNodes, every underlying node is recorded on its
// class node as a "node" keyed tag, valued with the original node key.
func SuperGraph(g *graph.Graph, classifier Classifier, addNodes bool) (*graph.Graph, error) {
	snapshot := g.EdgesSnapshot()
	classes := ClassifyAll(g.NodeKeys(), classifier)

	out := graph.New()
	for class, members := range classes {
		n, err := out.AddNode(class)
		if err != nil {
			return nil, err
		}
		n.Metadata.SetProperty("sublabel", strp(fmt.Sprintf("(%d nodes)", len(members))))
		if addNodes {
			for _, m := range members {
				n.Metadata.Tags("node").Add(m)
			}
		}
	}

	for class, members := range classes {
		for _, nodeKey := range members {
			for _, target := range snapshot.Get(nodeKey).Slice() {
				targetClass, ok := classifier.Classify(target)
				if !ok || targetClass == class {
					continue
				}
				if _, err := out.ConnectOrMergeEdge(class, targetClass, nil); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

func strp(s string) *string { return &s }
