// Package scc implements Tarjan's strongly-connected-components algorithm
// over a [analyzer.Analyzer]'s target adjacency, and the construction of
// the resulting quotient (component) DAG.
//
// The recursive strongconnect walk — depth index, lowlink, an explicit
// stack and on-stack set — follows the same shape as the teacher corpus's
// Tarjan implementation (other_examples' hyperpb-go internal/scc/scc.go),
// adapted from that package's generic Graph[Node]/iter.Seq walk to the
// engine's case-insensitive string-keyed [graph.Graph] adjacency.
package scc

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/graphops/pkg/analyzer"
	"github.com/matzehuels/graphops/pkg/keyset"
	"github.com/matzehuels/graphops/pkg/obshooks"
)

// DefaultPrefix is the component-name prefix used when the caller
// supplies none.
const DefaultPrefix = "SCC-"

// Component is one strongly connected component.
type Component struct {
	Name    string
	Index   int
	Members []string // sorted ascending, case-insensitively
}

// Result is the outcome of running Tarjan's algorithm: components in
// forward topological order, plus O(1) lookup indexes.
type Result struct {
	Components       []Component
	ComponentsByName map[string]*Component
	ComponentForNode *keyset.KeyMap[*Component]
}

// Run computes the strongly connected components of a's target
// adjacency. Components are returned in forward topological order: for
// every edge (u,v) between distinct components, the component of u
// appears before the component of v. prefix names each component
// "prefix"+zero-padded-index (width 3 for ≤999 components, 4 for ≤9999,
// 5 otherwise); if prefix is "", a component is instead named from its
// (alphabetically) first member, suffixed "+N-1" when it has more than
// one member.
func Run(ctx context.Context, a *analyzer.Analyzer, prefix string) *Result {
	start := time.Now()
	obshooks.Analysis().OnSCCStart(ctx, a.NodeCount())

	components := tarjan(a)

	width := nameWidth(len(components))
	byName := make(map[string]*Component, len(components))
	forNode := keyset.NewKeyMap[*Component]()

	for i := range components {
		c := &components[i]
		c.Index = i
		if prefix != "" {
			c.Name = fmt.Sprintf("%s%0*d", prefix, width, i)
		} else {
			c.Name = c.Members[0]
			if len(c.Members) > 1 {
				c.Name = fmt.Sprintf("%s+%d-1", c.Members[0], len(c.Members)-1)
			}
		}
		byName[c.Name] = c
		for _, m := range c.Members {
			forNode.Set(m, c)
		}
	}

	obshooks.Analysis().OnSCCComplete(ctx, len(components), time.Since(start), nil)
	return &Result{Components: components, ComponentsByName: byName, ComponentForNode: forNode}
}

// FromComponents rebuilds a Result's lookup indexes from an already-named
// and already-indexed component list, for callers restoring a Result from
// a cached [Component] slice instead of recomputing it with Run.
func FromComponents(components []Component) *Result {
	byName := make(map[string]*Component, len(components))
	forNode := keyset.NewKeyMap[*Component]()
	for i := range components {
		c := &components[i]
		byName[c.Name] = c
		for _, m := range c.Members {
			forNode.Set(m, c)
		}
	}
	return &Result{Components: components, ComponentsByName: byName, ComponentForNode: forNode}
}

func nameWidth(n int) int {
	switch {
	case n <= 999:
		return 3
	case n <= 9999:
		return 4
	default:
		return 5
	}
}

// tarjanState holds the mutable state of one run of strongconnect.
type tarjanState struct {
	a *analyzer.Analyzer

	index   int
	indices map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string

	components []Component
}

func tarjan(a *analyzer.Analyzer) []Component {
	s := &tarjanState{
		a:       a,
		indices: map[string]int{},
		lowlink: map[string]int{},
		onStack: map[string]bool{},
	}
	for _, v := range a.NodeKeys() {
		if _, seen := s.indices[keyset.Normalize(v)]; !seen {
			s.strongconnect(v)
		}
	}
	// Emission order is reverse topological; reverse for forward order.
	for i, j := 0, len(s.components)-1; i < j; i, j = i+1, j-1 {
		s.components[i], s.components[j] = s.components[j], s.components[i]
	}
	return s.components
}

func (s *tarjanState) strongconnect(v string) {
	nv := keyset.Normalize(v)
	s.indices[nv] = s.index
	s.lowlink[nv] = s.index
	s.index++
	s.stack = append(s.stack, v)
	s.onStack[nv] = true

	for _, w := range s.a.TargetEdges().Get(v).Slice() {
		nw := keyset.Normalize(w)
		if _, seen := s.indices[nw]; !seen {
			s.strongconnect(w)
			s.lowlink[nv] = min(s.lowlink[nv], s.lowlink[nw])
		} else if s.onStack[nw] {
			s.lowlink[nv] = min(s.lowlink[nv], s.indices[nw])
		}
	}

	if s.lowlink[nv] != s.indices[nv] {
		return
	}

	var members []string
	for {
		w := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack[keyset.Normalize(w)] = false
		members = append(members, w)
		if keyset.Normalize(w) == nv {
			break
		}
	}
	sortByNormalized(members)
	s.components = append(s.components, Component{Members: members})
}

func sortByNormalized(keys []string) {
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keyset.Normalize(keys[j-1]) > keyset.Normalize(keys[j]); j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
}
