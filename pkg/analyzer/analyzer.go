// Package analyzer implements [Analyzer], an immutable snapshot of a
// graph's adjacency used to compute reach/domain closures without
// holding references into the live graph (spec.md §5's ownership model).
//
// The DFS-with-in-progress-guard cycle check mirrors the classic
// white/gray/black cycle-detection walk (the teacher's
// transform.BreakCycles used exactly this shape over an adjacency map),
// generalized here to also accumulate the full reach/domain set per node
// rather than just reporting that a cycle exists.
package analyzer

import (
	"github.com/matzehuels/graphops/pkg/errors"
	"github.com/matzehuels/graphops/pkg/graph"
	"github.com/matzehuels/graphops/pkg/keyset"
)

// Analyzer is an immutable snapshot of a graph's adjacency: a node-key
// set, sourceEdges (target -> set of sources) and targetEdges (source ->
// set of targets), and precomputed seeds/sinks. It never mutates, and is
// decoupled from the lifetime of the graph it was built from.
type Analyzer struct {
	nodeKeys    *keyset.Set
	sourceEdges *keyset.KeySetMap
	targetEdges *keyset.KeySetMap
	seeds       *keyset.Set
	sinks       *keyset.Set

	reachMap  *keyset.KeySetMap
	domainMap *keyset.KeySetMap
}

// Snapshot captures g's current adjacency into a new Analyzer.
func Snapshot(g *graph.Graph) *Analyzer {
	a := &Analyzer{
		nodeKeys:    keyset.NewSet(),
		sourceEdges: keyset.NewKeySetMap(),
		targetEdges: keyset.NewKeySetMap(),
		seeds:       keyset.NewSet(),
		sinks:       keyset.NewSet(),
	}
	for _, key := range g.NodeKeys() {
		n, _ := g.Node(key)
		a.nodeKeys.Add(key)
		a.targetEdges.Set(key, keyset.NewSet(n.TargetKeys()...))
		a.sourceEdges.Set(key, keyset.NewSet(n.SourceKeys()...))
		switch n.Kind() {
		case graph.KindSeed:
			a.seeds.Add(key)
		case graph.KindSink:
			a.sinks.Add(key)
		}
	}
	return a
}

// NodeCount returns the number of nodes in the snapshot.
func (a *Analyzer) NodeCount() int { return a.nodeKeys.Len() }

// EdgeCount returns the sum of target-set sizes across the snapshot.
func (a *Analyzer) EdgeCount() int {
	total := 0
	for _, k := range a.targetEdges.Keys() {
		s, _ := a.targetEdges.Get(k)
		total += s.Len()
	}
	return total
}

// SeedCount returns the number of seed nodes.
func (a *Analyzer) SeedCount() int { return a.seeds.Len() }

// SinkCount returns the number of sink nodes.
func (a *Analyzer) SinkCount() int { return a.sinks.Len() }

// NodeKeys returns the snapshotted node keys.
func (a *Analyzer) NodeKeys() []string { return a.nodeKeys.Slice() }

// TargetEdges returns a read-only view of the source -> targets adjacency.
func (a *Analyzer) TargetEdges() *keyset.MapView { return keyset.NewMapView(a.targetEdges) }

// SourceEdges returns a read-only view of the target -> sources adjacency.
func (a *Analyzer) SourceEdges() *keyset.MapView { return keyset.NewMapView(a.sourceEdges) }

// GetReachMap computes (and caches) reach(v) for every v: the set of
// nodes transitively reachable from v via targetEdges, excluding v.
func (a *Analyzer) GetReachMap(circularEdges *keyset.KeySetMap) (*keyset.KeySetMap, error) {
	if a.reachMap != nil && circularEdges == nil {
		return a.reachMap, nil
	}
	m, err := CalculatePowerMap(keyset.NewMapView(a.targetEdges), a.nodeKeys.Slice(), circularEdges)
	if err != nil {
		return nil, err
	}
	if circularEdges == nil {
		a.reachMap = m
	}
	return m, nil
}

// GetDomainMap computes (and caches) domain(v) for every v: the set of
// nodes from which v is transitively reachable via sourceEdges, excluding
// v.
func (a *Analyzer) GetDomainMap(circularEdges *keyset.KeySetMap) (*keyset.KeySetMap, error) {
	if a.domainMap != nil && circularEdges == nil {
		return a.domainMap, nil
	}
	m, err := CalculatePowerMap(keyset.NewMapView(a.sourceEdges), a.nodeKeys.Slice(), circularEdges)
	if err != nil {
		return nil, err
	}
	if circularEdges == nil {
		a.domainMap = m
	}
	return m, nil
}

// CalculatePowerMap computes, for every key in keys, the set of nodes
// transitively reachable from it via edges, excluding itself (spec.md
// §4.4). It uses a DFS with a "finished" power map and an "in progress"
// guard set: revisiting a node still in the guard indicates a cycle. If
// circularEdges is non-nil, the offending edge (predecessor -> node) is
// recorded there and that edge is dropped from the traversal rather than
// failing; otherwise CalculatePowerMap fails with CodeCycleDetected,
// naming the guard chain.
func CalculatePowerMap(edges *keyset.MapView, keys []string, circularEdges *keyset.KeySetMap) (*keyset.KeySetMap, error) {
	powerMap := keyset.NewKeySetMap()
	guard := keyset.NewSet()

	var visit func(s, pred string) (*keyset.Set, bool, error)
	visit = func(s, pred string) (*keyset.Set, bool, error) {
		if set, ok := powerMap.Get(s); ok {
			return set, false, nil
		}
		if guard.Contains(s) {
			if circularEdges != nil {
				circularEdges.AddPair(pred, s)
				return nil, true, nil
			}
			return nil, false, errors.New(errors.CodeCycleDetected,
				"cycle detected at %q (guard: %v)", s, guard.Slice())
		}
		guard.Add(s)
		result := keyset.NewSet()
		for _, next := range edges.Get(s).Slice() {
			nextSet, skip, err := visit(next, s)
			if err != nil {
				guard.Remove(s)
				return nil, false, err
			}
			if skip {
				continue
			}
			result.Add(next)
			result.Merge(nextSet)
		}
		guard.Remove(s)
		powerMap.Set(s, result)
		return result, false, nil
	}

	for _, s := range keys {
		if powerMap.Has(s) {
			continue
		}
		if _, _, err := visit(s, ""); err != nil {
			return nil, err
		}
	}
	return powerMap, nil
}
