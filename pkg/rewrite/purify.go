package rewrite

import (
	"context"
	"time"

	"github.com/matzehuels/graphops/pkg/analyzer"
	"github.com/matzehuels/graphops/pkg/errors"
	"github.com/matzehuels/graphops/pkg/graph"
	"github.com/matzehuels/graphops/pkg/keyset"
	"github.com/matzehuels/graphops/pkg/metadata"
	"github.com/matzehuels/graphops/pkg/obshooks"
	"github.com/matzehuels/graphops/pkg/scc"
)

// CycleLinkTag is the unkeyed tag applied to an edge re-added by
// PurifyClassic after being diverted into the cycle sink.
const CycleLinkTag = "cyclelink"

// PurifyClassic implements the transitive-reduction-like rewrite of
// spec.md §4.7: an edge (s, t) is kept iff no other direct target t' of s
// has t in its reach set. If collectCycles, edges that would otherwise
// make the reach computation fail are diverted into a cycle sink, the
// purification proceeds without them, and they are then re-added and
// tagged cyclelink/color=red rather than lost. Without collectCycles, a
// cyclic graph fails with CodeCycleDetected.
func PurifyClassic(ctx context.Context, g *graph.Graph, collectCycles bool) error {
	a := analyzer.Snapshot(g)
	start := time.Now()
	obshooks.Analysis().OnPurifyStart(ctx, "classic", a.EdgeCount())

	var cycleSink *keyset.KeySetMap
	if collectCycles {
		cycleSink = keyset.NewKeySetMap()
	}

	reach, err := a.GetReachMap(cycleSink)
	if err != nil {
		obshooks.Analysis().OnPurifyComplete(ctx, "classic", 0, time.Since(start), err)
		return err
	}

	direct := keyset.NewKeySetMap()
	for _, k := range a.NodeKeys() {
		direct.Set(k, keyset.NewSet(a.TargetEdges().Get(k).Slice()...))
	}
	purified := keyset.NewMapView(reach).NotInSelfProjectionMap(direct)

	before := g.EdgeCount()
	g.DisconnectTargetsExcept(purified, true)

	if cycleSink != nil {
		for _, source := range cycleSink.Keys() {
			targets, _ := cycleSink.Get(source)
			for _, target := range targets.Slice() {
				e, err := g.ConnectOrMergeEdge(source, target, nil)
				if err != nil {
					obshooks.Analysis().OnPurifyComplete(ctx, "classic", 0, time.Since(start), err)
					return err
				}
				e.Metadata.Tags(metadata.UnkeyedTagKey).Add(CycleLinkTag)
				e.Metadata.SetProperty("color", strp("red"))
			}
		}
	}

	removed := before - g.EdgeCount()
	obshooks.Analysis().OnPurifyComplete(ctx, "classic", removed, time.Since(start), nil)
	return nil
}

// PurifySCC implements SCC-mode purification (spec.md §4.7): it computes
// the SCC quotient DAG, purifies that (acyclic, so exact transitive
// reduction), then keeps every intra-component edge of g unconditionally
// and every inter-component edge only if the corresponding quotient edge
// survived.
func PurifySCC(ctx context.Context, g *graph.Graph, prefix string) error {
	a := analyzer.Snapshot(g)
	start := time.Now()
	obshooks.Analysis().OnPurifyStart(ctx, "scc", a.EdgeCount())

	result := scc.Run(ctx, a, prefix)
	quotient, err := scc.ComponentGraph(g, result)
	if err != nil {
		obshooks.Analysis().OnPurifyComplete(ctx, "scc", 0, time.Since(start), err)
		return err
	}
	if err := PurifyClassic(ctx, quotient, false); err != nil {
		obshooks.Analysis().OnPurifyComplete(ctx, "scc", 0, time.Since(start), err)
		return errors.Wrap(errors.CodeInvariantViolation, err, "purify scc: quotient purification")
	}

	allowed := keyset.NewKeySetMap()
	for _, nk := range a.NodeKeys() {
		srcComp, ok := result.ComponentForNode.Get(nk)
		if !ok {
			continue
		}
		keep := keyset.NewSet()
		for _, tk := range a.TargetEdges().Get(nk).Slice() {
			tgtComp, ok := result.ComponentForNode.Get(tk)
			if !ok {
				continue
			}
			if tgtComp.Name == srcComp.Name {
				keep.Add(tk)
				continue
			}
			qn, ok := quotient.Node(srcComp.Name)
			if !ok {
				continue
			}
			if _, ok := qn.EdgeTo(tgtComp.Name); ok {
				keep.Add(tk)
			}
		}
		allowed.Set(nk, keep)
	}

	before := g.EdgeCount()
	g.DisconnectTargetsExcept(allowed, true)
	removed := before - g.EdgeCount()
	obshooks.Analysis().OnPurifyComplete(ctx, "scc", removed, time.Since(start), nil)
	return nil
}

func strp(s string) *string { return &s }
