package rewrite_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/graphops/pkg/errors"
	"github.com/matzehuels/graphops/pkg/graph"
	"github.com/matzehuels/graphops/pkg/rewrite"
)

func buildGraph(t *testing.T, edges [][2]string) *graph.Graph {
	t.Helper()
	g := graph.New()
	seen := map[string]bool{}
	for _, e := range edges {
		for _, k := range e {
			if !seen[k] {
				seen[k] = true
				if _, err := g.AddNode(k); err != nil {
					t.Fatalf("AddNode: %v", err)
				}
			}
		}
	}
	for _, e := range edges {
		if _, err := g.Connect(e[0], e[1]); err != nil {
			t.Fatalf("Connect: %v", err)
		}
	}
	return g
}

func TestFilterIncludeKeepsTaggedAndScrubs(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}})
	a, _ := g.Node("A")
	a.Metadata.Tags("").Add("keep")
	c, _ := g.Node("C")
	c.Metadata.Tags("").Add("keep")

	rewrite.Filter(g, []string{"keep"}, "", true)

	if g.NodeCount() != 2 {
		t.Fatalf("NodeCount = %d, want 2", g.NodeCount())
	}
	if g.HasNode("B") {
		t.Errorf("B should have been dropped")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0 (dangling edges scrubbed)", g.EdgeCount())
	}
}

func TestFilterExcludeDropsTagged(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}})
	a, _ := g.Node("A")
	a.Metadata.Tags("").Add("drop")

	rewrite.Filter(g, []string{"drop"}, "", false)

	if g.NodeCount() != 1 {
		t.Fatalf("NodeCount = %d, want 1", g.NodeCount())
	}
	if g.HasNode("A") {
		t.Errorf("A should have been dropped")
	}
}

func TestPruneEdgeIsIdempotent(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}})
	rewrite.PruneEdge(g, "A", "B")
	rewrite.PruneEdge(g, "A", "B")
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", g.EdgeCount())
	}
}

func TestPruneNodeNoopOnMissing(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}})
	rewrite.PruneNode(g, "Z")
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2 (no-op on missing node)", g.NodeCount())
	}
}

func TestPurifyClassicDropsTransitiveEdge(t *testing.T) {
	// A->B, B->C, A->C: A->C is redundant given A->B->C.
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}})
	if err := rewrite.PurifyClassic(context.Background(), g, false); err != nil {
		t.Fatalf("PurifyClassic: %v", err)
	}
	aNode, _ := g.Node("A")
	if _, ok := aNode.EdgeTo("C"); ok {
		t.Errorf("expected A->C to be purified away")
	}
	if _, ok := aNode.EdgeTo("B"); !ok {
		t.Errorf("expected A->B to survive")
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
}

func TestPurifyClassicFailsOnCycleWithoutCollection(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "A"}})
	err := rewrite.PurifyClassic(context.Background(), g, false)
	if !errors.Is(err, errors.CodeCycleDetected) {
		t.Fatalf("expected CodeCycleDetected, got %v", err)
	}
}

func TestPurifyClassicCollectsAndTagsCycleEdges(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "A"}})
	if err := rewrite.PurifyClassic(context.Background(), g, true); err != nil {
		t.Fatalf("PurifyClassic: %v", err)
	}
	if g.EdgeCount() == 0 {
		t.Fatalf("expected cycle edges to be re-added")
	}
	var found bool
	for _, k := range g.NodeKeys() {
		n, _ := g.Node(k)
		for _, tk := range n.TargetKeys() {
			e, _ := n.EdgeTo(tk)
			tags, ok := e.Metadata.TryGetTags("")
			if ok && tags.Contains(rewrite.CycleLinkTag) {
				found = true
				if v, _ := e.Metadata.GetProperty("color"); v != "red" {
					t.Errorf("color property = %q, want red", v)
				}
			}
		}
	}
	if !found {
		t.Errorf("expected at least one edge tagged %q", rewrite.CycleLinkTag)
	}
}

func TestPurifySCCPreservesIntraComponentEdges(t *testing.T) {
	// A<->B (one SCC), B->C, C->D, B->D (redundant given B->C->D).
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "A"}, {"B", "C"}, {"C", "D"}, {"B", "D"}})
	if err := rewrite.PurifySCC(context.Background(), g, ""); err != nil {
		t.Fatalf("PurifySCC: %v", err)
	}
	a, _ := g.Node("A")
	b, _ := g.Node("B")
	if _, ok := a.EdgeTo("B"); !ok {
		t.Errorf("expected intra-component edge A->B to survive")
	}
	if _, ok := b.EdgeTo("A"); !ok {
		t.Errorf("expected intra-component edge B->A to survive")
	}
	if _, ok := b.EdgeTo("D"); ok {
		t.Errorf("expected redundant inter-component edge B->D to be purified")
	}
	if _, ok := b.EdgeTo("C"); !ok {
		t.Errorf("expected inter-component edge B->C to survive")
	}
}

func TestRoundTripFilterThenPurify(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}})
	rewrite.Filter(g, []string{"missing"}, "", false)
	if err := rewrite.PurifyClassic(context.Background(), g, false); err != nil {
		t.Fatalf("PurifyClassic: %v", err)
	}
	got := map[string][]string{}
	for _, k := range g.NodeKeys() {
		n, _ := g.Node(k)
		got[k] = n.TargetKeys()
	}
	want := map[string][]string{"A": {"B"}, "B": {"C"}, "C": nil}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("adjacency mismatch (-want +got):\n%s", diff)
	}
}
