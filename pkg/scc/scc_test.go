package scc_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/graphops/pkg/analyzer"
	"github.com/matzehuels/graphops/pkg/graph"
	"github.com/matzehuels/graphops/pkg/scc"
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

func memberSets(result *scc.Result) [][]string {
	out := make([][]string, len(result.Components))
	for i, c := range result.Components {
		out[i] = c.Members
	}
	return out
}

func TestFromComponentsRebuildsIndexes(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a", "b"}, {"b", "a"}, {"b", "c"}})
	result := scc.Run(context.Background(), analyzer.Snapshot(g), scc.DefaultPrefix)

	rebuilt := scc.FromComponents(result.Components)

	if diff := cmp.Diff(memberSets(result), memberSets(rebuilt)); diff != "" {
		t.Errorf("component members mismatch (-want +got):\n%s", diff)
	}
	for _, key := range []string{"a", "b", "c"} {
		want, ok := result.ComponentForNode.Get(key)
		if !ok {
			t.Fatalf("original result missing component for %q", key)
		}
		got, ok := rebuilt.ComponentForNode.Get(key)
		if !ok || got.Name != want.Name {
			t.Errorf("ComponentForNode[%q] = %v, want %v", key, got, want)
		}
	}
	if _, ok := rebuilt.ComponentsByName[result.Components[0].Name]; !ok {
		t.Errorf("ComponentsByName missing entry for %q", result.Components[0].Name)
	}
}

func TestRunForwardTopologicalOrder(t *testing.T) {
	// A<->B, B->C, C->D
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "A"}, {"B", "C"}, {"C", "D"}})
	a := analyzer.Snapshot(g)
	result := scc.Run(context.Background(), a, scc.DefaultPrefix)

	want := [][]string{{"A", "B"}, {"C"}, {"D"}}
	if diff := cmp.Diff(want, memberSets(result)); diff != "" {
		t.Errorf("component order mismatch (-want +got):\n%s", diff)
	}

	for i, wantName := range []string{"SCC-000", "SCC-001", "SCC-002"} {
		if result.Components[i].Name != wantName {
			t.Errorf("component %d name = %q, want %q", i, result.Components[i].Name, wantName)
		}
		if result.Components[i].Index != i {
			t.Errorf("component %d index = %d, want %d", i, result.Components[i].Index, i)
		}
	}
}

func TestComponentGraphEdgesAndSccIndex(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "A"}, {"B", "C"}, {"C", "D"}})
	a := analyzer.Snapshot(g)
	result := scc.Run(context.Background(), a, scc.DefaultPrefix)

	quotient, err := scc.ComponentGraph(g, result)
	if err != nil {
		t.Fatalf("ComponentGraph: %v", err)
	}
	if quotient.NodeCount() != 3 {
		t.Errorf("quotient NodeCount = %d, want 3", quotient.NodeCount())
	}
	if quotient.EdgeCount() != 2 {
		t.Errorf("quotient EdgeCount = %d, want 2", quotient.EdgeCount())
	}
	n, ok := quotient.Node("SCC-000")
	if !ok {
		t.Fatalf("expected node SCC-000")
	}
	if v, _ := n.Metadata.GetProperty("sccindex"); v != "0" {
		t.Errorf("sccindex = %q, want 0", v)
	}
	if _, ok := n.EdgeTo("SCC-001"); !ok {
		t.Errorf("expected edge SCC-000 -> SCC-001")
	}
}

func TestComponentGraphSuppressesSelfEdges(t *testing.T) {
	// Single SCC with an internal edge A->B->A: no self-edge at the component level.
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "A"}})
	a := analyzer.Snapshot(g)
	result := scc.Run(context.Background(), a, scc.DefaultPrefix)
	quotient, err := scc.ComponentGraph(g, result)
	if err != nil {
		t.Fatalf("ComponentGraph: %v", err)
	}
	if quotient.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0 (self-edges suppressed)", quotient.EdgeCount())
	}
}
