package graph_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/graphops/pkg/errors"
	"github.com/matzehuels/graphops/pkg/graph"
)

func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, k := range []string{"A", "B", "C"} {
		if _, err := g.AddNode(k); err != nil {
			t.Fatalf("AddNode(%s): %v", k, err)
		}
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}} {
		if _, err := g.Connect(e[0], e[1]); err != nil {
			t.Fatalf("Connect(%s,%s): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestAddNodeRejectsDuplicate(t *testing.T) {
	g := graph.New()
	if _, err := g.AddNode("a"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	_, err := g.AddNode("A")
	if !errors.Is(err, errors.CodeInvariantViolation) {
		t.Fatalf("expected CodeInvariantViolation for case-insensitive duplicate, got %v", err)
	}
}

func TestConnectSynchronizesBothSides(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.Node("A")
	b, _ := g.Node("B")
	if _, ok := a.EdgeTo("B"); !ok {
		t.Errorf("expected A -> B in A's targets")
	}
	if _, ok := b.EdgeFrom("A"); !ok {
		t.Errorf("expected A -> B in B's sources")
	}
}

func TestConnectRejectsDuplicateEdge(t *testing.T) {
	g := buildTriangle(t)
	if _, err := g.Connect("A", "B"); !errors.Is(err, errors.CodeInvariantViolation) {
		t.Fatalf("expected CodeInvariantViolation for duplicate edge, got %v", err)
	}
}

func TestNodeKind(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.Node("A")
	b, _ := g.Node("B")
	c, _ := g.Node("C")
	if a.Kind() != graph.KindSeed {
		t.Errorf("A kind = %v, want Seed", a.Kind())
	}
	if b.Kind() != graph.KindOther {
		t.Errorf("B kind = %v, want Other", b.Kind())
	}
	if c.Kind() != graph.KindSink {
		t.Errorf("C kind = %v, want Sink", c.Kind())
	}
}

func TestRemoveNodesScrubsDanglingEdges(t *testing.T) {
	g := buildTriangle(t)
	g.RemoveNodes([]string{"B"})
	a, _ := g.Node("A")
	c, _ := g.Node("C")
	if diff := cmp.Diff([]string{"C"}, a.TargetKeys()); diff != "" {
		t.Errorf("A targets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A"}, c.SourceKeys()); diff != "" {
		t.Errorf("C sources mismatch (-want +got):\n%s", diff)
	}
}

func TestDisconnectAllExcept(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.Node("A")
	removed := a.DisconnectAllExcept(nil)
	if len(removed) != 2 {
		t.Fatalf("expected both edges removed, got %d", len(removed))
	}
	if a.OutDegree() != 0 {
		t.Errorf("expected A to have no outgoing edges")
	}
}

func TestEdgesSnapshotIndependentOfMutation(t *testing.T) {
	g := buildTriangle(t)
	snap := g.EdgesSnapshot()
	before := snap.Get("A").Slice()

	g.RemoveNodes([]string{"B"})

	after := snap.Get("A").Slice()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("snapshot mutated after graph change (-before +after):\n%s", diff)
	}
}

func TestFindTaggedNodes(t *testing.T) {
	g := buildTriangle(t)
	b, _ := g.Node("B")
	b.Metadata.Tags("").Add("drop")
	got := g.FindTaggedNodes("drop", "")
	if diff := cmp.Diff([]string{"B"}, got); diff != "" {
		t.Errorf("FindTaggedNodes mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripSerialization(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.Node("A")
	a.Metadata.SetProperty("module", strp("m1"))
	a.Metadata.Tags("").Add("seed")

	var buf bytes.Buffer
	if err := graph.WriteGraph(g, &buf); err != nil {
		t.Fatalf("WriteGraph: %v", err)
	}

	got, err := graph.ReadGraph(&buf)
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}

	if got.NodeCount() != g.NodeCount() || got.EdgeCount() != g.EdgeCount() {
		t.Fatalf("round trip mismatch: nodes %d/%d edges %d/%d",
			got.NodeCount(), g.NodeCount(), got.EdgeCount(), g.EdgeCount())
	}
	gotA, ok := got.Node("A")
	if !ok {
		t.Fatalf("expected node A to survive round trip")
	}
	if v, _ := gotA.Metadata.GetProperty("module"); v != "m1" {
		t.Errorf("module property = %q, want m1", v)
	}
	if diff := cmp.Diff([]string{"B", "C"}, gotA.TargetKeys()); diff != "" {
		t.Errorf("A targets mismatch (-want +got):\n%s", diff)
	}
}

func strp(s string) *string { return &s }
