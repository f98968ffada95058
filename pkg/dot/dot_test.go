package dot_test

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphops/pkg/dot"
	"github.com/matzehuels/graphops/pkg/graph"
)

func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	if _, err := g.AddNode("A"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if _, err := g.AddNode("B"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if _, err := g.Connect("A", "B"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return g
}

func TestWriteProducesBalancedScopes(t *testing.T) {
	g := buildGraph(t)
	out, err := dot.WriteString(g, dot.Options{Directed: true})
	if err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if strings.Count(out, "{") != strings.Count(out, "}") {
		t.Errorf("unbalanced braces:\n%s", out)
	}
	if strings.Count(out, "[") != strings.Count(out, "]") {
		t.Errorf("unbalanced brackets:\n%s", out)
	}
	if !strings.HasPrefix(out, "digraph {") {
		t.Errorf("expected digraph header, got:\n%s", out)
	}
	if !strings.Contains(out, `"A" -> "B"`) {
		t.Errorf("expected edge A -> B, got:\n%s", out)
	}
}

func TestWriteUndirectedUsesDoubleDash(t *testing.T) {
	g := buildGraph(t)
	out, err := dot.WriteString(g, dot.Options{Directed: false})
	if err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if !strings.HasPrefix(out, "graph {") {
		t.Errorf("expected graph header, got:\n%s", out)
	}
	if !strings.Contains(out, `"A" -- "B"`) {
		t.Errorf("expected edge A -- B, got:\n%s", out)
	}
}

func TestWriteHorizontalSetsRankdir(t *testing.T) {
	g := buildGraph(t)
	out, err := dot.WriteString(g, dot.Options{Directed: true, Horizontal: true})
	if err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if !strings.Contains(out, `rankdir="LR";`) {
		t.Errorf("expected rankdir=LR, got:\n%s", out)
	}
}

func TestWriteSublabelProducesHTMLLabel(t *testing.T) {
	g := buildGraph(t)
	n, _ := g.Node("A")
	v := "(2 nodes)"
	n.Metadata.SetProperty("sublabel", &v)

	out, err := dot.WriteString(g, dot.Options{Directed: true})
	if err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if !strings.Contains(out, "<B>A</B>") || !strings.Contains(out, "<I>(2 nodes)</I>") {
		t.Errorf("expected HTML label with sublabel, got:\n%s", out)
	}
	if strings.Contains(out, "sublabel=") {
		t.Errorf("sublabel should be folded into the label, not emitted as its own attribute:\n%s", out)
	}
}

func TestWriteClusterByGroupsNodesIntoSubgraph(t *testing.T) {
	g := buildGraph(t)
	out, err := dot.WriteString(g, dot.Options{
		Directed: true,
		ClusterBy: func(key string) (string, bool) {
			if key == "A" {
				return "cluster0", true
			}
			return "", false
		},
	})
	if err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if !strings.Contains(out, `subgraph "cluster0" {`) {
		t.Errorf("expected cluster0 subgraph, got:\n%s", out)
	}
}
