package csv_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/graphops/pkg/analyzer"
	"github.com/matzehuels/graphops/pkg/csv"
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

func TestWriteNodesWithoutSCC(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}})

	var buf bytes.Buffer
	if err := csv.WriteNodes(&buf, g, nil); err != nil {
		t.Fatalf("WriteNodes: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "key,kind,in_degree,out_degree,sccindex" {
		t.Fatalf("header = %q", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[1], "A,") || !strings.HasSuffix(lines[1], ",0,1,") {
		t.Errorf("row for A = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "B,") || !strings.HasSuffix(lines[2], ",1,0,") {
		t.Errorf("row for B = %q", lines[2])
	}
}

func TestWriteNodesPopulatesSCCIndex(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "A"}, {"B", "C"}})
	a := analyzer.Snapshot(g)
	result := scc.Run(context.Background(), a, scc.DefaultPrefix)

	var buf bytes.Buffer
	if err := csv.WriteNodes(&buf, g, result); err != nil {
		t.Fatalf("WriteNodes: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !strings.HasSuffix(lines[1], ",0") {
		t.Errorf("row for A = %q, want sccindex 0", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",0") {
		t.Errorf("row for B = %q, want sccindex 0", lines[2])
	}
	if !strings.HasSuffix(lines[3], ",1") {
		t.Errorf("row for C = %q, want sccindex 1", lines[3])
	}
}
