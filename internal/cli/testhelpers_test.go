package cli

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/graphops/pkg/graph"
)

// writeFixtureGraph builds a small graph (a->b, b->a, b->c) with a tag on
// "a", writes it to a temp file, and returns the path.
func writeFixtureGraph(t *testing.T) string {
	t.Helper()
	g := graph.New()
	for _, k := range []string{"a", "b", "c"} {
		if _, err := g.AddNode(k); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.Connect("a", "b"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Connect("b", "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Connect("b", "c"); err != nil {
		t.Fatal(err)
	}
	n, _ := g.Node("a")
	n.Metadata.Tags("lang").Add("go")

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := graph.WriteGraphFile(g, path); err != nil {
		t.Fatal(err)
	}
	return path
}
