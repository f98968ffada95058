package cli

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/graphops/pkg/graph"
)

func TestPruneNodeCommand(t *testing.T) {
	input := writeFixtureGraph(t)
	output := filepath.Join(t.TempDir(), "out.json")

	c := &CLI{}
	cmd := c.pruneCommand()
	cmd.SetArgs([]string{"node", "-i", input, "-o", output, "--key", "c"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	g, err := graph.ReadGraphFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if g.HasNode("c") {
		t.Fatal("expected node \"c\" to be removed")
	}
}

func TestPruneEdgeCommand(t *testing.T) {
	input := writeFixtureGraph(t)
	output := filepath.Join(t.TempDir(), "out.json")

	c := &CLI{}
	cmd := c.pruneCommand()
	cmd.SetArgs([]string{"edge", "-i", input, "-o", output, "--from", "b", "--to", "a"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	g, err := graph.ReadGraphFile(output)
	if err != nil {
		t.Fatal(err)
	}
	e, err := g.FindEdge("b", "a")
	if err != nil {
		t.Fatal(err)
	}
	if e != nil {
		t.Fatal("expected edge b->a to be removed")
	}
}
