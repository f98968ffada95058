package cli

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/graphops/pkg/graph"
)

func TestPurifyCommandSCCMode(t *testing.T) {
	input := writeFixtureGraph(t)
	output := filepath.Join(t.TempDir(), "out.json")

	c := &CLI{}
	cmd := c.purifyCommand()
	cmd.SetArgs([]string{"-i", input, "-o", output, "--mode", "scc"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := graph.ReadGraphFile(output); err != nil {
		t.Fatal(err)
	}
}

func TestPurifyCommandUnknownMode(t *testing.T) {
	input := writeFixtureGraph(t)
	c := &CLI{}
	cmd := c.purifyCommand()
	cmd.SetArgs([]string{"-i", input, "--mode", "bogus"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
