package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSVCommandWithSCC(t *testing.T) {
	input := writeFixtureGraph(t)
	output := filepath.Join(t.TempDir(), "out.csv")

	c := &CLI{}
	cmd := c.csvCommand()
	cmd.SetArgs([]string{"-i", input, "-o", output, "--scc"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 { // header + 3 nodes
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "key,kind,in_degree,out_degree,sccindex") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}
