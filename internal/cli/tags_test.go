package cli

import (
	"bytes"
	"testing"
)

func TestTagsCommandSummary(t *testing.T) {
	path := writeFixtureGraph(t)
	c := &CLI{}
	cmd := c.tagsCommand()
	cmd.SetArgs([]string{"-i", path})
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestTagsCommandSearch(t *testing.T) {
	path := writeFixtureGraph(t)
	c := &CLI{}
	cmd := c.tagsCommand()
	cmd.SetArgs([]string{"-i", path, "--tag", "go", "--key", "lang"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}
