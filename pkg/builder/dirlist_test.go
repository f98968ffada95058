package builder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/graphops/pkg/builder"
)

func writeStub(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDirListBuilderBuild(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "app.asm.json", `{"key":"app","targets":["lib"],"tags":["seed"]}`)
	writeStub(t, dir, "lib.asm.json", `{"key":"lib","targets":[]}`)

	g, err := (builder.DirListBuilder{Dir: dir}).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	app, ok := g.Node("app")
	if !ok {
		t.Fatalf("expected node app")
	}
	if !app.Metadata.HasAnyTag("", []string{"seed"}) {
		t.Errorf("expected app to carry the seed tag")
	}
}

func TestDirListBuilderRejectsUnknownTarget(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "app.asm.json", `{"key":"app","targets":["missing"]}`)

	if _, err := (builder.DirListBuilder{Dir: dir}).Build(context.Background()); err == nil {
		t.Fatalf("expected error for unknown target")
	}
}
