package builder

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/matzehuels/graphops/pkg/errors"
	"github.com/matzehuels/graphops/pkg/graph"
)

// stub is one *.asm.json descriptor: a minimal stand-in for whatever a
// real .NET assembly scanner would discover.
type stub struct {
	Key     string   `json:"key"`
	Targets []string `json:"targets"`
	Tags    []string `json:"tags"`
}

// DirListBuilder builds a graph by reading every "*.asm.json" file in Dir
// as a [stub] descriptor and calling the public Graph mutators. It is a
// reference implementation of [Builder] for tests, not a general .NET
// probing engine — spec.md §1 keeps that out of scope.
type DirListBuilder struct {
	Dir string
}

// Build implements Builder.
func (b DirListBuilder) Build(ctx context.Context) (*graph.Graph, error) {
	matches, err := filepath.Glob(filepath.Join(b.Dir, "*.asm.json"))
	if err != nil {
		return nil, errors.Wrap(errors.CodeIOError, err, "glob %s", b.Dir)
	}
	sort.Strings(matches)

	stubs := make([]stub, 0, len(matches))
	g := graph.New()
	for _, path := range matches {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.CodeIOError, err, "read %s", path)
		}
		var s stub
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(errors.CodeMalformedInput, err, "parse %s", path)
		}
		if s.Key == "" {
			return nil, errors.New(errors.CodeMalformedInput, "%s: missing key", path)
		}
		stubs = append(stubs, s)
		if _, err := g.AddNode(s.Key); err != nil {
			return nil, errors.Wrap(errors.CodeInvariantViolation, err, "%s", path)
		}
	}

	for _, s := range stubs {
		for _, tag := range s.Tags {
			node, _ := g.Node(s.Key)
			node.Metadata.Tags("").Add(tag)
		}
	}

	for _, s := range stubs {
		for _, target := range s.Targets {
			if !g.HasNode(target) {
				return nil, errors.New(errors.CodeMalformedInput, "%s: unknown target %q", s.Key, target)
			}
			if _, err := g.Connect(s.Key, target); err != nil {
				return nil, errors.Wrap(errors.CodeInvariantViolation, err, "%s -> %s", s.Key, target)
			}
		}
	}

	return g, nil
}
