// Package builder defines the seam through which an external collaborator
// populates a [graph.Graph] (spec.md §1's "injected graph builder"), and
// ships one reference implementation for tests and demonstrations.
package builder

import (
	"context"

	"github.com/matzehuels/graphops/pkg/graph"
)

// Builder is a single-method capability: anything that can produce a
// graph. The core never probes .NET assemblies itself; it accepts a
// Builder injected by the caller.
type Builder interface {
	Build(ctx context.Context) (*graph.Graph, error)
}

// Func adapts a plain function to a Builder.
type Func func(ctx context.Context) (*graph.Graph, error)

// Build calls f.
func (f Func) Build(ctx context.Context) (*graph.Graph, error) { return f(ctx) }
