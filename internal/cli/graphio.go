package cli

import (
	"fmt"
	"os"

	"github.com/matzehuels/graphops/pkg/cache"
	"github.com/matzehuels/graphops/pkg/graph"
)

// loadGraph reads a graph from path, or from stdin when path is "-" or empty.
func loadGraph(path string) (*graph.Graph, error) {
	if path == "" || path == "-" {
		g, err := graph.ReadGraph(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read graph from stdin: %w", err)
		}
		return g, nil
	}
	g, err := graph.ReadGraphFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph from %s: %w", path, err)
	}
	return g, nil
}

// saveGraph writes g to path, or to stdout when path is "-" or empty.
func saveGraph(g *graph.Graph, path string) error {
	if path == "" || path == "-" {
		return graph.WriteGraph(g, os.Stdout)
	}
	if err := graph.WriteGraphFile(g, path); err != nil {
		return fmt.Errorf("write graph to %s: %w", path, err)
	}
	return nil
}

// graphHash returns the content hash used to key cached derived artifacts
// for g (pkg/cache.Hash over the same deterministic JSON encoding used for
// on-disk snapshots).
func graphHash(g *graph.Graph) (string, error) {
	data, err := graph.MarshalGraph(g)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
