// Package cli implements the graphops command-line interface.
//
// This package provides commands for loading, analyzing, and rewriting
// tagged directed-multigraph JSON snapshots: tagging queries, SCC and
// cycle detection, the purify/filter/prune rewrites, DOT/CSV emission,
// named-graph save/load, a read-only HTTP inspection server, and an
// interactive terminal inspector. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are: tags, scc, cycles, purify, filter, prune, dot,
// supergraph, csv, save, load, serve, inspect, cache.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is held on the CLI struct; it is not attached to the commands'
// context.Context.
//
// # Example
//
//	import "github.com/matzehuels/graphops/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/buildinfo"
	"github.com/matzehuels/graphops/pkg/cache"
	"github.com/matzehuels/graphops/pkg/cliconfig"
	"github.com/matzehuels/graphops/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "graphops"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "graphops analyzes directed graphs of assembly dependencies",
		Long:         `graphops is a CLI tool for analyzing tagged directed-multigraph dependency snapshots: reachability, cycle detection, strongly connected components, supergraphs, and edge purification.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.tagsCommand())
	root.AddCommand(c.sccCommand())
	root.AddCommand(c.cyclesCommand())
	root.AddCommand(c.purifyCommand())
	root.AddCommand(c.filterCommand())
	root.AddCommand(c.pruneCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.supergraphCommand())
	root.AddCommand(c.csvCommand())
	root.AddCommand(c.saveCommand())
	root.AddCommand(c.loadCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphops/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Backend factories
// =============================================================================

// newCache builds a cache.Cache from cfg, falling back to a local
// FileCache under cacheDir when cfg names no backend.
func newCache(cfg cliconfig.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "redis":
		return cache.NewRedisCache(cfg.RedisURL, appName)
	case "none":
		return cache.NewNullCache(), nil
	case "file", "":
		dir := cfg.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	default:
		return nil, errUnknownBackend("cache", cfg.Backend)
	}
}

// newStore builds a store.Store from cfg, defaulting to a local FileStore.
func newStore(ctx context.Context, cfg cliconfig.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case "mongo":
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoColl)
	case "file", "":
		return store.NewFileStore(cfg.Dir)
	default:
		return nil, errUnknownBackend("store", cfg.Backend)
	}
}

// errUnknownBackend reports an unrecognized backend name from the config file.
func errUnknownBackend(kind, name string) error {
	return fmt.Errorf("unknown %s backend %q", kind, name)
}
