package cli

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/analyzer"
	"github.com/matzehuels/graphops/pkg/cache"
	"github.com/matzehuels/graphops/pkg/cliconfig"
	"github.com/matzehuels/graphops/pkg/scc"
)

// cacheTTL bounds how long a derived artifact stays valid in the cache.
const cacheTTL = 24 * time.Hour

// cachedSCCRun retrieves cached SCC components for the graph with content
// hash hash under prefix. On a miss (or an unreadable entry) it returns a
// nil result; computing and storing is left to the caller.
func cachedSCCRun(ctx context.Context, hash, prefix string, cfg cliconfig.CacheConfig) (*scc.Result, bool, error) {
	backend, err := newCache(cfg)
	if err != nil {
		return nil, false, err
	}
	defer backend.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.SCCKey(hash, cache.SCCKeyOpts{Prefix: prefix})

	if data, found, err := backend.Get(ctx, key); err == nil && found {
		var components []scc.Component
		if err := json.Unmarshal(data, &components); err == nil {
			return scc.FromComponents(components), true, nil
		}
	}
	return nil, false, nil
}

func storeSCCRun(ctx context.Context, hash, prefix string, result *scc.Result, cfg cliconfig.CacheConfig) {
	backend, err := newCache(cfg)
	if err != nil {
		return
	}
	defer backend.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.SCCKey(hash, cache.SCCKeyOpts{Prefix: prefix})
	if data, err := json.Marshal(result.Components); err == nil {
		_ = backend.Set(ctx, key, data, cacheTTL)
	}
}

// sccCommand creates the strongly-connected-components command.
func (c *CLI) sccCommand() *cobra.Command {
	var input, output string
	var prefix string
	var quotient bool
	var noCache bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "scc",
		Short: "List strongly connected components, or emit the component quotient graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(input)
			if err != nil {
				return err
			}

			cfg, err := cliconfig.Load(configPath)
			if err != nil {
				return err
			}

			hash, err := graphHash(g)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var result *scc.Result
			var cached bool
			if !noCache {
				result, cached, err = cachedSCCRun(ctx, hash, prefix, cfg.Cache)
				if err != nil {
					return err
				}
			}
			if result == nil {
				result = scc.Run(ctx, analyzer.Snapshot(g), prefix)
				if !noCache {
					storeSCCRun(ctx, hash, prefix, result, cfg.Cache)
				}
			}

			if quotient {
				q, err := scc.ComponentGraph(g, result)
				if err != nil {
					return err
				}
				return saveGraph(q, output)
			}

			for _, comp := range result.Components {
				printKeyValue(comp.Name, "")
				for _, m := range comp.Members {
					printDetail("%s", m)
				}
			}
			status := iconFresh
			if cached {
				status = iconCached
			}
			printDetail("%d component(s) (%s)", len(result.Components), status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph JSON (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output graph JSON for --quotient (default stdout)")
	cmd.Flags().StringVar(&prefix, "prefix", scc.DefaultPrefix, "component name prefix (empty names by first member)")
	cmd.Flags().BoolVar(&quotient, "quotient", false, "write the component quotient graph instead of listing components")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the result cache")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.graphops.toml)")

	return cmd
}
