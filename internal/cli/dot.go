package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/cache"
	"github.com/matzehuels/graphops/pkg/cliconfig"
	"github.com/matzehuels/graphops/pkg/dot"
)

// renderCached retrieves a cached render keyed by (hash, keyOpts),
// calling render to compute and store it on a miss.
func renderCached(ctx context.Context, hash string, keyOpts cache.RenderKeyOpts, cfg cliconfig.CacheConfig, render func() ([]byte, error)) (data []byte, cached bool, err error) {
	backend, err := newCache(cfg)
	if err != nil {
		return nil, false, err
	}
	defer backend.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.RenderKey(hash, keyOpts)

	if data, found, err := backend.Get(ctx, key); err == nil && found {
		return data, true, nil
	}

	data, err = render()
	if err != nil {
		return nil, false, err
	}
	_ = backend.Set(ctx, key, data, cacheTTL)
	return data, false, nil
}

// dotCommand creates the DOT/SVG/PDF/PNG rendering command.
func (c *CLI) dotCommand() *cobra.Command {
	var input, output string
	var horizontal bool
	var clusterBy string
	var svgPath, pdfPath, pngPath string
	var scale float64
	var noCache bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Emit GraphViz DOT, with optional SVG/PDF/PNG rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(input)
			if err != nil {
				return err
			}

			opts := dot.Options{ID: "graphops", Directed: true, Horizontal: horizontal}
			if clusterBy != "" {
				opts.ClusterBy = func(key string) (string, bool) {
					n, ok := g.Node(key)
					if !ok {
						return "", false
					}
					return n.Metadata.GetProperty(clusterBy)
				}
			}

			text, err := dot.WriteString(g, opts)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = os.Stdout.WriteString(text)
			} else {
				err = os.WriteFile(output, []byte(text), 0644)
			}
			if err != nil {
				return err
			}

			if svgPath == "" && pdfPath == "" && pngPath == "" {
				return nil
			}

			ctx := cmd.Context()
			var hash string
			var cacheCfg cliconfig.CacheConfig
			if !noCache {
				hash, err = graphHash(g)
				if err != nil {
					return err
				}
				cfg, err := cliconfig.Load(configPath)
				if err != nil {
					return err
				}
				cacheCfg = cfg.Cache
			}

			write := func(path, format string, fscale float64, render func() ([]byte, error)) error {
				var data []byte
				var cached bool
				if noCache {
					data, err = render()
				} else {
					data, cached, err = renderCached(ctx, hash, cache.RenderKeyOpts{Format: format, Scale: fscale}, cacheCfg, render)
				}
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, data, 0644); err != nil {
					return err
				}
				status := iconFresh
				if cached {
					status = iconCached
				}
				printFile(path)
				printDetail("(%s)", status)
				return nil
			}

			if svgPath != "" {
				if err := write(svgPath, "svg", 0, func() ([]byte, error) { return dot.RenderSVG(ctx, text) }); err != nil {
					return err
				}
			}
			if pdfPath != "" {
				if err := write(pdfPath, "pdf", 0, func() ([]byte, error) { return dot.RenderPDF(ctx, text) }); err != nil {
					return err
				}
			}
			if pngPath != "" {
				if err := write(pngPath, "png", scale, func() ([]byte, error) { return dot.RenderPNG(ctx, text, scale) }); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph JSON (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output .dot file (default stdout)")
	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "lay the graph out left-to-right")
	cmd.Flags().StringVar(&clusterBy, "cluster-by", "", "node property to cluster nodes by")
	cmd.Flags().StringVar(&svgPath, "svg", "", "also render an SVG to this path")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also render a PDF to this path")
	cmd.Flags().StringVar(&pngPath, "png", "", "also render a PNG to this path")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "PNG render scale factor")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the result cache")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.graphops.toml)")

	return cmd
}
