package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/cliconfig"
	"github.com/matzehuels/graphops/pkg/graph"
)

// loadCommand creates the named-graph retrieval command.
func (c *CLI) loadCommand() *cobra.Command {
	var output, configPath string

	cmd := &cobra.Command{
		Use:   "load NAME",
		Short: "Load a named graph snapshot from the configured store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			cfg, err := cliconfig.Load(configPath)
			if err != nil {
				return err
			}
			s, err := newStore(cmd.Context(), cfg.Store)
			if err != nil {
				return err
			}
			defer s.Close()

			rec, err := s.Get(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("load %q: %w", name, err)
			}

			g, err := graph.ReadGraph(bytes.NewReader(rec.Data))
			if err != nil {
				return fmt.Errorf("parse stored graph %q: %w", name, err)
			}
			return saveGraph(g, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output graph JSON (default stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.graphops.toml)")

	return cmd
}
