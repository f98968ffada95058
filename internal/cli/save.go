package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/cliconfig"
	"github.com/matzehuels/graphops/pkg/graph"
	"github.com/matzehuels/graphops/pkg/store"
)

// saveCommand creates the named-graph persistence command.
func (c *CLI) saveCommand() *cobra.Command {
	var input, configPath string

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save a graph snapshot under a name in the configured store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			g, err := loadGraph(input)
			if err != nil {
				return err
			}
			data, err := graph.MarshalGraph(g)
			if err != nil {
				return fmt.Errorf("marshal graph: %w", err)
			}

			cfg, err := cliconfig.Load(configPath)
			if err != nil {
				return err
			}
			s, err := newStore(cmd.Context(), cfg.Store)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Set(cmd.Context(), &store.Record{Name: name, Data: data}); err != nil {
				return fmt.Errorf("save %q: %w", name, err)
			}
			printSuccess("saved %q", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph JSON (default stdin)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.graphops.toml)")

	return cmd
}
