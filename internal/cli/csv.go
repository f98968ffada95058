package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/analyzer"
	"github.com/matzehuels/graphops/pkg/csv"
	"github.com/matzehuels/graphops/pkg/scc"
)

// csvCommand creates the per-node CSV export command.
func (c *CLI) csvCommand() *cobra.Command {
	var input, output string
	var withSCC bool
	var prefix string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export one CSV row per node (key, kind, degrees, and optionally its SCC index)",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(input)
			if err != nil {
				return err
			}

			var result *scc.Result
			if withSCC {
				result = scc.Run(cmd.Context(), analyzer.Snapshot(g), prefix)
			}

			w := os.Stdout
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				return csv.WriteNodes(f, g, result)
			}
			return csv.WriteNodes(w, g, result)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph JSON (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV path (default stdout)")
	cmd.Flags().BoolVar(&withSCC, "scc", false, "populate the sccindex column")
	cmd.Flags().StringVar(&prefix, "prefix", scc.DefaultPrefix, "component name prefix when --scc is set")

	return cmd
}
