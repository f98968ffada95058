package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/rewrite"
)

// purifyCommand creates the purify (transitive-reduction-like) command.
func (c *CLI) purifyCommand() *cobra.Command {
	var input, output string
	var mode, prefix string
	var collectCycles bool

	cmd := &cobra.Command{
		Use:   "purify",
		Short: "Drop transitively-implied edges (classic or SCC-quotient mode)",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(input)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			switch mode {
			case "classic":
				if err := rewrite.PurifyClassic(ctx, g, collectCycles); err != nil {
					return err
				}
			case "scc":
				if err := rewrite.PurifySCC(ctx, g, prefix); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown purify mode %q (want \"classic\" or \"scc\")", mode)
			}

			return saveGraph(g, output)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph JSON (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output graph JSON (default stdout)")
	cmd.Flags().StringVar(&mode, "mode", "classic", "purify mode: classic or scc")
	cmd.Flags().StringVar(&prefix, "prefix", "SCC-", "component name prefix for scc mode")
	cmd.Flags().BoolVar(&collectCycles, "collect-cycles", false, "classic mode: tag cut cycle edges (cyclelink) instead of failing on a cycle")

	return cmd
}
