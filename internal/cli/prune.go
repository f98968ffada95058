package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/rewrite"
)

// pruneCommand creates the parent prune command with edge/node subcommands.
func (c *CLI) pruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove a specific edge, a node, or all edges into/out of a node",
	}

	cmd.AddCommand(c.pruneEdgeCommand())
	cmd.AddCommand(c.pruneNodeCommand())
	cmd.AddCommand(c.pruneIntoCommand())
	cmd.AddCommand(c.pruneOutOfCommand())

	return cmd
}

// pruneIO registers the shared -i/-o flags on a prune subcommand.
func pruneIO(cmd *cobra.Command) (input, output *string) {
	input, output = new(string), new(string)
	cmd.Flags().StringVarP(input, "input", "i", "", "input graph JSON (default stdin)")
	cmd.Flags().StringVarP(output, "output", "o", "", "output graph JSON (default stdout)")
	return
}

func (c *CLI) pruneEdgeCommand() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{Use: "edge", Short: "Remove one edge (no-op if missing)"}
	input, output := pruneIO(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(*input)
		if err != nil {
			return err
		}
		rewrite.PruneEdge(g, from, to)
		return saveGraph(g, *output)
	}
	cmd.Flags().StringVar(&from, "from", "", "source node key")
	cmd.Flags().StringVar(&to, "to", "", "target node key")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (c *CLI) pruneNodeCommand() *cobra.Command {
	var key string
	cmd := &cobra.Command{Use: "node", Short: "Remove a node and its edges (no-op if missing)"}
	input, output := pruneIO(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(*input)
		if err != nil {
			return err
		}
		rewrite.PruneNode(g, key)
		return saveGraph(g, *output)
	}
	cmd.Flags().StringVar(&key, "key", "", "node key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (c *CLI) pruneIntoCommand() *cobra.Command {
	var target string
	cmd := &cobra.Command{Use: "into", Short: "Remove every edge into a target node"}
	input, output := pruneIO(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(*input)
		if err != nil {
			return err
		}
		rewrite.PruneEdgesInto(g, target)
		return saveGraph(g, *output)
	}
	cmd.Flags().StringVar(&target, "target", "", "target node key")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func (c *CLI) pruneOutOfCommand() *cobra.Command {
	var source string
	cmd := &cobra.Command{Use: "outof", Short: "Remove every edge out of a source node"}
	input, output := pruneIO(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(*input)
		if err != nil {
			return err
		}
		rewrite.PruneEdgesOutOf(g, source)
		return saveGraph(g, *output)
	}
	cmd.Flags().StringVar(&source, "source", "", "source node key")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}
