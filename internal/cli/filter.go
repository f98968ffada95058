package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/metadata"
	"github.com/matzehuels/graphops/pkg/rewrite"
)

// filterCommand creates the tag-based include/exclude filter command.
func (c *CLI) filterCommand() *cobra.Command {
	var input, output string
	var tags []string
	var tagKey string
	var exclude bool

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Keep or drop nodes by tag, scrubbing dangling edges",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(input)
			if err != nil {
				return err
			}
			rewrite.Filter(g, tags, tagKey, !exclude)
			return saveGraph(g, output)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph JSON (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output graph JSON (default stdout)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag value to match (repeatable)")
	cmd.Flags().StringVar(&tagKey, "key", metadata.UnkeyedTagKey, "tag key to match under (default: unkeyed)")
	cmd.Flags().BoolVar(&exclude, "exclude", false, "drop matching nodes instead of keeping only them")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}
