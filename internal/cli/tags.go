package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/graph"
	"github.com/matzehuels/graphops/pkg/metadata"
)

// tagsCommand creates the tags query command.
func (c *CLI) tagsCommand() *cobra.Command {
	var input string
	var tags []string
	var tagKey string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags in use, or find nodes carrying given tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(input)
			if err != nil {
				return err
			}

			if len(tags) == 0 {
				printTagSummary(g)
				return nil
			}

			keys := g.FindTaggedNodesAny(tags, tagKey)
			sort.Strings(keys)
			for _, k := range keys {
				printKeyValue(k, "")
			}
			printDetail("%d node(s) matched", len(keys))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph JSON (default stdin)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag value to search for (repeatable); with none, summarize all tags")
	cmd.Flags().StringVar(&tagKey, "key", metadata.UnkeyedTagKey, "tag key to search under (default: unkeyed)")

	return cmd
}

// printTagSummary prints every keyed-tag key in use across the graph's
// nodes, with the distinct values seen under it and how many nodes carry
// each.
func printTagSummary(g *graph.Graph) {
	counts := map[string]map[string]int{}
	for _, nk := range g.NodeKeys() {
		n, _ := g.Node(nk)
		for _, key := range n.Metadata.TagKeys() {
			set, ok := n.Metadata.TryGetTags(key)
			if !ok {
				continue
			}
			if counts[key] == nil {
				counts[key] = map[string]int{}
			}
			for _, v := range set.Slice() {
				counts[key][v]++
			}
		}
	}

	if len(counts) == 0 {
		printInfo("No tags found")
		return
	}

	var keys []string
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		label := key
		if label == metadata.UnkeyedTagKey {
			label = "(unkeyed)"
		}
		printKeyValue(label, "")
		var values []string
		for v := range counts[key] {
			values = append(values, v)
		}
		sort.Strings(values)
		for _, v := range values {
			printDetail("%s: %d node(s)", v, counts[key][v])
		}
	}
}
