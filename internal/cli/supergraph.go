package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/classify"
)

// supergraphCommand creates the quotient-graph-by-classification command.
func (c *CLI) supergraphCommand() *cobra.Command {
	var input, output string
	var property string
	var classMapPath string
	var addNodes bool

	cmd := &cobra.Command{
		Use:   "supergraph",
		Short: "Build the quotient graph under a node classification",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(input)
			if err != nil {
				return err
			}

			var classifier classify.Classifier
			switch {
			case property != "":
				classifier = classify.PropertyClassifier{Graph: g, Property: property}
			case classMapPath != "":
				data, err := os.ReadFile(classMapPath)
				if err != nil {
					return fmt.Errorf("read class map %s: %w", classMapPath, err)
				}
				var classes map[string][]string
				if err := json.Unmarshal(data, &classes); err != nil {
					return fmt.Errorf("parse class map %s: %w", classMapPath, err)
				}
				classifier, err = classify.NewMapClassifierFromClasses(classes)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("one of --by or --class-map is required")
			}

			super, err := classify.SuperGraph(g, classifier, addNodes)
			if err != nil {
				return err
			}
			return saveGraph(super, output)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph JSON (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output graph JSON (default stdout)")
	cmd.Flags().StringVar(&property, "by", "", "node property to classify by")
	cmd.Flags().StringVar(&classMapPath, "class-map", "", "JSON file mapping class name to a list of node keys")
	cmd.Flags().BoolVar(&addNodes, "add-nodes", false, "record each member node as a \"node\" tag on its class node")

	return cmd
}
