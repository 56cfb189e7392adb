package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfind/pkg/render"
)

// newShowCmd creates the show command, printing a graph's DOT rendering.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [graph]",
		Short: "Print the DOT rendering of a graph",
		Long: `Print the Graphviz DOT rendering of a graph to stdout.

The output lists every vertex and every weighted edge in sorted order, so
it is stable across runs and usable both for debugging and as input to
external Graphviz tooling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(render.ToDOT(g))
			return nil
		},
	}
}
