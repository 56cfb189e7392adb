package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfind/pkg/digraph"
)

// pathOpts holds the command-line flags for the path command.
type pathOpts struct {
	from string // source vertex (required)
	to   string // destination vertex; empty means all destinations
}

// newPathCmd creates the path command for shortest-path queries.
func newPathCmd() *cobra.Command {
	var opts pathOpts

	cmd := &cobra.Command{
		Use:   "path [graph]",
		Short: "Find the cheapest path between vertices",
		Long: `Find the cheapest path from a source vertex using Dijkstra's algorithm.

With --to the result is printed as "(distance, [v1 v2 ...])", or a
"not accessible" message when no path exists. Without --to, paths to
every vertex are listed in a table sorted by destination label.

Edge weights must be non-negative for the results to be meaningful.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "source vertex (required)")
	cmd.Flags().StringVar(&opts.to, "to", "", "destination vertex (default: all)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func runPath(cmd *cobra.Command, input string, opts *pathOpts) error {
	ctx := cmd.Context()

	g, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}

	if opts.to != "" {
		p, err := g.ShortestPath(opts.from, opts.to)
		if err != nil {
			return err
		}
		printPath(opts.from, opts.to, p)
		return nil
	}

	prog := newProgress(loggerFromContext(ctx))
	paths, err := g.ShortestPaths(opts.from)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed cheapest paths to %d destinations", len(paths)))

	printPathTable(opts.from, g.Vertices(), paths)
	return nil
}

// printPathTable renders one row per destination, sorted by label.
func printPathTable(src string, destinations []string, paths map[string]digraph.Path) {
	rows := [][]string{}
	for _, dst := range destinations {
		p := paths[dst]
		if !p.Reachable() {
			rows = append(rows, []string{dst, "∞", "not accessible"})
			continue
		}
		rows = append(rows, []string{dst, formatDistance(p.Distance), strings.Join(p.Vertices, " " + iconArrow + " ")})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("To", "Distance", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			p := paths[destinations[row]]
			if !p.Reachable() {
				return styleDim
			}
			if col == 1 {
				return styleNumber
			}
			return styleValue
		})

	fmt.Println(styleHeader.Render(fmt.Sprintf("Cheapest paths from %q", src)))
	fmt.Println(t.Render())
}
