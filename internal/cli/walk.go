package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfind/pkg/digraph"
)

const (
	orderBFS = "bfs"
	orderDFS = "dfs"
)

// walkOpts holds the command-line flags for the walk command.
type walkOpts struct {
	from        string // start vertex (required)
	order       string // traversal order: "bfs" or "dfs"
	limit       int    // stop after N vertices (0 = no limit)
	interactive bool   // step through the traversal one vertex at a time
}

// newWalkCmd creates the walk command for listing traversal order.
func newWalkCmd() *cobra.Command {
	var opts walkOpts

	cmd := &cobra.Command{
		Use:   "walk [graph]",
		Short: "Walk a graph in BFS or DFS order",
		Long: `Walk a graph from a start vertex and print each visited vertex.

Neighbors are always explored in lexicographically ascending label order,
so the output is deterministic. Use --limit to consume only part of the
traversal, or --interactive to pull vertices one keypress at a time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOrder(opts.order); err != nil {
				return err
			}
			return runWalk(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "start vertex (required)")
	cmd.Flags().StringVar(&opts.order, "order", orderBFS, "traversal order: bfs (default), dfs")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "stop after N vertices (0 = walk everything)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "step through the traversal interactively")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

// validateOrder checks that the order is either "bfs" or "dfs".
func validateOrder(order string) error {
	if order != orderBFS && order != orderDFS {
		return fmt.Errorf("invalid order: %s (must be 'bfs' or 'dfs')", order)
	}
	return nil
}

// newWalker builds the traversal cursor for the requested order.
func newWalker(g *digraph.Graph, order, from string) (*digraph.Walker, error) {
	if order == orderDFS {
		return g.DFS(from)
	}
	return g.BFS(from)
}

func runWalk(cmd *cobra.Command, input string, opts *walkOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}
	w, err := newWalker(g, opts.order, opts.from)
	if err != nil {
		return err
	}

	if opts.interactive {
		return runWalkTUI(opts.order, opts.from, w)
	}

	count := 0
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		fmt.Println(v)
		count++
		if opts.limit > 0 && count == opts.limit {
			logger.Debugf("Stopped after %d vertices (limit)", count)
			break
		}
	}
	logger.Debugf("Visited %d of %d vertices", count, g.VertexCount())
	return nil
}
