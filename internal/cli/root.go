// Package cli implements the wayfind command-line interface.
//
// The CLI loads graph description files (JSON or TOML), renders them as DOT
// text or Graphviz images, and answers traversal and shortest-path queries.
// It is built on cobra with verbose logging via the charmbracelet/log
// library; loggers are passed through context.Context.
//
// # Commands
//
//   - show: print the DOT rendering of a graph
//   - render: generate SVG, PNG, or DOT artifacts
//   - walk: list vertices in BFS or DFS order, optionally step by step
//   - path: compute shortest paths to one or all destinations
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfind/pkg/buildinfo"
)

// Execute runs the wayfind CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug. The logger is attached to the command context and retrieved by
// subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "wayfind",
		Short:        "Wayfind explores directed weighted graphs",
		Long:         `Wayfind is a CLI for directed weighted graphs: it renders them with Graphviz, walks them breadth- or depth-first, and answers shortest-path queries with Dijkstra.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newShowCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newWalkCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
