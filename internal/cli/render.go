package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfind/pkg/render"
)

// validFormats is the set of supported render output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "dot": true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "png", "dot"
}

// newRenderCmd creates the render command for generating graph artifacts.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [graph]",
		Short: "Render a graph to SVG, PNG, or DOT files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")

	return cmd
}

// parseFormats parses the --format flag, defaulting to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input paths,
// stripping a known format extension when present.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the graph and writes one artifact per requested format.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	g, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}

	dot := render.ToDOT(g)

	base := basePath(opts.output, input)
	paths := make([]string, 0, len(opts.formats))
	for _, format := range opts.formats {
		path := base + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if err := renderAndWrite(ctx, dot, format, path); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(g.VertexCount(), g.EdgeCount())
	return nil
}

// renderAndWrite produces a single format and writes it to path.
// Graphviz rasterization runs behind a spinner; DOT output is immediate.
func renderAndWrite(ctx context.Context, dot, format, path string) error {
	var data []byte
	var err error

	switch format {
	case "dot":
		data = []byte(dot)
	case "svg", "png":
		sp := newSpinner(ctx, fmt.Sprintf("Rendering %s...", format))
		sp.start()
		if format == "svg" {
			data, err = render.RenderSVG(ctx, dot)
		} else {
			data, err = render.RenderPNG(ctx, dot)
		}
		sp.stop()
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return os.WriteFile(path, data, 0o644)
}
