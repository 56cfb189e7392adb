// Package render produces visual output for directed weighted graphs.
//
// # Overview
//
// The package has two layers:
//
//   - [ToDOT] converts a digraph.Graph to Graphviz DOT text. The output
//     is fully deterministic (vertices and edges sorted by label) and lists
//     every edge with its weight, so it doubles as a debugging dump.
//   - [RenderSVG] and [RenderPNG] rasterize DOT text in-process via
//     [github.com/goccy/go-graphviz].
//
// # Usage
//
//	dot := render.ToDOT(g)
//	svg, err := render.RenderSVG(ctx, dot)
//
// The DOT text can also be saved and processed with external Graphviz
// tools, or customized before rendering.
package render
