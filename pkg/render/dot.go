package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/wayfind/pkg/digraph"
)

// ToDOT converts a graph to Graphviz DOT format. Every vertex is declared
// and every edge listed with its weight as both the display label and the
// layout weight attribute. Output is deterministic: vertices sorted by
// label, edges sorted by source then destination.
//
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *digraph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph wayfind {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=14];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", v)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		w := formatWeight(e.Weight)
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, weight=%s];\n", e.From, e.To, w, w)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// formatWeight renders a weight in its shortest decimal form (5, not 5.000).
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
