package graphio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matzehuels/wayfind/pkg/digraph"
)

// document is the on-disk graph description shared by the JSON and TOML
// formats. Vertices and edge endpoints are dynamically typed so that JSON
// and TOML numbers are accepted and coerced to canonical string labels.
type document struct {
	Vertices []any  `json:"vertices" toml:"vertices"`
	Edges    []edge `json:"edges" toml:"edges"`
}

type edge struct {
	From   any      `json:"from" toml:"from"`
	To     any      `json:"to" toml:"to"`
	Weight *float64 `json:"weight" toml:"weight"`
}

// buildGraph validates a decoded document and assembles the graph.
// Errors are wrapped with the offending vertex or edge for context.
func buildGraph(doc document) (*digraph.Graph, error) {
	g := digraph.New()
	for _, v := range doc.Vertices {
		label, err := digraph.CoerceLabel(v)
		if err != nil {
			return nil, fmt.Errorf("vertex %v: %w", v, err)
		}
		if err := g.AddVertex(label); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", label, err)
		}
	}
	for _, e := range doc.Edges {
		from, err := digraph.CoerceLabel(e.From)
		if err != nil {
			return nil, fmt.Errorf("edge source %v: %w", e.From, err)
		}
		to, err := digraph.CoerceLabel(e.To)
		if err != nil {
			return nil, fmt.Errorf("edge target %v: %w", e.To, err)
		}
		if e.Weight == nil {
			return nil, fmt.Errorf("edge %s->%s: missing weight", from, to)
		}
		if err := g.AddEdge(from, to, *e.Weight); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", from, to, err)
		}
	}
	return g, nil
}

// buildDocument flattens a graph into its serialization form.
// Vertices and edges are emitted in sorted order for stable files.
func buildDocument(g *digraph.Graph) document {
	doc := document{Vertices: make([]any, 0, g.VertexCount())}
	for _, v := range g.Vertices() {
		doc.Vertices = append(doc.Vertices, v)
	}
	for _, e := range g.Edges() {
		w := e.Weight
		doc.Edges = append(doc.Edges, edge{From: e.From, To: e.To, Weight: &w})
	}
	return doc
}

// Import reads a graph description file, choosing the decoder by file
// extension (.json or .toml).
func Import(path string) (*digraph.Graph, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ImportJSON(path)
	case ".toml":
		return ImportTOML(path)
	default:
		return nil, fmt.Errorf("unsupported graph file extension %q (want .json or .toml)", ext)
	}
}
