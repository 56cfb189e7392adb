package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/wayfind/pkg/digraph"
)

// ReadJSON decodes a JSON graph document from r.
//
// The input must be a JSON object with "vertices" and "edges" arrays:
//
//	{
//	  "vertices": ["A", "B", 3],
//	  "edges": [{"from": "A", "to": "B", "weight": 2.5}]
//	}
//
// Vertices (and edge endpoints) may be strings or numbers; numbers are
// coerced to their canonical string label, so the vertex 3 above is
// addressable as "3". Every edge must carry a numeric weight.
//
// Errors are wrapped with the offending vertex or edge; use errors.Is to
// check for digraph sentinel errors such as [digraph.ErrDuplicateVertex].
func ReadJSON(r io.Reader) (*digraph.Graph, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep numeric labels exact during coercion
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return buildGraph(doc)
}

// ImportJSON reads the JSON file at path and returns the decoded graph.
func ImportJSON(path string) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes the graph as an indented JSON document on w, with
// vertices and edges in sorted order. The output round-trips through
// [ReadJSON].
func WriteJSON(g *digraph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the graph to a JSON file at path.
func ExportJSON(g *digraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
