package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wayfind/pkg/digraph"
)

// ReadTOML decodes a TOML graph document from r.
//
// The format mirrors the JSON document:
//
//	vertices = ["A", "B", "F"]
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	weight = 5.0
//
// Integer labels and weights are accepted; labels are coerced to their
// canonical string form.
func ReadTOML(r io.Reader) (*digraph.Graph, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return buildGraph(doc)
}

// ImportTOML reads the TOML file at path and returns the decoded graph.
func ImportTOML(path string) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTOML(f)
}

// WriteTOML encodes the graph as a TOML document on w, with vertices and
// edges in sorted order. The output round-trips through [ReadTOML].
func WriteTOML(g *digraph.Graph, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(buildDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportTOML writes the graph to a TOML file at path.
func ExportTOML(g *digraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTOML(g, f)
}
