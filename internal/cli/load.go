package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/wayfind/pkg/digraph"
	"github.com/matzehuels/wayfind/pkg/graphio"
)

// loadGraph imports a graph description file and logs its size.
func loadGraph(ctx context.Context, path string) (*digraph.Graph, error) {
	logger := loggerFromContext(ctx)

	g, err := graphio.Import(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debugf("Loaded graph: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	return g, nil
}
