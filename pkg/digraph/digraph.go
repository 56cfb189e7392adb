package digraph

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

var (
	// ErrInvalidLabel is returned by [Graph.AddVertex] and [CoerceLabel] when
	// a vertex label is empty after trimming whitespace, or when a value
	// cannot be coerced to a label. All vertices must have non-empty labels.
	ErrInvalidLabel = errors.New("vertex label must be a non-empty string")

	// ErrInvalidWeight is returned by [Graph.AddEdge] when the edge weight
	// is NaN or infinite. Weights must be finite; +Inf is reserved as the
	// "no edge" sentinel returned by [Graph.Weight].
	ErrInvalidWeight = errors.New("edge weight must be finite")

	// ErrDuplicateVertex is returned by [Graph.AddVertex] when a vertex with
	// the same label already exists. Labels are case-sensitive and unique.
	ErrDuplicateVertex = errors.New("duplicate vertex label")

	// ErrVertexNotFound is returned when an operation references a label
	// that was never added to the graph (as an edge endpoint, weight query
	// endpoint, traversal start, or shortest-path endpoint).
	ErrVertexNotFound = errors.New("vertex not found")
)

// Edge is a directed weighted connection between two vertices.
// At most one edge exists per ordered (From, To) pair.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is a directed weighted graph backed by an adjacency map.
// Vertices are identified by case-sensitive string labels; each ordered
// vertex pair carries at most one edge, and adding an edge for an existing
// pair overwrites its weight. Edges are one-way: an edge From→To does not
// imply To→From.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent use without external synchronization,
// and must not be mutated while a [Walker] from BFS or DFS is in progress.
type Graph struct {
	adj map[string]map[string]float64 // vertex -> neighbor -> weight
}

// New creates an empty directed weighted graph.
func New() *Graph {
	return &Graph{adj: make(map[string]map[string]float64)}
}

// AddVertex registers a new vertex under the trimmed label.
// Returns ErrInvalidLabel if the label is empty after trimming whitespace,
// or ErrDuplicateVertex if the label is already present. On failure the
// graph is left unchanged.
func (g *Graph) AddVertex(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrInvalidLabel
	}
	if _, exists := g.adj[label]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, label)
	}
	g.adj[label] = make(map[string]float64)
	return nil
}

// AddEdge sets the weight of the directed edge src→dst, overwriting any
// previous weight for that pair. Both endpoints must already exist
// (ErrVertexNotFound otherwise), and the weight must be finite
// (ErrInvalidWeight for NaN or ±Inf). No reverse edge is created.
// Validation happens before mutation, so a failed call changes nothing.
//
// Negative weights are accepted by construction but are outside the
// supported input domain of [Graph.ShortestPath] and [Graph.ShortestPaths].
func (g *Graph) AddEdge(src, dst string, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}
	if _, ok := g.adj[src]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, src)
	}
	if _, ok := g.adj[dst]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, dst)
	}
	g.adj[src][dst] = weight
	return nil
}

// Weight returns the weight of the edge src→dst, or +Inf if the two
// vertices are not directly connected. Returns ErrVertexNotFound if either
// endpoint is absent from the graph.
func (g *Graph) Weight(src, dst string) (float64, error) {
	if _, ok := g.adj[src]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, src)
	}
	if _, ok := g.adj[dst]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, dst)
	}
	if w, ok := g.adj[src][dst]; ok {
		return w, nil
	}
	return math.Inf(1), nil
}

// HasVertex reports whether the label is registered in the graph.
func (g *Graph) HasVertex(label string) bool {
	_, ok := g.adj[label]
	return ok
}

// Vertices returns all vertex labels in lexicographically ascending order.
func (g *Graph) Vertices() []string {
	return slices.Sorted(maps.Keys(g.adj))
}

// Neighbors returns the direct successors of the vertex in lexicographically
// ascending order. Returns ErrVertexNotFound if the vertex is absent.
func (g *Graph) Neighbors(label string) ([]string, error) {
	out, ok := g.adj[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}
	return slices.Sorted(maps.Keys(out)), nil
}

// Edges returns all edges sorted by source label, then destination label.
// The returned slice is independent of the graph.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for _, src := range g.Vertices() {
		for _, dst := range slices.Sorted(maps.Keys(g.adj[src])) {
			edges = append(edges, Edge{From: src, To: dst, Weight: g.adj[src][dst]})
		}
	}
	return edges
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, out := range g.adj {
		n += len(out)
	}
	return n
}
