// Package digraph provides an in-memory directed weighted graph with
// deterministic traversal and shortest-path queries.
//
// # Overview
//
// A [Graph] stores case-sensitive string vertices in an adjacency map, with
// at most one weighted edge per ordered vertex pair. On top of the mutation
// primitives it offers:
//
//   - Pull-based breadth-first and depth-first traversal via [Walker]
//   - Dijkstra shortest paths, single-target ([Graph.ShortestPath]) and
//     all-targets ([Graph.ShortestPaths])
//
// Whenever an ordering matters, neighbor labels are processed in
// lexicographically ascending order, so traversal sequences and rendered
// output are fully deterministic regardless of insertion order.
//
// # Basic Usage
//
// Create a graph with [New], add vertices before the edges that reference
// them, and query:
//
//	g := digraph.New()
//	for _, v := range []string{"A", "B", "C"} {
//	    if err := g.AddVertex(v); err != nil {
//	        return err
//	    }
//	}
//	g.AddEdge("A", "B", 5)
//	g.AddEdge("B", "C", 3)
//
//	p, _ := g.ShortestPath("A", "C")
//	fmt.Println(p.Distance, p.Vertices) // 8 [A B C]
//
// # Errors
//
// All validation failures are reported synchronously as sentinel errors
// ([ErrInvalidLabel], [ErrInvalidWeight], [ErrDuplicateVertex],
// [ErrVertexNotFound]) suitable for errors.Is. Validation happens before
// mutation: a failed AddVertex or AddEdge leaves the graph unchanged.
//
// # Weights
//
// Edge weights are finite float64 values of any sign by construction, but
// the shortest-path operations assume non-negative weights; feeding them a
// graph with negative edges is outside the supported input domain. +Inf is
// reserved as the "unreachable" sentinel used by [Graph.Weight] and
// [Path.Distance].
//
// # Concurrency
//
// Graph is a plain in-memory value with no internal locking. Callers must
// not mutate it from multiple goroutines, or while a [Walker] is in
// progress, without external synchronization.
package digraph
