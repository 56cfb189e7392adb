package digraph

import (
	"container/heap"
	"fmt"
	"math"
)

// Path is the result of a shortest-path query. Distance is the sum of edge
// weights along Vertices, which runs from the source to the destination
// inclusive. An unreachable destination has Distance +Inf and no vertices.
type Path struct {
	Distance float64
	Vertices []string
}

// Reachable reports whether the destination can be reached from the source.
func (p Path) Reachable() bool { return !math.IsInf(p.Distance, 1) }

// ShortestPath computes the minimum-weight path from src to dst using
// Dijkstra's algorithm with a min-heap frontier and lazy deletion: improved
// distances push duplicate heap entries, and stale entries are discarded
// when popped. The search stops early once dst is popped, which is safe
// because a vertex's distance is final at first pop.
//
// Returns ErrVertexNotFound if either endpoint is absent. An unreachable
// dst yields Path{Distance: +Inf}. Edge weights must be non-negative;
// behavior with negative weights is unspecified.
func (g *Graph) ShortestPath(src, dst string) (Path, error) {
	if !g.HasVertex(src) {
		return Path{}, fmt.Errorf("%w: %q", ErrVertexNotFound, src)
	}
	if !g.HasVertex(dst) {
		return Path{}, fmt.Errorf("%w: %q", ErrVertexNotFound, dst)
	}
	dist, prev := g.dijkstra(src, dst)
	return buildPath(src, dst, dist, prev), nil
}

// ShortestPaths computes the minimum-weight path from src to every vertex
// in the graph in a single Dijkstra pass (no early termination). The result
// maps each vertex to its path: src maps to Path{0, [src]}, and unreachable
// vertices map to Path{Distance: +Inf}. Iterate [Graph.Vertices] for a
// label-sorted presentation.
//
// Returns ErrVertexNotFound if src is absent. Edge weights must be
// non-negative; behavior with negative weights is unspecified.
func (g *Graph) ShortestPaths(src string) (map[string]Path, error) {
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, src)
	}
	dist, prev := g.dijkstra(src, "")
	paths := make(map[string]Path, len(g.adj))
	for v := range g.adj {
		paths[v] = buildPath(src, v, dist, prev)
	}
	return paths, nil
}

// dijkstra runs the shared relaxation loop. When stop is a vertex label,
// the loop exits early once that vertex is popped; an empty stop computes
// distances to all reachable vertices.
func (g *Graph) dijkstra(src, stop string) (dist map[string]float64, prev map[string]string) {
	dist = make(map[string]float64, len(g.adj))
	prev = make(map[string]string, len(g.adj))
	for v := range g.adj {
		dist[v] = math.Inf(1)
	}
	dist[src] = 0

	pq := &frontier{{vertex: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(entry)
		if item.dist > dist[item.vertex] {
			continue // stale entry superseded by a later relaxation
		}
		if item.vertex == stop {
			break
		}
		for n, w := range g.adj[item.vertex] {
			if next := item.dist + w; next < dist[n] {
				dist[n] = next
				prev[n] = item.vertex
				heap.Push(pq, entry{vertex: n, dist: next})
			}
		}
	}
	return dist, prev
}

// buildPath reconstructs the src→dst vertex sequence by following
// predecessors backward from dst, then reversing.
func buildPath(src, dst string, dist map[string]float64, prev map[string]string) Path {
	d := dist[dst]
	if math.IsInf(d, 1) {
		return Path{Distance: d}
	}

	var rev []string
	for v := dst; ; v = prev[v] {
		rev = append(rev, v)
		if v == src {
			break
		}
	}
	vertices := make([]string, len(rev))
	for i, v := range rev {
		vertices[len(rev)-1-i] = v
	}
	return Path{Distance: d, Vertices: vertices}
}

// entry pairs a vertex with the tentative distance it was pushed at.
type entry struct {
	vertex string
	dist   float64
}

// frontier is a min-heap of entries ordered by tentative distance.
// Duplicate entries per vertex are allowed (lazy deletion).
type frontier []entry

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(entry)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
