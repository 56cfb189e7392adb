package digraph

import (
	"fmt"
	"maps"
	"slices"
)

// Walker is a pull-based traversal cursor over a Graph. Each call to Next
// produces one vertex; a walker is one-shot, finite (bounded by the vertex
// count), and safe to abandon part-way through. Walkers hold their own
// visited set and frontier and never mutate the graph, but the graph must
// not be modified while a walk is in progress.
type Walker struct {
	g        *Graph
	frontier []string
	visited  map[string]bool
	fifo     bool // FIFO frontier for BFS, LIFO for DFS
}

// BFS returns a walker producing vertices in breadth-first order from start:
// vertices are dequeued from a FIFO frontier and their unvisited neighbors
// enqueued in lexicographically ascending order, marked visited at enqueue
// time so no vertex is enqueued twice. Returns ErrVertexNotFound if start
// is absent.
func (g *Graph) BFS(start string) (*Walker, error) {
	w, err := g.newWalker(start, true)
	if err != nil {
		return nil, err
	}
	w.visited[start] = true
	return w, nil
}

// DFS returns a walker producing vertices in depth-first pre-order from
// start: each vertex is yielded on first discovery, then its neighbors are
// explored in lexicographically ascending order, fully recursing into each
// before moving to the next sibling. Returns ErrVertexNotFound if start
// is absent.
func (g *Graph) DFS(start string) (*Walker, error) {
	return g.newWalker(start, false)
}

func (g *Graph) newWalker(start string, fifo bool) (*Walker, error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, start)
	}
	return &Walker{
		g:        g,
		frontier: []string{start},
		visited:  make(map[string]bool, len(g.adj)),
		fifo:     fifo,
	}, nil
}

// Next produces the next vertex of the traversal. The second return value
// is false once the traversal is exhausted.
func (w *Walker) Next() (string, bool) {
	if w.fifo {
		return w.nextBFS()
	}
	return w.nextDFS()
}

// Walk drains the walker and returns the remaining vertices in order.
func (w *Walker) Walk() []string {
	var order []string
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		order = append(order, v)
	}
	return order
}

func (w *Walker) nextBFS() (string, bool) {
	if len(w.frontier) == 0 {
		return "", false
	}
	v := w.frontier[0]
	w.frontier = w.frontier[1:]
	for _, n := range slices.Sorted(maps.Keys(w.g.adj[v])) {
		if !w.visited[n] {
			w.visited[n] = true
			w.frontier = append(w.frontier, n)
		}
	}
	return v, true
}

func (w *Walker) nextDFS() (string, bool) {
	for len(w.frontier) > 0 {
		last := len(w.frontier) - 1
		v := w.frontier[last]
		w.frontier = w.frontier[:last]
		if w.visited[v] {
			continue // stale entry pushed before v was reached elsewhere
		}
		w.visited[v] = true
		// Push neighbors in descending order so the lexicographically
		// smallest unvisited neighbor is explored first.
		neighbors := slices.Sorted(maps.Keys(w.g.adj[v]))
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !w.visited[neighbors[i]] {
				w.frontier = append(w.frontier, neighbors[i])
			}
		}
		return v, true
	}
	return "", false
}
