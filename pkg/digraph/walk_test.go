package digraph

import (
	"errors"
	"reflect"
	"testing"
)

// routeEdges is the shared six-vertex fixture: A reaches F cheapest through
// B (5+3=8), D only reaches F, and E is unreachable from A.
var routeEdges = []Edge{
	{From: "A", To: "B", Weight: 5},
	{From: "A", To: "C", Weight: 2},
	{From: "A", To: "F", Weight: 10},
	{From: "B", To: "D", Weight: 1},
	{From: "B", To: "F", Weight: 3},
	{From: "C", To: "D", Weight: 7},
	{From: "D", To: "F", Weight: 6},
	{From: "E", To: "F", Weight: 4},
}

func routeGraph(t *testing.T) *Graph {
	t.Helper()
	g := New()
	for _, v := range []string{"A", "B", "C", "D", "E", "F"} {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%q): %v", v, err)
		}
	}
	for _, e := range routeEdges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e.From, e.To, err)
		}
	}
	return g
}

func TestBFSOrder(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  []string
	}{
		{"FromA", "A", []string{"A", "B", "C", "F", "D"}},
		{"FromB", "B", []string{"B", "D", "F"}},
		{"FromD", "D", []string{"D", "F"}},
		{"FromF", "F", []string{"F"}},
		{"FromE", "E", []string{"E", "F"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := routeGraph(t).BFS(tt.start)
			if err != nil {
				t.Fatalf("BFS(%q): %v", tt.start, err)
			}
			if got := w.Walk(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BFS(%q) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestDFSOrder(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  []string
	}{
		{"FromA", "A", []string{"A", "B", "D", "F", "C"}},
		{"FromB", "B", []string{"B", "D", "F"}},
		{"FromC", "C", []string{"C", "D", "F"}},
		{"FromF", "F", []string{"F"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := routeGraph(t).DFS(tt.start)
			if err != nil {
				t.Fatalf("DFS(%q): %v", tt.start, err)
			}
			if got := w.Walk(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DFS(%q) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestWalkStartNotFound(t *testing.T) {
	g := routeGraph(t)
	if _, err := g.BFS("Z"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("BFS(Z) err = %v, want ErrVertexNotFound", err)
	}
	if _, err := g.DFS("Z"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("DFS(Z) err = %v, want ErrVertexNotFound", err)
	}
}

func TestWalkerPartialConsumption(t *testing.T) {
	w, err := routeGraph(t).BFS("A")
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}

	// Pull two vertices and abandon the rest; resuming later must continue
	// where the cursor left off.
	first, ok := w.Next()
	if !ok || first != "A" {
		t.Fatalf("Next() = %q, %v, want A, true", first, ok)
	}
	second, ok := w.Next()
	if !ok || second != "B" {
		t.Fatalf("Next() = %q, %v, want B, true", second, ok)
	}

	rest := w.Walk()
	want := []string{"C", "F", "D"}
	if !reflect.DeepEqual(rest, want) {
		t.Errorf("remaining = %v, want %v", rest, want)
	}
	if _, ok := w.Next(); ok {
		t.Error("Next() after exhaustion = true, want false")
	}
}

func TestWalkVisitsReachableOnce(t *testing.T) {
	// Cyclic graph: traversal must still terminate with each vertex once.
	g := New()
	for _, v := range []string{"x", "y", "z"} {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%q): %v", v, err)
		}
	}
	for _, e := range []Edge{{From: "x", To: "y"}, {From: "y", To: "z"}, {From: "z", To: "x"}} {
		if err := g.AddEdge(e.From, e.To, 1); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e.From, e.To, err)
		}
	}

	for _, order := range []string{"bfs", "dfs"} {
		var w *Walker
		var err error
		if order == "bfs" {
			w, err = g.BFS("x")
		} else {
			w, err = g.DFS("x")
		}
		if err != nil {
			t.Fatalf("%s: %v", order, err)
		}
		got := w.Walk()
		want := []string{"x", "y", "z"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s = %v, want %v", order, got, want)
		}
	}
}

func TestBFSLevelOrdering(t *testing.T) {
	// All vertices at hop-distance k must appear before any at k+1,
	// regardless of edge weights.
	g := routeGraph(t)
	hops := map[string]int{"A": 0, "B": 1, "C": 1, "F": 1, "D": 2}

	w, err := g.BFS("A")
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	prev := -1
	for _, v := range w.Walk() {
		if hops[v] < prev {
			t.Errorf("vertex %s at hop %d yielded after hop %d", v, hops[v], prev)
		}
		prev = hops[v]
	}
}
