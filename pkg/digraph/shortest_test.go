package digraph

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestShortestPathRoutes(t *testing.T) {
	tests := []struct {
		name     string
		src, dst string
		wantDist float64
		wantPath []string
	}{
		{"CheapestViaB", "A", "F", 8, []string{"A", "B", "F"}},
		{"TwoHops", "A", "D", 6, []string{"A", "B", "D"}},
		{"DirectEdge", "A", "C", 2, []string{"A", "C"}},
		{"SourceIsDest", "A", "A", 0, []string{"A"}},
		{"SingleEdge", "E", "F", 4, []string{"E", "F"}},
		{"Unreachable", "D", "A", math.Inf(1), nil},
		{"UnreachableIsolated", "A", "E", math.Inf(1), nil},
	}

	g := routeGraph(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := g.ShortestPath(tt.src, tt.dst)
			if err != nil {
				t.Fatalf("ShortestPath(%s,%s): %v", tt.src, tt.dst, err)
			}
			if p.Distance != tt.wantDist && !(math.IsInf(p.Distance, 1) && math.IsInf(tt.wantDist, 1)) {
				t.Errorf("distance = %v, want %v", p.Distance, tt.wantDist)
			}
			if !reflect.DeepEqual(p.Vertices, tt.wantPath) {
				t.Errorf("path = %v, want %v", p.Vertices, tt.wantPath)
			}
			if got, want := p.Reachable(), !math.IsInf(tt.wantDist, 1); got != want {
				t.Errorf("Reachable = %v, want %v", got, want)
			}
		})
	}
}

func TestShortestPathVertexNotFound(t *testing.T) {
	g := routeGraph(t)
	if _, err := g.ShortestPath("Z", "A"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("ShortestPath(Z,A) err = %v, want ErrVertexNotFound", err)
	}
	if _, err := g.ShortestPath("A", "Z"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("ShortestPath(A,Z) err = %v, want ErrVertexNotFound", err)
	}
	if _, err := g.ShortestPaths("Z"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("ShortestPaths(Z) err = %v, want ErrVertexNotFound", err)
	}
}

func TestShortestPathDistanceMatchesEdgeSum(t *testing.T) {
	g := routeGraph(t)
	for _, src := range g.Vertices() {
		for _, dst := range g.Vertices() {
			p, err := g.ShortestPath(src, dst)
			if err != nil {
				t.Fatalf("ShortestPath(%s,%s): %v", src, dst, err)
			}
			if !p.Reachable() {
				continue
			}
			var sum float64
			for i := 0; i+1 < len(p.Vertices); i++ {
				w, err := g.Weight(p.Vertices[i], p.Vertices[i+1])
				if err != nil || math.IsInf(w, 1) {
					t.Fatalf("path %v uses missing edge %s→%s", p.Vertices, p.Vertices[i], p.Vertices[i+1])
				}
				sum += w
			}
			if sum != p.Distance {
				t.Errorf("ShortestPath(%s,%s): edge sum %v != distance %v", src, dst, sum, p.Distance)
			}
		}
	}
}

// bruteForce enumerates every simple path src→dst and returns the minimum
// total weight, or +Inf if no path exists. Small graphs only.
func bruteForce(edges []Edge, src, dst string, visited map[string]bool) float64 {
	if src == dst {
		return 0
	}
	visited[src] = true
	defer delete(visited, src)

	best := math.Inf(1)
	for _, e := range edges {
		if e.From != src || visited[e.To] {
			continue
		}
		if d := e.Weight + bruteForce(edges, e.To, dst, visited); d < best {
			best = d
		}
	}
	return best
}

func TestShortestPathOptimalByEnumeration(t *testing.T) {
	g := routeGraph(t)
	for _, src := range g.Vertices() {
		for _, dst := range g.Vertices() {
			p, err := g.ShortestPath(src, dst)
			if err != nil {
				t.Fatalf("ShortestPath(%s,%s): %v", src, dst, err)
			}
			want := bruteForce(routeEdges, src, dst, map[string]bool{})
			if p.Distance != want && !(math.IsInf(p.Distance, 1) && math.IsInf(want, 1)) {
				t.Errorf("ShortestPath(%s,%s) = %v, brute force = %v", src, dst, p.Distance, want)
			}
		}
	}
}

func TestShortestPathsConsistentWithSingleTarget(t *testing.T) {
	g := routeGraph(t)
	for _, src := range g.Vertices() {
		all, err := g.ShortestPaths(src)
		if err != nil {
			t.Fatalf("ShortestPaths(%s): %v", src, err)
		}
		if len(all) != g.VertexCount() {
			t.Fatalf("ShortestPaths(%s) covers %d vertices, want %d", src, len(all), g.VertexCount())
		}
		for _, dst := range g.Vertices() {
			single, err := g.ShortestPath(src, dst)
			if err != nil {
				t.Fatalf("ShortestPath(%s,%s): %v", src, dst, err)
			}
			got := all[dst]
			if got.Distance != single.Distance && !(math.IsInf(got.Distance, 1) && math.IsInf(single.Distance, 1)) {
				t.Errorf("ShortestPaths(%s)[%s].Distance = %v, ShortestPath = %v", src, dst, got.Distance, single.Distance)
			}
			if !reflect.DeepEqual(got.Vertices, single.Vertices) {
				t.Errorf("ShortestPaths(%s)[%s].Vertices = %v, ShortestPath = %v", src, dst, got.Vertices, single.Vertices)
			}
		}
	}
}

func TestShortestPathsIncludesSource(t *testing.T) {
	g := routeGraph(t)
	all, err := g.ShortestPaths("A")
	if err != nil {
		t.Fatalf("ShortestPaths: %v", err)
	}
	p := all["A"]
	if p.Distance != 0 || !reflect.DeepEqual(p.Vertices, []string{"A"}) {
		t.Errorf("ShortestPaths(A)[A] = %v, want distance 0 path [A]", p)
	}
}
