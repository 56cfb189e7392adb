package cli

import (
	"math"
	"testing"

	"github.com/matzehuels/wayfind/pkg/digraph"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want string
	}{
		{"integer weight", 8, "8"},
		{"zero", 0, "0"},
		{"fractional", 2.5, "2.5"},
		{"no trailing zeros", 7.50, "7.5"},
		{"infinity", math.Inf(1), "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDistance(tt.d); got != tt.want {
				t.Errorf("formatDistance(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		name string
		p    digraph.Path
		want string
	}{
		{
			"reachable",
			digraph.Path{Distance: 8, Vertices: []string{"A", "B", "F"}},
			"(8, [A B F])",
		},
		{
			"source is destination",
			digraph.Path{Distance: 0, Vertices: []string{"A"}},
			"(0, [A])",
		},
		{
			"unreachable",
			digraph.Path{Distance: math.Inf(1)},
			"D → A: not accessible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPath("D", "A", tt.p); got != tt.want {
				t.Errorf("formatPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
