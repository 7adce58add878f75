package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// EdgeSeparator splits an edge string "From-To" into its two locations.
const EdgeSeparator = "-"

// ErrMalformedEdge is returned by BuildGraph for an edge string that is not
// exactly two non-empty locations joined by EdgeSeparator.
var ErrMalformedEdge = errors.New("malformed edge")

// Graph is an undirected adjacency mapping from a location to its neighbors.
// A Graph is immutable once built and safe to share between goroutines.
type Graph struct {
	nodes []string
	adj   map[string][]string
}

// BuildGraph creates a Graph from a list of "From-To" edge strings.
//
// Both directions are inserted in the order the edges are listed. An edge that
// appears twice is inserted twice; neighbors are not deduplicated.
func BuildGraph(edges []string) (*Graph, error) {
	g := &Graph{
		nodes: make([]string, 0, len(edges)),
		adj:   make(map[string][]string, len(edges)),
	}

	for i, edge := range edges {
		from, to, err := splitEdge(edge)
		if err != nil {
			return nil, fmt.Errorf("build graph: edge #%d: %w", i+1, err)
		}
		g.addDirected(from, to)
		g.addDirected(to, from)
	}

	return g, nil
}

func splitEdge(edge string) (string, string, error) {
	if strings.Count(edge, EdgeSeparator) != 1 {
		return "", "", fmt.Errorf("%w: %q must contain exactly one %q", ErrMalformedEdge, edge, EdgeSeparator)
	}

	from, to, _ := strings.Cut(edge, EdgeSeparator)
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" {
		return "", "", fmt.Errorf("%w: %q has an empty location", ErrMalformedEdge, edge)
	}

	return from, to, nil
}

func (g *Graph) addDirected(from, to string) {
	if _, ok := g.adj[from]; !ok {
		g.nodes = append(g.nodes, from)
	}
	g.adj[from] = append(g.adj[from], to)
}

// Nodes returns every location in order of first appearance in the edge list.
func (g *Graph) Nodes() []string {
	return slices.Clone(g.nodes)
}

// Neighbors returns the neighbors of place in edge-list order,
// or nil if place is not on the graph.
func (g *Graph) Neighbors(place string) []string {
	return slices.Clone(g.adj[place])
}

// HasNode reports whether place is a location on the graph.
func (g *Graph) HasNode(place string) bool {
	_, ok := g.adj[place]
	return ok
}

// HasEdge reports whether to is a direct neighbor of from.
func (g *Graph) HasEdge(from, to string) bool {
	return slices.Contains(g.adj[from], to)
}

// Len returns the number of locations.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Edges returns each undirected edge once as a "From-To" string, grouped by
// node order. An edge that was added twice is returned twice.
func (g *Graph) Edges() []string {
	seen := make(map[string]int)
	out := make([]string, 0, len(g.nodes))
	for _, from := range g.nodes {
		for _, to := range g.adj[from] {
			key := to + EdgeSeparator + from
			if seen[key] > 0 {
				seen[key]--
				continue
			}
			seen[from+EdgeSeparator+to]++
			out = append(out, from+EdgeSeparator+to)
		}
	}
	return out
}

