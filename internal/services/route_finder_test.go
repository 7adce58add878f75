package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village-delivery-sim/internal/domain"
)

func TestFindRouteLine(t *testing.T) {
	g := mustGraph(t, "A-B", "B-C")

	route, err := FindRoute(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, domain.Route{"B", "C"}, route)
}

func TestFindRouteSameEndpoints(t *testing.T) {
	g := mustGraph(t, "A-B")

	route, err := FindRoute(g, "A", "A")
	require.NoError(t, err)
	assert.Empty(t, route)
}

func TestFindRouteTiesFollowEdgeOrder(t *testing.T) {
	// two shortest routes A->D; the edge listed first wins
	g := mustGraph(t, "A-C", "A-B", "B-D", "C-D")

	route, err := FindRoute(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, domain.Route{"C", "D"}, route)
}

func TestFindRouteErrors(t *testing.T) {
	g := mustGraph(t, "A-B", "C-D")

	tests := []struct {
		name     string
		g        *domain.Graph
		from, to string
	}{
		{name: "disconnected", g: g, from: "A", to: "D"},
		{name: "unknown from", g: g, from: "Z", to: "A"},
		{name: "unknown to", g: g, from: "A", to: "Z"},
		{name: "nil graph", g: nil, from: "A", to: "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindRoute(tt.g, tt.from, tt.to)
			assert.True(t, errors.Is(err, ErrNoRoute), "got %v", err)

			_, err = FindRoutes(tt.g, tt.from, tt.to)
			assert.True(t, errors.Is(err, ErrNoRoute), "got %v", err)
		})
	}
}

func TestFindRouteIsShortest(t *testing.T) {
	graphs := map[string]*domain.Graph{
		"meadowfield": mustGraph(t, testRoads...),
		"cycle":       mustGraph(t, "A-B", "B-C", "C-D", "D-E", "E-A"),
		"ladder":      mustGraph(t, "A-B", "C-D", "E-F", "A-C", "C-E", "B-D", "D-F"),
	}

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			for _, from := range g.Nodes() {
				for _, to := range g.Nodes() {
					route, err := FindRoute(g, from, to)
					require.NoError(t, err)

					assertWalk(t, g, from, to, route)
					want := len(exhaustiveShortest(g, from, to))
					assert.Len(t, route, want, "%s -> %s", from, to)
				}
			}
		})
	}
}

func TestFindRoutesAreAllShortest(t *testing.T) {
	g := mustGraph(t, testRoads...)

	for _, from := range g.Nodes() {
		for _, to := range g.Nodes() {
			shortest, err := FindRoute(g, from, to)
			require.NoError(t, err)

			routes, err := FindRoutes(g, from, to)
			require.NoError(t, err)
			require.NotEmpty(t, routes)
			assert.Equal(t, shortest, routes[0], "%s -> %s", from, to)

			for _, r := range routes {
				assert.Len(t, r, len(shortest))
				assertWalk(t, g, from, to, r)
				assertSimple(t, from, r)
			}
			assert.Len(t, routes, countSimplePaths(g, from, to, len(shortest)))
		}
	}
}

func TestFindRoutesByLength(t *testing.T) {
	g := mustGraph(t, "A-B", "B-D", "A-C", "C-D", "A-D")

	assert.Equal(t, []domain.Route{{"D"}}, FindRoutesByLength(g, "A", "D", 1))
	assert.Equal(t, []domain.Route{{"B", "D"}, {"C", "D"}}, FindRoutesByLength(g, "A", "D", 2))
	assert.Equal(t, []domain.Route{{"D", "C"}}, FindRoutesByLength(g, "A", "C", 2))
	assert.Equal(t, []domain.Route{{}}, FindRoutesByLength(g, "A", "A", 0))

	none := FindRoutesByLength(g, "A", "D", 7)
	assert.NotNil(t, none)
	assert.Empty(t, none)
	assert.Empty(t, FindRoutesByLength(g, "A", "Z", 1))
	assert.Empty(t, FindRoutesByLength(nil, "A", "D", 1))
}

func TestFindRoutesByLengthDuplicateRoads(t *testing.T) {
	g := mustGraph(t, "A-B", "A-B")

	assert.Equal(t, []domain.Route{{"B"}, {"B"}}, FindRoutesByLength(g, "A", "B", 1))
}

func mustGraph(t *testing.T, edges ...string) *domain.Graph {
	t.Helper()
	g, err := domain.BuildGraph(edges)
	require.NoError(t, err)
	return g
}

func assertWalk(t *testing.T, g *domain.Graph, from, to string, route domain.Route) {
	t.Helper()
	at := from
	for _, step := range route {
		require.True(t, g.HasEdge(at, step), "%s -> %s is not a road in %v", at, step, route)
		at = step
	}
	assert.Equal(t, to, at)
}

func assertSimple(t *testing.T, from string, route domain.Route) {
	t.Helper()
	seen := map[string]bool{from: true}
	for _, step := range route {
		assert.False(t, seen[step], "%v revisits %s", route, step)
		seen[step] = true
	}
}

// exhaustiveShortest enumerates every simple path depth first and keeps the shortest.
func exhaustiveShortest(g *domain.Graph, from, to string) domain.Route {
	var best domain.Route
	found := from == to
	var walk func(at string, route domain.Route, seen map[string]bool)
	walk = func(at string, route domain.Route, seen map[string]bool) {
		if at == to && len(route) > 0 {
			if !found || len(route) < len(best) {
				best, found = route.Clone(), true
			}
			return
		}
		for _, next := range g.Neighbors(at) {
			if seen[next] {
				continue
			}
			seen[next] = true
			walk(next, append(route, next), seen)
			delete(seen, next)
		}
	}
	if from != to {
		walk(from, domain.Route{}, map[string]bool{from: true})
	}
	return best
}

func countSimplePaths(g *domain.Graph, from, to string, length int) int {
	var count func(at string, depth int, seen map[string]bool) int
	count = func(at string, depth int, seen map[string]bool) int {
		if depth == length {
			if at == to {
				return 1
			}
			return 0
		}
		total := 0
		for _, next := range g.Neighbors(at) {
			if seen[next] {
				continue
			}
			seen[next] = true
			total += count(next, depth+1, seen)
			delete(seen, next)
		}
		return total
	}
	return count(from, 0, map[string]bool{from: true})
}

var testRoads = []string{
	"Alice's House-Bob's House", "Alice's House-Cabin",
	"Alice's House-Post Office", "Bob's House-Town Hall",
	"Daria's House-Ernie's House", "Daria's House-Town Hall",
	"Ernie's House-Grete's House", "Grete's House-Farm",
	"Grete's House-Shop", "Marketplace-Farm",
	"Marketplace-Post Office", "Marketplace-Shop",
	"Marketplace-Town Hall", "Shop-Town Hall",
}
