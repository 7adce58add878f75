package services

import (
	"errors"
	"fmt"

	"village-delivery-sim/internal/domain"
)

// ErrNoRoute is returned when the destination cannot be reached from the start.
var ErrNoRoute = errors.New("no route")

// frontierItem pairs a location with the route walked to reach it.
type frontierItem struct {
	at    string
	route domain.Route
}

// FindRoute returns a shortest route from one location to another.
//
// The search is a plain breadth-first search: each location is enqueued once and
// neighbors are explored in edge-list order, so ties go to the earlier road.
// The route excludes from and ends at to; it is empty when from == to.
func FindRoute(g *domain.Graph, from, to string) (domain.Route, error) {
	if err := checkEndpoints(g, from, to); err != nil {
		return nil, fmt.Errorf("find route: %w", err)
	}
	if from == to {
		return domain.Route{}, nil
	}

	visited := map[string]bool{from: true}
	queue := []frontierItem{{at: from, route: domain.Route{}}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for _, next := range g.Neighbors(item.at) {
			if visited[next] {
				continue
			}

			route := extend(item.route, next)
			if next == to {
				return route, nil
			}

			visited[next] = true
			queue = append(queue, frontierItem{at: next, route: route})
		}
	}

	return nil, fmt.Errorf("find route: %w from %q to %q", ErrNoRoute, from, to)
}

// FindRoutesByLength returns every simple route of exactly length steps from
// one location to another, in breadth-first discovery order.
//
// Unlike FindRoute the search keeps going after the first hit. A route is never
// extended past length steps and never revisits a location already on it.
// Duplicate roads produce duplicate routes. The result is empty, never nil,
// when no such route exists.
func FindRoutesByLength(g *domain.Graph, from, to string, length int) []domain.Route {
	routes := []domain.Route{}
	if g == nil || length < 0 || !g.HasNode(from) || !g.HasNode(to) {
		return routes
	}

	queue := []frontierItem{{at: from, route: domain.Route{}}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if len(item.route) == length {
			if item.at == to {
				routes = append(routes, item.route)
			}
			continue
		}

		for _, next := range g.Neighbors(item.at) {
			if next == from || item.route.Contains(next) {
				continue
			}
			queue = append(queue, frontierItem{at: next, route: extend(item.route, next)})
		}
	}

	return routes
}

// FindRoutes returns every shortest route from one location to another.
// The first element is always the route FindRoute returns.
func FindRoutes(g *domain.Graph, from, to string) ([]domain.Route, error) {
	shortest, err := FindRoute(g, from, to)
	if err != nil {
		return nil, fmt.Errorf("find routes: %w", err)
	}

	return FindRoutesByLength(g, from, to, len(shortest)), nil
}

func checkEndpoints(g *domain.Graph, from, to string) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrNoRoute)
	}
	if !g.HasNode(from) {
		return fmt.Errorf("%w: unknown location %q", ErrNoRoute, from)
	}
	if !g.HasNode(to) {
		return fmt.Errorf("%w: unknown location %q", ErrNoRoute, to)
	}
	return nil
}

// extend returns a new route with place appended, leaving r untouched.
func extend(r domain.Route, place string) domain.Route {
	out := make(domain.Route, len(r), len(r)+1)
	copy(out, r)
	return append(out, place)
}
