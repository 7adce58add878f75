package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/ports"
	"village-delivery-sim/internal/platform/obs"
)

var (
	// ErrDisconnected is returned when some location cannot be reached from
	// the hub, which would let a simulation run forever.
	ErrDisconnected = errors.New("village graph is disconnected")

	// ErrInvalidTour is returned when the route robot's tour is not a closed
	// walk along roads starting and ending at the hub.
	ErrInvalidTour = errors.New("invalid tour")
)

// Village is a built road graph together with the robot's hub and the fixed
// tour used by the route robot.
type Village struct {
	Graph *domain.Graph
	Hub   string
	Tour  domain.Route
}

type LoadVillageRequest struct {
	// Hub and Tour override the layout reported by the source, if any.
	Hub  string
	Tour []string
}

// LoadVillage reads the road list from repo and builds a validated Village.
// Sources implementing ports.VillageMapSource also supply the hub and tour.
func LoadVillage(ctx context.Context, req LoadVillageRequest, repo ports.RoadRepository) (_ *Village, err error) {
	defer obs.Time(ctx, "village.Load")(&err)

	if repo == nil {
		return nil, errors.New("load village: road repository must be non-nil")
	}

	roads, err := repo.ListRoads(ctx)
	if err != nil {
		return nil, fmt.Errorf("load village: list roads: %w", err)
	}

	hub := strings.TrimSpace(req.Hub)
	tour := req.Tour

	if src, ok := repo.(ports.VillageMapSource); ok && (hub == "" || len(tour) == 0) {
		srcHub, srcTour, err := src.Layout(ctx)
		if err != nil {
			return nil, fmt.Errorf("load village: read layout: %w", err)
		}
		if hub == "" {
			hub = srcHub
		}
		if len(tour) == 0 {
			tour = srcTour
		}
	}

	v, err := NewVillage(roads, hub, tour)
	if err != nil {
		return nil, fmt.Errorf("load village: %w", err)
	}
	return v, nil
}

// NewVillage builds the graph from roads and checks that every location is
// reachable from hub and that tour, if given, is a closed walk from the hub.
func NewVillage(roads []string, hub string, tour []string) (*Village, error) {
	g, err := domain.BuildGraph(roads)
	if err != nil {
		return nil, err
	}

	if hub == "" {
		return nil, errors.New("new village: hub must be non-empty")
	}
	if !g.HasNode(hub) {
		return nil, fmt.Errorf("new village: hub %q is not on the map", hub)
	}

	for _, place := range g.Nodes() {
		if _, err := FindRoute(g, hub, place); err != nil {
			return nil, fmt.Errorf("new village: %w: %q unreachable from %q", ErrDisconnected, place, hub)
		}
	}

	if err := checkTour(g, hub, tour); err != nil {
		return nil, fmt.Errorf("new village: %w", err)
	}

	return &Village{Graph: g, Hub: hub, Tour: domain.Route(tour).Clone()}, nil
}

func checkTour(g *domain.Graph, hub string, tour []string) error {
	if len(tour) == 0 {
		return nil
	}

	at := hub
	for i, step := range tour {
		if !g.HasEdge(at, step) {
			return fmt.Errorf("%w: step %d %q is not a road from %q", ErrInvalidTour, i+1, step, at)
		}
		at = step
	}
	if at != hub {
		return fmt.Errorf("%w: ends at %q instead of hub %q", ErrInvalidTour, at, hub)
	}
	return nil
}

// NewPolicy builds the named robot for this village.
func (v *Village) NewPolicy(name string, seed uint64) (Policy, error) {
	return NewPolicy(name, v.Graph, v.Tour, newRand(seed))
}

// Policies builds one fresh instance of every named robot; all names when none are given.
func (v *Village) Policies(seed uint64, names ...string) ([]Policy, error) {
	if len(names) == 0 {
		names = PolicyNames()
	}

	out := make([]Policy, 0, len(names))
	for i, name := range names {
		p, err := v.NewPolicy(name, seed+uint64(i))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// RandomWorld returns a world with parcelCount parcels and the robot at the hub.
func (v *Village) RandomWorld(seed uint64, parcelCount int) (domain.WorldState, error) {
	return domain.RandomWorldState(v.Graph, newRand(seed), v.Hub, parcelCount)
}
