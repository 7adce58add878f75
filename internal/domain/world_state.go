package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// ErrInvalidWorld is returned when a random world cannot be generated
// for the given graph and hub.
var ErrInvalidWorld = errors.New("invalid world")

// WorldState is an immutable snapshot of the robot's place and the parcels
// still to be delivered. Every transition produces a new WorldState.
type WorldState struct {
	place   string
	parcels []Parcel
}

// NewWorldState returns a state with the robot at place. The parcels are
// copied, and parcels already at their address are dropped.
func NewWorldState(place string, parcels []Parcel) WorldState {
	ps := make([]Parcel, 0, len(parcels))
	for _, p := range parcels {
		if !p.Delivered() {
			ps = append(ps, p)
		}
	}
	return WorldState{place: place, parcels: ps}
}

// Place returns the robot's current location.
func (s WorldState) Place() string { return s.place }

// Parcels returns a copy of the undelivered parcels in their current order.
func (s WorldState) Parcels() []Parcel { return slices.Clone(s.parcels) }

// ParcelCount returns the number of undelivered parcels.
func (s WorldState) ParcelCount() int { return len(s.parcels) }

// Done reports whether every parcel has been delivered.
func (s WorldState) Done() bool { return len(s.parcels) == 0 }

// Move returns the state after the robot walks to destination.
//
// A destination that is not a direct neighbor of the current place leaves the
// state unchanged. Otherwise every parcel at the robot's place travels with it,
// and parcels that arrive at their address are dropped.
func (s WorldState) Move(g *Graph, destination string) WorldState {
	if g == nil || !g.HasEdge(s.place, destination) {
		return s
	}

	parcels := make([]Parcel, 0, len(s.parcels))
	for _, p := range s.parcels {
		if p.Place == s.place {
			p.Place = destination
		}
		if p.Delivered() {
			continue
		}
		parcels = append(parcels, p)
	}

	return WorldState{place: destination, parcels: parcels}
}

// RandomWorldState places the robot at hub and scatters parcelCount parcels
// over the graph. Each parcel's place is resampled until it differs from its
// address, so every parcel needs at least one move.
func RandomWorldState(g *Graph, rng *rand.Rand, hub string, parcelCount int) (WorldState, error) {
	if g == nil {
		return WorldState{}, fmt.Errorf("random world: %w: graph is nil", ErrInvalidWorld)
	}
	if rng == nil {
		return WorldState{}, fmt.Errorf("random world: %w: random source is nil", ErrInvalidWorld)
	}
	if !g.HasNode(hub) {
		return WorldState{}, fmt.Errorf("random world: %w: hub %q is not on the graph", ErrInvalidWorld, hub)
	}
	if parcelCount < 0 {
		return WorldState{}, fmt.Errorf("random world: %w: parcel count %d is negative", ErrInvalidWorld, parcelCount)
	}

	nodes := g.Nodes()
	if parcelCount > 0 && len(nodes) < 2 {
		return WorldState{}, fmt.Errorf("random world: %w: need at least two locations, have %d", ErrInvalidWorld, len(nodes))
	}

	parcels := make([]Parcel, 0, parcelCount)
	for range parcelCount {
		address := nodes[rng.IntN(len(nodes))]
		place := nodes[rng.IntN(len(nodes))]
		for place == address {
			place = nodes[rng.IntN(len(nodes))]
		}
		parcels = append(parcels, Parcel{Place: place, Address: address})
	}

	return WorldState{place: hub, parcels: parcels}, nil
}

// String formats the state for log lines.
func (s WorldState) String() string {
	return fmt.Sprintf("place=%q parcels=%d", s.place, len(s.parcels))
}
