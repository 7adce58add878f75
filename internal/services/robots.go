package services

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"village-delivery-sim/internal/domain"
)

// Robot names accepted by NewPolicy.
const (
	RandomRobotName       = "random"
	RouteRobotName        = "route"
	GoalOrientedRobotName = "goal"
	ParcelAwareRobotName  = "parcel-aware"
)

var (
	// ErrUnknownPolicy is returned by NewPolicy for an unregistered robot name.
	ErrUnknownPolicy = errors.New("unknown policy")

	// ErrNoParcels is returned when a goal-driven robot is asked to move
	// although nothing is left to deliver.
	ErrNoParcels = errors.New("no parcels left")

	// ErrNoNeighbors is returned when the robot stands on a location without roads.
	ErrNoNeighbors = errors.New("no neighbors")
)

// Decision is a robot's chosen next step plus the memory it wants back next turn.
type Decision struct {
	Direction string
	Memory    domain.Route
}

// Policy decides where the robot walks next.
//
// Direction should be a neighbor of the state's place; anything else wastes the
// turn because WorldState.Move ignores it. A Policy value is not safe for
// concurrent use unless stated otherwise.
type Policy interface {
	Name() string
	Decide(state domain.WorldState, memory domain.Route) (Decision, error)
}

// RandomRobot walks to a uniformly chosen neighbor every turn.
type RandomRobot struct {
	Graph *domain.Graph
	Rand  *rand.Rand
}

func NewRandomRobot(g *domain.Graph, rng *rand.Rand) *RandomRobot {
	return &RandomRobot{Graph: g, Rand: rng}
}

func (r *RandomRobot) Name() string { return RandomRobotName }

func (r *RandomRobot) Decide(state domain.WorldState, memory domain.Route) (Decision, error) {
	neighbors := r.Graph.Neighbors(state.Place())
	if len(neighbors) == 0 {
		return Decision{}, fmt.Errorf("random robot: %w at %q", ErrNoNeighbors, state.Place())
	}

	return Decision{Direction: neighbors[r.Rand.IntN(len(neighbors))], Memory: memory}, nil
}

// RouteRobot repeats a fixed tour of the village.
type RouteRobot struct {
	Tour domain.Route
}

func NewRouteRobot(tour domain.Route) *RouteRobot {
	return &RouteRobot{Tour: tour.Clone()}
}

func (r *RouteRobot) Name() string { return RouteRobotName }

func (r *RouteRobot) Decide(_ domain.WorldState, memory domain.Route) (Decision, error) {
	if len(memory) == 0 {
		memory = r.Tour
	}

	step, rest, ok := memory.Next()
	if !ok {
		return Decision{}, errors.New("route robot: tour is empty")
	}
	return Decision{Direction: step, Memory: rest}, nil
}

// GoalOrientedRobot walks the shortest route to the first parcel, then to its address.
type GoalOrientedRobot struct {
	Graph *domain.Graph
}

func NewGoalOrientedRobot(g *domain.Graph) *GoalOrientedRobot {
	return &GoalOrientedRobot{Graph: g}
}

func (r *GoalOrientedRobot) Name() string { return GoalOrientedRobotName }

func (r *GoalOrientedRobot) Decide(state domain.WorldState, memory domain.Route) (Decision, error) {
	if len(memory) == 0 {
		target, err := nextTarget(state)
		if err != nil {
			return Decision{}, fmt.Errorf("goal robot: %w", err)
		}

		route, err := FindRoute(r.Graph, state.Place(), target)
		if err != nil {
			return Decision{}, fmt.Errorf("goal robot: %w", err)
		}
		memory = route
	}

	return decideFromRoute(state, memory), nil
}

// ParcelAwareRobot picks the same target as GoalOrientedRobot but, among all
// shortest routes, prefers the one passing the most parcel places and addresses.
type ParcelAwareRobot struct {
	Graph *domain.Graph
}

func NewParcelAwareRobot(g *domain.Graph) *ParcelAwareRobot {
	return &ParcelAwareRobot{Graph: g}
}

func (r *ParcelAwareRobot) Name() string { return ParcelAwareRobotName }

func (r *ParcelAwareRobot) Decide(state domain.WorldState, memory domain.Route) (Decision, error) {
	if len(memory) == 0 {
		target, err := nextTarget(state)
		if err != nil {
			return Decision{}, fmt.Errorf("parcel-aware robot: %w", err)
		}

		routes, err := FindRoutes(r.Graph, state.Place(), target)
		if err != nil {
			return Decision{}, fmt.Errorf("parcel-aware robot: %w", err)
		}
		memory = bestRoute(state.Parcels(), routes)
	}

	return decideFromRoute(state, memory), nil
}

// CountParcels scores a route by how many parcel places and addresses lie on it.
// A parcel whose place and address are both on the route counts twice.
func CountParcels(parcels []domain.Parcel, route domain.Route) int {
	count := 0
	for _, place := range route {
		for _, p := range parcels {
			if p.Place == place {
				count++
			}
			if p.Address == place {
				count++
			}
		}
	}
	return count
}

// bestRoute returns the highest scoring route; the earliest one wins ties.
func bestRoute(parcels []domain.Parcel, routes []domain.Route) domain.Route {
	var best domain.Route
	bestScore := -1
	for _, r := range routes {
		if score := CountParcels(parcels, r); score > bestScore {
			best, bestScore = r, score
		}
	}
	return best
}

// nextTarget is where the first parcel needs the robot to go: its place when
// it still waits for pickup, otherwise its address.
func nextTarget(state domain.WorldState) (string, error) {
	parcels := state.Parcels()
	if len(parcels) == 0 {
		return "", ErrNoParcels
	}

	first := parcels[0]
	if first.Place != state.Place() {
		return first.Place, nil
	}
	return first.Address, nil
}

// decideFromRoute emits the head of the route. An empty route keeps the robot
// where it is.
func decideFromRoute(state domain.WorldState, route domain.Route) Decision {
	step, rest, ok := route.Next()
	if !ok {
		return Decision{Direction: state.Place(), Memory: nil}
	}
	return Decision{Direction: step, Memory: rest}
}

// NewPolicy builds the robot registered under name. rng is only used by the
// random robot and tour only by the route robot.
func NewPolicy(name string, g *domain.Graph, tour domain.Route, rng *rand.Rand) (Policy, error) {
	switch name {
	case RandomRobotName:
		if rng == nil {
			return nil, fmt.Errorf("new policy %q: random source is nil", name)
		}
		return NewRandomRobot(g, rng), nil
	case RouteRobotName:
		if len(tour) == 0 {
			return nil, fmt.Errorf("new policy %q: tour is empty", name)
		}
		return NewRouteRobot(tour), nil
	case GoalOrientedRobotName:
		return NewGoalOrientedRobot(g), nil
	case ParcelAwareRobotName:
		return NewParcelAwareRobot(g), nil
	default:
		return nil, fmt.Errorf("new policy: %w: %q", ErrUnknownPolicy, name)
	}
}

// PolicyNames lists the registered robots from least to most sophisticated.
func PolicyNames() []string {
	return []string{RandomRobotName, RouteRobotName, GoalOrientedRobotName, ParcelAwareRobotName}
}

// newRand returns a deterministic PCG-backed source for seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
