package services

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village-delivery-sim/internal/domain"
)

func TestCountParcels(t *testing.T) {
	tests := []struct {
		name    string
		parcels []domain.Parcel
		route   domain.Route
		want    int
	}{
		{name: "place and address both on route", parcels: []domain.Parcel{{Place: "B", Address: "C"}}, route: domain.Route{"B", "C"}, want: 2},
		{name: "only address", parcels: []domain.Parcel{{Place: "A", Address: "C"}}, route: domain.Route{"B", "C"}, want: 1},
		{name: "no match", parcels: []domain.Parcel{{Place: "D", Address: "E"}}, route: domain.Route{"B", "C"}, want: 0},
		{name: "several parcels at one place", parcels: []domain.Parcel{{Place: "B", Address: "D"}, {Place: "B", Address: "E"}}, route: domain.Route{"B"}, want: 2},
		{name: "empty route", parcels: []domain.Parcel{{Place: "B", Address: "C"}}, route: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountParcels(tt.parcels, tt.route))
		})
	}
}

func TestRandomRobotPicksNeighbors(t *testing.T) {
	g := mustGraph(t, testRoads...)
	robot := NewRandomRobot(g, rand.New(rand.NewPCG(3, 4)))
	state := domain.NewWorldState("Marketplace", []domain.Parcel{{Place: "Farm", Address: "Shop"}})

	picked := map[string]bool{}
	for range 200 {
		d, err := robot.Decide(state, nil)
		require.NoError(t, err)
		require.True(t, g.HasEdge("Marketplace", d.Direction), "picked %q", d.Direction)
		picked[d.Direction] = true
	}
	assert.Len(t, picked, len(g.Neighbors("Marketplace")))
}

func TestRandomRobotWithoutRoads(t *testing.T) {
	g := mustGraph(t, "A-B")
	robot := NewRandomRobot(g, rand.New(rand.NewPCG(1, 1)))

	_, err := robot.Decide(domain.NewWorldState("Z", nil), nil)
	assert.True(t, errors.Is(err, ErrNoNeighbors), "got %v", err)
}

func TestRouteRobotFollowsAndRefillsTour(t *testing.T) {
	robot := NewRouteRobot(domain.Route{"B", "C", "A"})
	state := domain.NewWorldState("A", nil)

	var memory domain.Route
	var got []string
	for range 5 {
		d, err := robot.Decide(state, memory)
		require.NoError(t, err)
		got = append(got, d.Direction)
		memory = d.Memory
	}

	assert.Equal(t, []string{"B", "C", "A", "B", "C"}, got)
	assert.Equal(t, domain.Route{"A"}, memory)
}

func TestGoalOrientedRobotTargets(t *testing.T) {
	g := mustGraph(t, "A-B", "B-C", "C-D")
	robot := NewGoalOrientedRobot(g)

	t.Run("walks to pickup first", func(t *testing.T) {
		state := domain.NewWorldState("A", []domain.Parcel{{Place: "C", Address: "A"}})
		d, err := robot.Decide(state, nil)
		require.NoError(t, err)
		assert.Equal(t, "B", d.Direction)
		assert.Equal(t, domain.Route{"C"}, d.Memory)
	})

	t.Run("carries to address", func(t *testing.T) {
		state := domain.NewWorldState("B", []domain.Parcel{{Place: "B", Address: "D"}})
		d, err := robot.Decide(state, nil)
		require.NoError(t, err)
		assert.Equal(t, "C", d.Direction)
		assert.Equal(t, domain.Route{"D"}, d.Memory)
	})

	t.Run("keeps following memory", func(t *testing.T) {
		state := domain.NewWorldState("B", []domain.Parcel{{Place: "B", Address: "D"}})
		d, err := robot.Decide(state, domain.Route{"A", "B"})
		require.NoError(t, err)
		assert.Equal(t, "A", d.Direction)
		assert.Equal(t, domain.Route{"B"}, d.Memory)
	})

	t.Run("only the first parcel counts", func(t *testing.T) {
		state := domain.NewWorldState("B", []domain.Parcel{
			{Place: "D", Address: "C"},
			{Place: "A", Address: "C"},
		})
		d, err := robot.Decide(state, nil)
		require.NoError(t, err)
		assert.Equal(t, "C", d.Direction)
	})

	t.Run("nothing to deliver", func(t *testing.T) {
		_, err := robot.Decide(domain.NewWorldState("A", nil), nil)
		assert.True(t, errors.Is(err, ErrNoParcels), "got %v", err)
	})
}

func TestParcelAwareRobotPrefersBusyRoute(t *testing.T) {
	// A reaches D via B or via C; the second parcel waits at C
	g := mustGraph(t, "A-B", "A-C", "B-D", "C-D")
	state := domain.NewWorldState("A", []domain.Parcel{
		{Place: "A", Address: "D"},
		{Place: "C", Address: "D"},
	})

	goal, err := NewGoalOrientedRobot(g).Decide(state, nil)
	require.NoError(t, err)
	assert.Equal(t, "B", goal.Direction)

	aware, err := NewParcelAwareRobot(g).Decide(state, nil)
	require.NoError(t, err)
	assert.Equal(t, "C", aware.Direction)
	assert.Equal(t, domain.Route{"D"}, aware.Memory)
}

func TestParcelAwareRobotTieKeepsFirstRoute(t *testing.T) {
	g := mustGraph(t, "A-B", "A-C", "B-D", "C-D")
	state := domain.NewWorldState("A", []domain.Parcel{{Place: "A", Address: "D"}})

	d, err := NewParcelAwareRobot(g).Decide(state, nil)
	require.NoError(t, err)
	assert.Equal(t, "B", d.Direction)
}

func TestNewPolicy(t *testing.T) {
	g := mustGraph(t, testRoads...)
	tour := domain.Route{"Alice's House", "Post Office"}
	rng := rand.New(rand.NewPCG(1, 1))

	for _, name := range PolicyNames() {
		p, err := NewPolicy(name, g, tour, rng)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name())
	}

	_, err := NewPolicy("lazy", g, tour, rng)
	assert.True(t, errors.Is(err, ErrUnknownPolicy), "got %v", err)

	_, err = NewPolicy(RouteRobotName, g, nil, rng)
	assert.Error(t, err)

	_, err = NewPolicy(RandomRobotName, g, tour, nil)
	assert.Error(t, err)
}
