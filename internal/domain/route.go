package domain

import "slices"

// Route is an ordered sequence of locations to walk, one per turn.
// It excludes the starting location and ends at the destination.
type Route []string

// Next splits the route into its first step and the remaining steps.
// ok is false for an empty route.
func (r Route) Next() (step string, rest Route, ok bool) {
	if len(r) == 0 {
		return "", nil, false
	}
	return r[0], r[1:], true
}

// Contains reports whether place is visited by the route.
func (r Route) Contains(place string) bool { return slices.Contains(r, place) }

// Clone returns an independent copy of the route.
func (r Route) Clone() Route { return slices.Clone(r) }
