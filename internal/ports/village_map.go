package ports

import "context"

// Optional extension of RoadRepository for sources that also describe
// where the robot starts and which tour the route robot follows.
type VillageMapSource interface {
	RoadRepository
	// Return the hub location and the fixed mail tour starting and ending there.
	Layout(ctx context.Context) (hub string, tour []string, err error)
}
