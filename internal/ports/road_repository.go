package ports

import "context"

// Port: a boundary for retrieving the village road list from a data source.
type RoadRepository interface {
	// Return every road as a "From-To" edge string, in a stable order.
	ListRoads(ctx context.Context) ([]string, error)
}
