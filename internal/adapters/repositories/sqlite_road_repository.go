package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"village-delivery-sim/internal/platform/obs"
)

// SQLite-backed implementation of the RoadRepository port.
type SqliteRoadRepository struct{ DB *sql.DB }

func NewSqliteRoadRepository(db *sql.DB) *SqliteRoadRepository {
	return &SqliteRoadRepository{DB: db}
}

// Return all roads stored in the database in seeding order.
func (s *SqliteRoadRepository) ListRoads(ctx context.Context) (_ []string, err error) {
	defer obs.Time(ctx, "roads.sqlite.ListRoads")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite road repository: DB is nil")
	}

	return listRoads(ctx, s.DB, `
	SELECT
		from_place,
		to_place
	FROM roads
	ORDER BY road_id;
	`)
}

func listRoads(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list roads: query roads table: %w", err)
	}
	defer rows.Close()

	roads := make([]string, 0, 32)
	for rows.Next() {
		var from, to string
		if err := rows.Scan(&from, &to); err != nil {
			return nil, fmt.Errorf("list roads: scan row: %w", err)
		}
		roads = append(roads, from+"-"+to)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list roads: row iteration: %w", err)
	}

	return roads, nil
}
