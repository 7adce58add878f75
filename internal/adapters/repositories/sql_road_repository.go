package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"village-delivery-sim/internal/platform/obs"
)

// SQLRoadRepository is a PostgreSQL-backed RoadRepository (pgx stdlib driver).
type SQLRoadRepository struct {
	DB *sql.DB
}

func NewSQLRoadRepository(db *sql.DB) *SQLRoadRepository {
	return &SQLRoadRepository{DB: db}
}

func (s *SQLRoadRepository) ListRoads(ctx context.Context) (_ []string, err error) {
	defer obs.Time(ctx, "roads.sql.ListRoads")(&err)

	if s.DB == nil {
		return nil, errors.New("sql road repository: db is nil")
	}

	return listRoads(ctx, s.DB, `
	SELECT from_place, to_place
    FROM roads
    ORDER BY road_id;
	`)
}

// Create the roads table on PostgreSQL.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init sql schema: db is nil")
	}

	if _, err := db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS roads (
		road_id INTEGER PRIMARY KEY,
		from_place TEXT NOT NULL,
		to_place TEXT NOT NULL
	);
	`); err != nil {
		return fmt.Errorf("init sql schema: create roads: %w", err)
	}

	return nil
}

// Upsert the road list on PostgreSQL and drop rows beyond its length.
func SeedSQLRoads(ctx context.Context, db *sql.DB, roads []string) error {
	if db == nil {
		return errors.New("seed sql roads: db is nil")
	}

	rows, err := roadSeeds(roads)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed sql roads: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO roads (road_id, from_place, to_place)
    VALUES ($1, $2, $3)
	ON CONFLICT (road_id) DO UPDATE
	SET from_place = EXCLUDED.from_place,
		to_place = EXCLUDED.to_place;
	`)
	if err != nil {
		return fmt.Errorf("seed sql roads: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.RoadID, r.From, r.To); err != nil {
			return fmt.Errorf("seed sql roads road_id=%d: %w", r.RoadID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM roads WHERE road_id > $1;`, len(rows)); err != nil {
		return fmt.Errorf("seed sql roads: trim table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed sql roads commit: %w", err)
	}

	return nil
}
