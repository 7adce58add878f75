package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRoadsQuery := `
	CREATE TABLE IF NOT EXISTS roads (
		road_id INTEGER PRIMARY KEY,
		from_place TEXT NOT NULL,
		to_place TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_roads_from_place
    ON roads(from_place);
	`

	statements := []string{
		createRoadsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type RoadSeed struct {
	RoadID int
	From   string
	To     string
}

// Split road strings into seed rows numbered in list order.
func roadSeeds(roads []string) ([]RoadSeed, error) {
	rows := make([]RoadSeed, 0, len(roads))
	for i, road := range roads {
		from, to, ok := strings.Cut(road, "-")
		from = strings.TrimSpace(from)
		to = strings.TrimSpace(to)
		if !ok || from == "" || to == "" || strings.Contains(to, "-") {
			return nil, fmt.Errorf("seed roads: road at index %d: %q is not \"From-To\"", i+1, road)
		}
		rows = append(rows, RoadSeed{RoadID: i + 1, From: from, To: to})
	}
	return rows, nil
}

// Replace the contents of the roads table with the given road list.
func SeedRoads(ctx context.Context, db *sql.DB, roads []string) error {
	if db == nil {
		return errors.New("seed roads: DB is nil")
	}

	rows, err := roadSeeds(roads)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed roads: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM roads;`); err != nil {
		return fmt.Errorf("seed roads: clear table: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO roads (
		road_id,
		from_place,
		to_place
	)
	VALUES (?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed roads: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.RoadID, r.From, r.To); err != nil {
			return fmt.Errorf("seed roads: insert road_id=%d: %w", r.RoadID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed roads: commit tx: %w", err)
	}

	return nil
}
