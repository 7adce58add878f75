// Package villagesource picks the road source named by the configuration
// and loads the village from it.
package villagesource

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"village-delivery-sim/internal/adapters/mapfile"
	"village-delivery-sim/internal/adapters/repositories"
	"village-delivery-sim/internal/config"
	"village-delivery-sim/internal/platform/db"
	"village-delivery-sim/internal/ports"
	"village-delivery-sim/internal/services"
)

// Source is an opened road source plus the map file that supplies the hub
// and tour when roads come from a database.
type Source struct {
	Map   *mapfile.VillageMap
	Roads ports.RoadRepository
	db    *sql.DB
}

// Open reads the map file and, for DB_DRIVER=sqlite or pgx, connects to the
// roads table. An empty SQLite table is seeded from the map for local runs.
func Open(ctx context.Context, cfg config.Config) (*Source, error) {
	m, err := mapfile.Load(cfg.MapPath)
	if err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case "":
		return &Source{Map: m, Roads: m}, nil

	case "sqlite":
		conn, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if err := ensureSeeded(ctx, conn, m); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return &Source{Map: m, Roads: repositories.NewSqliteRoadRepository(conn), db: conn}, nil

	case "pgx":
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &Source{Map: m, Roads: repositories.NewSQLRoadRepository(conn), db: conn}, nil

	default:
		return nil, fmt.Errorf("open village source: unsupported driver %q", cfg.DBDriver)
	}
}

func ensureSeeded(ctx context.Context, conn *sql.DB, m *mapfile.VillageMap) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("open village source: %w", err)
	}

	roads, err := repositories.NewSqliteRoadRepository(conn).ListRoads(ctx)
	if err != nil {
		return fmt.Errorf("open village source: %w", err)
	}
	if len(roads) > 0 {
		return nil
	}

	log.Printf("roads table empty, seeding from map name=%q roads=%d", m.Name, len(m.Roads))
	if err := repositories.SeedRoads(ctx, conn, m.Roads); err != nil {
		return fmt.Errorf("open village source: %w", err)
	}
	return nil
}

// LoadVillage builds the village from the opened roads. hub, when non-empty,
// replaces the map's hub; the map's tour must still be a closed walk from it.
func (s *Source) LoadVillage(ctx context.Context, hub string) (*services.Village, error) {
	req := services.LoadVillageRequest{Hub: hub, Tour: s.Map.Tour}
	if req.Hub == "" {
		req.Hub = s.Map.Hub
	}
	return services.LoadVillage(ctx, req, s.Roads)
}

// Close releases the database connection, if any.
func (s *Source) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
