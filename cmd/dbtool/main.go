package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/joho/godotenv"

	"village-delivery-sim/internal/adapters/mapfile"
	"village-delivery-sim/internal/adapters/repositories"
	"village-delivery-sim/internal/config"
	"village-delivery-sim/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	m, err := mapfile.Load(cfg.MapPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	switch cfg.DBDriver {
	case "pgx":
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()
		initAndSeed(ctx, conn, m.Roads, repositories.InitSQLSchema, repositories.SeedSQLRoads)

	case "sqlite", "":
		conn, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()
		initAndSeed(ctx, conn, m.Roads, repositories.InitSchema, repositories.SeedRoads)
	}

	log.Printf("seeded map=%q roads=%d driver=%q", m.Name, len(m.Roads), cfg.DBDriver)
}

func initAndSeed(
	ctx context.Context,
	conn *sql.DB,
	roads []string,
	initSchema func(context.Context, *sql.DB) error,
	seed func(context.Context, *sql.DB, []string) error,
) {
	log.Println("Initializing database schema...")
	if err := initSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding roads...")
	if err := seed(ctx, conn, roads); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
