package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"village-delivery-sim/internal/adapters/villagesource"
	"village-delivery-sim/internal/api"
	"village-delivery-sim/internal/config"
)

// main is the application composition root.
// It loads the village from the configured road source and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	src, err := villagesource.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	village, err := src.LoadVillage(ctx, cfg.Hub)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("village loaded map=%q driver=%q hub=%q locations=%d", src.Map.Name, cfg.DBDriver, village.Hub, village.Graph.Len())

	router := api.NewRouter(village, cfg)

	// Comparisons over many trials are CPU bound, so writes get a generous timeout.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
