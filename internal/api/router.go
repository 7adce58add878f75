package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"village-delivery-sim/internal/api/handlers"
	"village-delivery-sim/internal/config"
	"village-delivery-sim/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers only see the loaded village).
func NewRouter(v *services.Village, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	villageHandler := &handlers.VillageHandler{Village: v}
	simHandler := &handlers.SimulationHandler{
		Village:            v,
		DefaultSeed:        cfg.Seed,
		DefaultParcelCount: cfg.ParcelCount,
		DefaultMaxTurns:    cfg.MaxTurns,
	}
	cmpHandler := &handlers.ComparisonHandler{
		Village:            v,
		DefaultSeed:        cfg.Seed,
		DefaultTrials:      cfg.Trials,
		DefaultParcelCount: cfg.ParcelCount,
		DefaultMaxTurns:    cfg.MaxTurns,
		Workers:            cfg.Workers,
	}

	mux.HandleFunc("/health", handlers.Health(v))
	mux.HandleFunc("/village", villageHandler.Get)
	mux.HandleFunc("/routes", villageHandler.Routes)
	mux.HandleFunc("/simulations", simHandler.Run)
	mux.HandleFunc("/comparisons", cmpHandler.Compare)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
