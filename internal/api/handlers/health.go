package handlers

import (
	"net/http"

	"village-delivery-sim/internal/services"
)

// Health provides a minimal liveness check endpoint that also reports the
// size of the loaded village.
func Health(v *services.Village) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowOnly(w, r, http.MethodGet) {
			return
		}

		res := map[string]any{"status": "ok", "locations": v.Graph.Len()}
		writeJSON(w, r, http.StatusOK, res)
	}
}
