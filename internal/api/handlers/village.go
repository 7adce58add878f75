package handlers

import (
	"errors"
	"net/http"
	"strings"

	"village-delivery-sim/internal/api/dto"
	"village-delivery-sim/internal/services"
)

// VillageHandler exposes the read-only road map and route lookups.
type VillageHandler struct {
	Village *services.Village
}

func (h *VillageHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	res := dto.VillageResponse{
		Hub:    h.Village.Hub,
		Nodes:  h.Village.Graph.Nodes(),
		Roads:  h.Village.Graph.Edges(),
		Tour:   []string(h.Village.Tour.Clone()),
		Robots: services.PolicyNames(),
	}
	if res.Tour == nil {
		res.Tour = []string{}
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Routes returns the shortest route and every equally short route between two places.
func (h *VillageHandler) Routes(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	routes, err := services.FindRoutes(h.Village.Graph, from, to)
	if err != nil {
		if errors.Is(err, services.ErrNoRoute) {
			writeError(w, r, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RoutesResponse{From: from, To: to, All: make([][]string, 0, len(routes))}
	for _, route := range routes {
		res.All = append(res.All, []string(route))
	}
	res.Shortest = res.All[0]

	writeJSON(w, r, http.StatusOK, res)
}
