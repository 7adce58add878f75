package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"village-delivery-sim/internal/api/dto"
	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/platform/metrics"
	"village-delivery-sim/internal/platform/obs"
	"village-delivery-sim/internal/services"
)

// Upper bounds that keep a single request from running unbounded work.
const (
	maxParcels  = 50
	maxTurnsCap = 10000
)

// SimulationHandler runs single robots over random or explicit worlds.
type SimulationHandler struct {
	Village *services.Village
	// Defaults applied when the request leaves a field zero.
	DefaultSeed        uint64
	DefaultParcelCount int
	DefaultMaxTurns    int
}

func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.SimulationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	robotName := strings.TrimSpace(req.Robot)
	if robotName == "" {
		robotName = services.GoalOrientedRobotName
	}

	seed := h.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	maxTurns, ok := turnLimit(req.MaxTurns, h.DefaultMaxTurns)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "max_turns must be between 0 and 10000")
		return
	}

	start, err := h.startState(req, seed)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	robot, err := h.Village.NewPolicy(robotName, seed)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := services.RunRobot(r.Context(), services.RunRobotRequest{
		Graph:       h.Village.Graph,
		State:       start,
		Policy:      robot,
		MaxTurns:    maxTurns,
		RecordTrace: req.Trace,
	})
	metrics.ObserveSimulation(robotName, turnsOf(res), err)
	if err != nil {
		log.Printf("run robot failed: req_id=%s robot=%s err=%v", obs.RequestID(r.Context()), robotName, err)
		if errors.Is(err, services.ErrTurnLimit) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	out := dto.SimulationResponse{
		Robot:   res.Robot,
		Start:   start.Place(),
		Parcels: parcelsToDTO(start.Parcels()),
		Turns:   res.Turns,
	}
	for _, ev := range res.Trace {
		out.Trace = append(out.Trace, dto.TurnResponse{
			Turn:      ev.Turn,
			Direction: ev.Direction,
			Place:     ev.State.Place(),
			Parcels:   parcelsToDTO(ev.State.Parcels()),
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}

// startState builds the explicit world from the request, or a random one.
func (h *SimulationHandler) startState(req dto.SimulationRequest, seed uint64) (domain.WorldState, error) {
	g := h.Village.Graph

	if len(req.Parcels) > 0 {
		if len(req.Parcels) > maxParcels {
			return domain.WorldState{}, errors.New("at most 50 parcels are allowed")
		}

		place := strings.TrimSpace(req.Place)
		if place == "" {
			place = h.Village.Hub
		}
		if !g.HasNode(place) {
			return domain.WorldState{}, errors.New("place is not on the map: " + place)
		}

		parcels := make([]domain.Parcel, 0, len(req.Parcels))
		for _, p := range req.Parcels {
			if !g.HasNode(p.Place) || !g.HasNode(p.Address) {
				return domain.WorldState{}, errors.New("parcel place and address must be on the map")
			}
			parcels = append(parcels, domain.Parcel{Place: p.Place, Address: p.Address})
		}
		return domain.NewWorldState(place, parcels), nil
	}

	count := req.ParcelCount
	if count == 0 {
		count = h.DefaultParcelCount
	}
	if count < 1 || count > maxParcels {
		return domain.WorldState{}, errors.New("parcel_count must be between 1 and 50")
	}
	return h.Village.RandomWorld(seed, count)
}

func turnLimit(requested, fallback int) (int, bool) {
	if requested == 0 {
		requested = fallback
	}
	if requested < 0 || requested > maxTurnsCap {
		return 0, false
	}
	return requested, true
}

func turnsOf(res *services.SimulationResult) int {
	if res == nil {
		return 0
	}
	return res.Turns
}

func parcelsToDTO(ps []domain.Parcel) []dto.ParcelDTO {
	out := make([]dto.ParcelDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, dto.ParcelDTO{Place: p.Place, Address: p.Address})
	}
	return out
}
