package handlers

import (
	"errors"
	"log"
	"net/http"

	"village-delivery-sim/internal/api/dto"
	"village-delivery-sim/internal/platform/metrics"
	"village-delivery-sim/internal/platform/obs"
	"village-delivery-sim/internal/services"
)

const maxTrials = 1000

// ComparisonHandler benchmarks several robots over the same random worlds.
type ComparisonHandler struct {
	Village            *services.Village
	DefaultSeed        uint64
	DefaultTrials      int
	DefaultParcelCount int
	DefaultMaxTurns    int
	Workers            int
}

func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.ComparisonRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	trials := req.Trials
	if trials == 0 {
		trials = h.DefaultTrials
	}
	if trials < 1 || trials > maxTrials {
		writeError(w, r, http.StatusBadRequest, "trials must be between 1 and 1000")
		return
	}

	parcelCount := req.ParcelCount
	if parcelCount == 0 {
		parcelCount = h.DefaultParcelCount
	}
	if parcelCount < 1 || parcelCount > maxParcels {
		writeError(w, r, http.StatusBadRequest, "parcel_count must be between 1 and 50")
		return
	}

	maxTurns, ok := turnLimit(req.MaxTurns, h.DefaultMaxTurns)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "max_turns must be between 0 and 10000")
		return
	}
	if maxTurns == 0 {
		// a single request must not be able to spin forever
		maxTurns = maxTurnsCap
	}

	seed := h.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	robots, err := h.Village.Policies(seed, req.Robots...)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	cmp, err := services.CompareRobots(r.Context(), h.Village.Graph, services.CompareRobotsRequest{
		Hub:         h.Village.Hub,
		Trials:      trials,
		ParcelCount: parcelCount,
		Seed:        seed,
		MaxTurns:    maxTurns,
		Workers:     h.Workers,
	}, robots...)
	metrics.ObserveComparison(err)
	if err != nil {
		log.Printf("compare robots failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		switch {
		case errors.Is(err, services.ErrInvalidComparison):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrTurnLimit):
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	res := dto.ComparisonResponse{
		Trials:   cmp.Trials,
		Scores:   make([]dto.RobotScoreResponse, 0, len(cmp.Scores)),
		Averages: cmp.Averages(),
	}
	for _, s := range cmp.Scores {
		res.Scores = append(res.Scores, dto.RobotScoreResponse{
			Robot:        s.Robot,
			TotalTurns:   s.TotalTurns,
			AverageTurns: s.AverageTurns,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
