package services

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"village-delivery-sim/internal/domain"
)

// ErrTurnLimit is returned by RunRobot when the robot has not delivered
// every parcel within RunRobotRequest.MaxTurns turns.
var ErrTurnLimit = errors.New("turn limit reached")

// TurnEvent describes one move of the robot and the state it produced.
type TurnEvent struct {
	Turn      int
	Direction string
	State     domain.WorldState
}

// Turns lazily runs a robot from state until every parcel is delivered.
//
// Each yielded event is one turn. A policy error or context cancellation is
// yielded once as the error and ends the sequence. The sequence never ends on
// its own if some parcel cannot be reached, so the graph must be connected.
func Turns(
	ctx context.Context,
	g *domain.Graph,
	state domain.WorldState,
	policy Policy,
	memory domain.Route,
) iter.Seq2[TurnEvent, error] {
	return func(yield func(TurnEvent, error) bool) {
		for turn := 0; !state.Done(); {
			if err := ctx.Err(); err != nil {
				yield(TurnEvent{Turn: turn, State: state}, fmt.Errorf("turn %d: %w", turn, err))
				return
			}

			decision, err := policy.Decide(state, memory)
			if err != nil {
				yield(TurnEvent{Turn: turn, State: state}, fmt.Errorf("turn %d: %s: %w", turn, policy.Name(), err))
				return
			}

			state = state.Move(g, decision.Direction)
			memory = decision.Memory
			turn++

			if !yield(TurnEvent{Turn: turn, Direction: decision.Direction, State: state}, nil) {
				return
			}
		}
	}
}

type RunRobotRequest struct {
	Graph  *domain.Graph
	State  domain.WorldState
	Policy Policy
	Memory domain.Route
	// MaxTurns stops the run with ErrTurnLimit; zero means no limit.
	MaxTurns    int
	RecordTrace bool
	// OnTurn, if set, is called after every turn.
	OnTurn func(TurnEvent)
}

type SimulationResult struct {
	Robot string
	Turns int
	Final domain.WorldState
	Trace []TurnEvent
}

// RunRobot drives a single robot until all parcels are delivered and reports
// how many turns it took.
func RunRobot(ctx context.Context, req RunRobotRequest) (*SimulationResult, error) {
	if req.Graph == nil {
		return nil, errors.New("run robot: graph must be non-nil")
	}
	if req.Policy == nil {
		return nil, errors.New("run robot: policy must be non-nil")
	}
	if req.MaxTurns < 0 {
		return nil, fmt.Errorf("run robot: max turns must not be negative (got %d)", req.MaxTurns)
	}

	res := &SimulationResult{Robot: req.Policy.Name(), Final: req.State}
	if req.RecordTrace {
		res.Trace = []TurnEvent{}
	}

	for ev, err := range Turns(ctx, req.Graph, req.State, req.Policy, req.Memory) {
		if err != nil {
			return nil, fmt.Errorf("run robot: %w", err)
		}

		res.Turns = ev.Turn
		res.Final = ev.State
		if req.RecordTrace {
			res.Trace = append(res.Trace, ev)
		}
		if req.OnTurn != nil {
			req.OnTurn(ev)
		}

		if req.MaxTurns > 0 && ev.Turn >= req.MaxTurns && !ev.State.Done() {
			return nil, fmt.Errorf(
				"run robot: %s: %w after %d turns with %d parcels left",
				res.Robot, ErrTurnLimit, ev.Turn, ev.State.ParcelCount(),
			)
		}
	}

	return res, nil
}
