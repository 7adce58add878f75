package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"village-delivery-sim/internal/domain"
)

// DefaultParcelCount is the number of parcels in each benchmark world.
const DefaultParcelCount = 5

// ErrInvalidComparison is returned for a CompareRobots request that cannot run.
var ErrInvalidComparison = errors.New("invalid comparison")

type CompareRobotsRequest struct {
	Hub         string
	Trials      int
	ParcelCount int
	Seed        uint64
	// MaxTurns caps every single run; zero means no limit.
	MaxTurns int
	// Workers bounds how many robots are simulated at once; zero means one per robot.
	Workers int
}

type RobotScore struct {
	Robot        string
	TotalTurns   int
	AverageTurns float64
}

type Comparison struct {
	Trials int
	Scores []RobotScore
}

// Averages returns the mean turns keyed by robot name.
func (c *Comparison) Averages() map[string]float64 {
	out := make(map[string]float64, len(c.Scores))
	for _, s := range c.Scores {
		out[s.Robot] = s.AverageTurns
	}
	return out
}

// CompareRobots runs every robot over the same sequence of random worlds and
// reports the mean number of turns each needed.
//
// The worlds are generated up front from req.Seed, so results are reproducible
// for a given seed. Each robot then runs on its own goroutine; a policy value
// must therefore not be passed twice. The graph is shared read-only.
func CompareRobots(
	ctx context.Context,
	g *domain.Graph,
	req CompareRobotsRequest,
	policies ...Policy,
) (*Comparison, error) {
	if err := validateComparison(g, req, policies); err != nil {
		return nil, fmt.Errorf("compare robots: %w", err)
	}

	parcelCount := req.ParcelCount
	if parcelCount == 0 {
		parcelCount = DefaultParcelCount
	}

	rng := newRand(req.Seed)
	worlds := make([]domain.WorldState, 0, req.Trials)
	for range req.Trials {
		w, err := domain.RandomWorldState(g, rng, req.Hub, parcelCount)
		if err != nil {
			return nil, fmt.Errorf("compare robots: %w", err)
		}
		worlds = append(worlds, w)
	}

	scores := make([]RobotScore, len(policies))

	eg, egCtx := errgroup.WithContext(ctx)
	if req.Workers > 0 {
		eg.SetLimit(req.Workers)
	}

	for i, policy := range policies {
		eg.Go(func() error {
			total := 0
			for trial, world := range worlds {
				res, err := RunRobot(egCtx, RunRobotRequest{
					Graph:    g,
					State:    world,
					Policy:   policy,
					MaxTurns: req.MaxTurns,
				})
				if err != nil {
					return fmt.Errorf("trial %d: %w", trial+1, err)
				}
				total += res.Turns
			}

			scores[i] = RobotScore{
				Robot:        policy.Name(),
				TotalTurns:   total,
				AverageTurns: float64(total) / float64(len(worlds)),
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("compare robots: %w", err)
	}

	return &Comparison{Trials: req.Trials, Scores: scores}, nil
}

func validateComparison(g *domain.Graph, req CompareRobotsRequest, policies []Policy) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidComparison)
	}
	if req.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive (got %d)", ErrInvalidComparison, req.Trials)
	}
	if req.ParcelCount < 0 {
		return fmt.Errorf("%w: parcel count must not be negative (got %d)", ErrInvalidComparison, req.ParcelCount)
	}
	if len(policies) == 0 {
		return fmt.Errorf("%w: at least one robot is required", ErrInvalidComparison)
	}

	seen := make(map[string]struct{}, len(policies))
	for _, p := range policies {
		if p == nil {
			return fmt.Errorf("%w: robot is nil", ErrInvalidComparison)
		}
		if _, ok := seen[p.Name()]; ok {
			return fmt.Errorf("%w: robot %q listed twice", ErrInvalidComparison, p.Name())
		}
		seen[p.Name()] = struct{}{}
	}
	return nil
}
