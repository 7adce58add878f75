package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"village-delivery-sim/internal/adapters/villagesource"
	"village-delivery-sim/internal/config"
	"village-delivery-sim/internal/services"
)

// newRootCmd builds the robotsim command tree. Flag defaults come from cfg.
func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "robotsim",
		Short: "Simulate parcel delivery robots in a small village.",
		Long: `robotsim runs delivery robots over the village road map. ` +
			`It can run one robot turn by turn, compare robots over many ` +
			`random worlds, or look up the shortest routes between places.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfg.MapPath, "map", cfg.MapPath, "YAML village map (default: built-in map)")
	root.PersistentFlags().StringVar(&cfg.Hub, "hub", cfg.Hub, "robot start place (default: the map's hub)")

	root.AddCommand(
		newRunCmd(&cfg),
		newCompareCmd(&cfg),
		newRouteCmd(&cfg),
	)
	return root
}

// loadVillage opens the configured road source and builds the village.
func loadVillage(ctx context.Context, cfg *config.Config) (*services.Village, error) {
	src, err := villagesource.Open(ctx, *cfg)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	v, err := src.LoadVillage(ctx, cfg.Hub)
	if err != nil {
		return nil, fmt.Errorf("robotsim: %w", err)
	}
	return v, nil
}
