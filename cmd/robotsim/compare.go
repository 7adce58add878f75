package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"village-delivery-sim/internal/config"
	"village-delivery-sim/internal/services"
)

func newCompareCmd(cfg *config.Config) *cobra.Command {
	var robots []string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare robots over the same random worlds.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := loadVillage(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			policies, err := v.Policies(cfg.Seed, robots...)
			if err != nil {
				return err
			}

			cmp, err := services.CompareRobots(cmd.Context(), v.Graph, services.CompareRobotsRequest{
				Hub:         v.Hub,
				Trials:      cfg.Trials,
				ParcelCount: cfg.ParcelCount,
				Seed:        cfg.Seed,
				MaxTurns:    cfg.MaxTurns,
				Workers:     cfg.Workers,
			}, policies...)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ROBOT\tAVERAGE TURNS\n")
			for _, s := range cmp.Scores {
				fmt.Fprintf(tw, "%s\t%.2f\n", s.Robot, s.AverageTurns)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringSliceVar(&robots, "robots", nil, "robots to compare (default: all)")
	cmd.Flags().IntVar(&cfg.Trials, "trials", cfg.Trials, "number of random worlds")
	cmd.Flags().IntVar(&cfg.ParcelCount, "parcels", cfg.ParcelCount, "parcels per world")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the worlds")
	cmd.Flags().IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "turn limit per run (0 = no limit)")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "robots simulated in parallel (0 = no limit)")
	return cmd
}
