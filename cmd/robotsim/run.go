package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"village-delivery-sim/internal/config"
	"village-delivery-sim/internal/services"
)

func newRunCmd(cfg *config.Config) *cobra.Command {
	var robot string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one robot on a random world and print every turn.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := loadVillage(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			world, err := v.RandomWorld(cfg.Seed, cfg.ParcelCount)
			if err != nil {
				return err
			}
			policy, err := v.NewPolicy(robot, cfg.Seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			res, err := services.RunRobot(cmd.Context(), services.RunRobotRequest{
				Graph:    v.Graph,
				State:    world,
				Policy:   policy,
				MaxTurns: cfg.MaxTurns,
				OnTurn: func(ev services.TurnEvent) {
					fmt.Fprintf(out, "Moved to %s, parcels left %d\n", ev.State.Place(), ev.State.ParcelCount())
				},
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Done in %d turns\n", res.Turns)
			return nil
		},
	}

	cmd.Flags().StringVar(&robot, "robot", services.GoalOrientedRobotName, "robot to run")
	cmd.Flags().IntVar(&cfg.ParcelCount, "parcels", cfg.ParcelCount, "parcels in the random world")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the world and the random robot")
	cmd.Flags().IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "give up after this many turns (0 = no limit)")
	return cmd
}
