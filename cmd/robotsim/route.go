package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"village-delivery-sim/internal/config"
	"village-delivery-sim/internal/services"
)

func newRouteCmd(cfg *config.Config) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest route between two places.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadVillage(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			routes, err := services.FindRoutes(v.Graph, args[0], args[1])
			if err != nil {
				return err
			}
			if !all {
				routes = routes[:1]
			}

			out := cmd.OutOrStdout()
			for _, r := range routes {
				stops := append([]string{args[0]}, r...)
				fmt.Fprintf(out, "%s (%d steps)\n", strings.Join(stops, " -> "), len(r))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print every shortest route")
	return cmd
}
