package main

import (
	"github.com/spf13/cobra"

	"github.com/francisco/gridiron-sim/internal/config"
	"github.com/francisco/gridiron-sim/internal/season"
)

func getBracketCmd() *cobra.Command {
	var year int
	var seed uint32
	var full bool

	cmd := &cobra.Command{
		Use:   "get-bracket",
		Short: "Simulate the regular season and print the playoff bracket or picture",
		Long: "With --full, simulates through the end of the regular season and prints the " +
			"materialized playoff bracket. Without it, prints the projected playoff picture " +
			"part-way through the regular season (simulating only through --week).",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runContext(cmd)
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			teams, err := loadTeams(ctx, cfg)
			if err != nil {
				return err
			}

			s := resolveSeed(cmd.Flags().Changed("seed"), seed, cfg)
			eng := season.New(ctx, teams, year, s)

			if full {
				if err := playRegularSeason(ctx, eng, s); err != nil {
					return err
				}
				bracket, err := eng.GetPlayoffBracket()
				if err != nil {
					return err
				}
				return printJSON(bracket)
			}

			week, _ := cmd.Flags().GetInt("week")
			if week > 0 {
				if err := playThroughWeek(ctx, eng, s, week); err != nil {
					return err
				}
			}
			return printJSON(eng.GetPlayoffPicture())
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "season year")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "season seed; omit for a non-reproducible run")
	cmd.Flags().BoolVar(&full, "full", false, "simulate the full regular season and print the materialized bracket")
	cmd.Flags().Int("week", 0, "simulate through this week before printing the projected picture")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}
