package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/francisco/gridiron-sim/internal/config"
	"github.com/francisco/gridiron-sim/internal/season"
	"github.com/francisco/gridiron-sim/internal/store/cache"
	"github.com/francisco/gridiron-sim/pkg/logging"
)

func getStandingsCmd() *cobra.Command {
	var year int
	var seed uint32
	var byDivision bool

	cmd := &cobra.Command{
		Use:   "get-standings",
		Short: "Simulate the full regular season and print standings",
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
			if err := playRegularSeason(ctx, eng, s); err != nil {
				return err
			}

			key := cache.StandingsCacheKey(year, byDivision)
			if err := cacheStandings(ctx, cfg, key, eng, byDivision); err != nil {
				logging.Warn(ctx, "cache unavailable, serving uncached: %v", err)
			}

			return printJSON(eng.GetStandings(byDivision))
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "season year")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "season seed; omit for a non-reproducible run")
	cmd.Flags().BoolVar(&byDivision, "by-division", true, "group standings by division instead of conference")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

// cacheStandings writes the standings to Redis under key. Only attempted
// when REDIS_URL is configured. get-standings never reads the key back,
// so every call re-simulates the season.
func cacheStandings(ctx context.Context, cfg *config.Config, key string, eng *season.Engine, byDivision bool) error {
	if cfg.RedisURL == "" {
		return nil
	}
	if err := cache.Connect(cache.Config{RedisURL: cfg.RedisURL}); err != nil {
		return err
	}
	defer cache.Close()

	groups := eng.GetStandings(byDivision)
	return cache.Set(ctx, key, fmt.Sprintf("%v", groups), cache.TTLStandings)
}
