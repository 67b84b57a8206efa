package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/francisco/gridiron-sim/internal/config"
	"github.com/francisco/gridiron-sim/internal/gameengine"
	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/season"
)

func findTeam(teams []models.Team, id string) (models.Team, error) {
	for _, t := range teams {
		if t.TeamID == id {
			return t, nil
		}
	}
	return models.Team{}, fmt.Errorf("unknown team_id %q", id)
}

func simulateGameCmd() *cobra.Command {
	var home, away string
	var seed uint32
	var hasSeed bool

	cmd := &cobra.Command{
		Use:   "simulate-game",
		Short: "Simulate one game between two teams",
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
			homeTeam, err := findTeam(teams, home)
			if err != nil {
				return err
			}
			awayTeam, err := findTeam(teams, away)
			if err != nil {
				return err
			}

			var s *uint32
			if hasSeed {
				s = &seed
			} else {
				s = cfg.Seed
			}

			result := gameengine.SimulateGame(ctx, homeTeam, awayTeam, gameengine.Options{Seed: s})
			return printJSON(result)
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "home team_id")
	cmd.Flags().StringVar(&away, "away", "", "away team_id")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "RNG seed; omit for a non-reproducible run")
	cmd.PreRun = func(cmd *cobra.Command, args []string) { hasSeed = cmd.Flags().Changed("seed") }
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")
	return cmd
}

func simulateWeekCmd() *cobra.Command {
	var year, week int
	var seed uint32
	var hasSeed bool

	cmd := &cobra.Command{
		Use:   "simulate-week",
		Short: "Simulate every remaining game through the given week",
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

			s := resolveSeed(hasSeed, seed, cfg)
			eng := season.New(ctx, teams, year, s)
			if err := playThroughWeek(ctx, eng, s, week); err != nil {
				return err
			}

			games, err := eng.GetWeekGames(week)
			if err != nil {
				return err
			}
			return printJSON(games)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "season year")
	cmd.Flags().IntVar(&week, "week", 1, "week to simulate through")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "season seed; omit for a non-reproducible run")
	cmd.PreRun = func(cmd *cobra.Command, args []string) { hasSeed = cmd.Flags().Changed("seed") }
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func simulateSeasonCmd() *cobra.Command {
	var year int
	var seed uint32
	var hasSeed bool

	cmd := &cobra.Command{
		Use:   "simulate-season",
		Short: "Simulate a full regular season and print final standings",
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

			s := resolveSeed(hasSeed, seed, cfg)
			eng := season.New(ctx, teams, year, s)
			if err := playRegularSeason(ctx, eng, s); err != nil {
				return err
			}
			return printJSON(eng.GetStandings(true))
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "season year")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "season seed; omit for a non-reproducible run")
	cmd.PreRun = func(cmd *cobra.Command, args []string) { hasSeed = cmd.Flags().Changed("seed") }
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

// trialResult is one simulate-trials run's margin, used only to
// aggregate home_minus_away across the fleet.
type trialResult struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

func simulateTrialsCmd() *cobra.Command {
	var home, away string
	var trials int
	var baseSeed uint32

	cmd := &cobra.Command{
		Use:   "simulate-trials",
		Short: "Run N independent simulate-game trials and report the mean home-field margin",
		Long: "Operationalizes the home-field statistical scenario: simulates N independent " +
			"games between the same two teams under N distinct seeds, concurrently, and reports " +
			"the mean (home_score - away_score) across all trials.",
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx := runContext(cmd)
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			teams, err := loadTeams(runCtx, cfg)
			if err != nil {
				return err
			}
			homeTeam, err := findTeam(teams, home)
			if err != nil {
				return err
			}
			awayTeam, err := findTeam(teams, away)
			if err != nil {
				return err
			}

			results := make([]trialResult, trials)
			g, ctx := errgroup.WithContext(runCtx)
			for i := 0; i < trials; i++ {
				i := i
				g.Go(func() error {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
					trialSeed := baseSeed + uint32(i)
					result := gameengine.SimulateGame(ctx, homeTeam, awayTeam, gameengine.Options{Seed: &trialSeed})
					results[i] = trialResult{HomeScore: result.HomeScore, AwayScore: result.AwayScore}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			var sumMargin float64
			for _, r := range results {
				sumMargin += float64(r.HomeScore - r.AwayScore)
			}
			mean := sumMargin / float64(trials)

			return printJSON(map[string]interface{}{
				"trials":           trials,
				"mean_home_margin": mean,
				"home_team":        homeTeam.Abbreviation,
				"away_team":        awayTeam.Abbreviation,
			})
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "home team_id")
	cmd.Flags().StringVar(&away, "away", "", "away team_id")
	cmd.Flags().IntVar(&trials, "trials", 1000, "number of independent trials")
	cmd.Flags().Uint32Var(&baseSeed, "seed", 1, "base seed; trial i uses seed+i")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")
	return cmd
}

func resolveSeed(hasFlag bool, flagVal uint32, cfg *config.Config) *uint32 {
	if hasFlag {
		return &flagVal
	}
	return cfg.Seed
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
