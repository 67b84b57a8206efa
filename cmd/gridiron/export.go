package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/francisco/gridiron-sim/internal/config"
	"github.com/francisco/gridiron-sim/internal/exportcsv"
	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/season"
	"github.com/francisco/gridiron-sim/pkg/validation"
)

func exportCmd() *cobra.Command {
	var year int
	var seed uint32
	var what string
	var byDivision bool
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Simulate a season and write its schedule or standings to stdout as CSV",
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

			switch what {
			case "schedule":
				games, err := allGames(eng)
				if err != nil {
					return err
				}
				games = windowGames(games, limit, offset)
				return exportcsv.WriteSchedule(os.Stdout, games)
			case "standings":
				return exportcsv.WriteStandings(os.Stdout, eng.GetStandings(byDivision))
			default:
				return fmt.Errorf("unknown --what %q, want schedule or standings", what)
			}
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "season year")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "season seed; omit for a non-reproducible run")
	cmd.Flags().StringVar(&what, "what", "standings", "schedule or standings")
	cmd.Flags().BoolVar(&byDivision, "by-division", true, "group standings by division instead of conference")
	cmd.Flags().IntVar(&limit, "limit", 0, "max schedule rows to write (0 means no limit, capped at 100)")
	cmd.Flags().IntVar(&offset, "offset", 0, "schedule rows to skip before writing")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

// allGames flattens every week's games in week order, for a full-season
// CSV export.
func allGames(eng *season.Engine) ([]models.ScheduledGame, error) {
	var out []models.ScheduledGame
	for w := 1; w <= eng.TotalWeeks; w++ {
		games, err := eng.GetWeekGames(w)
		if err != nil {
			return nil, err
		}
		out = append(out, games...)
	}
	return out, nil
}

// windowGames applies --offset/--limit to a flattened schedule, the same
// bounding a paginated store.List would apply to a result page. limit 0
// (unset) writes everything from offset onward.
func windowGames(games []models.ScheduledGame, limit, offset int) []models.ScheduledGame {
	offset = validation.ValidateOffset(offset)
	if offset >= len(games) {
		return nil
	}
	games = games[offset:]
	if limit == 0 {
		return games
	}
	limit = validation.ValidateLimit(limit)
	if limit > len(games) {
		limit = len(games)
	}
	return games[:limit]
}
