package schedule

import (
	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/rng"
)

// generateRoundRobinMatchups is the non-NFL fallback: every team plays
// every other team twice, home and away once, with no structural
// division/conference shaping (spec.md §4.3, fallback mode). Odd team
// counts are not special-cased: packWeeks places what fits into the week
// grid and drops any matchup that no week can take.
func generateRoundRobinMatchups(teams []models.Team, s *rng.Source) []matchup {
	var out []matchup
	n := len(teams)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := teams[i], teams[j]
			home, away := a, b
			if s.Chance(0.5) {
				home, away = b, a
			}
			out = append(out, matchup{home: home, away: away})

			home2, away2 := away, home
			out = append(out, matchup{home: home2, away: away2})
		}
	}
	return out
}
