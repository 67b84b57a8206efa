package schedule

import (
	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/rng"
)

// byeWindowWeeks is the number of weeks available for bye placement.
const byeWindowWeeks = ByeWeekMax - ByeWeekMin + 1

// assignByeWeeks gives every team exactly one bye week in
// [ByeWeekMin, ByeWeekMax] (spec.md §4.3). Teams are shuffled before the
// cyclic assignment so which teams land on which bye week is seed-driven,
// not index order.
func assignByeWeeks(teams []models.Team, s *rng.Source) map[string]int {
	shuffled := make([]models.Team, len(teams))
	copy(shuffled, teams)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.IntRange(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	byes := make(map[string]int, len(teams))
	for i, t := range shuffled {
		byes[t.TeamID] = ByeWeekMin + (i % byeWindowWeeks)
	}
	return byes
}
