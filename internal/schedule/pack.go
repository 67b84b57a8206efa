package schedule

import "github.com/francisco/gridiron-sim/internal/rng"

// packWeeks places each matchup into the earliest week where neither team
// is already booked, preferring a week that also respects both teams'
// bye weeks. When no bye-respecting week has room, the bye constraint is
// relaxed for that matchup rather than dropping it outright - the "never
// twice in a week" rule is the only one enforced without exception
// (spec.md §4.3, §9 Open Question 2).
func packWeeks(matchups []matchup, byeWeeks map[string]int, weeksNeeded int, s *rng.Source) (map[int][]matchup, map[string]int) {
	shuffled := make([]matchup, len(matchups))
	copy(shuffled, matchups)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.IntRange(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	booked := make(map[int]map[string]bool, weeksNeeded)
	for w := 1; w <= weeksNeeded; w++ {
		booked[w] = map[string]bool{}
	}

	weeks := map[int][]matchup{}
	counts := map[string]int{}

	place := func(m matchup, week int) {
		weeks[week] = append(weeks[week], m)
		booked[week][m.home.TeamID] = true
		booked[week][m.away.TeamID] = true
		counts[m.home.TeamID]++
		counts[m.away.TeamID]++
	}

	for _, m := range shuffled {
		placed := false

		for w := 1; w <= weeksNeeded; w++ {
			if booked[w][m.home.TeamID] || booked[w][m.away.TeamID] {
				continue
			}
			if byeWeeks[m.home.TeamID] == w || byeWeeks[m.away.TeamID] == w {
				continue
			}
			place(m, w)
			placed = true
			break
		}
		if placed {
			continue
		}

		for w := 1; w <= weeksNeeded; w++ {
			if booked[w][m.home.TeamID] || booked[w][m.away.TeamID] {
				continue
			}
			place(m, w)
			placed = true
			break
		}
		// A matchup that fits no week at all (every week double-books one
		// of its teams) is dropped. TeamGameCounts surfaces the shortfall
		// instead of the caller silently assuming a full slate.
	}

	for w := 1; w <= weeksNeeded; w++ {
		games := weeks[w]
		for i := len(games) - 1; i > 0; i-- {
			j := s.IntRange(0, i)
			games[i], games[j] = games[j], games[i]
		}
		weeks[w] = games
	}

	return weeks, counts
}
