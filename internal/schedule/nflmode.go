package schedule

import (
	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/rng"
)

// divisionKey groups a conference and division together for map lookups.
type divisionKey struct {
	conference models.Conference
	division   models.Division
}

// groupByDivision buckets teams into their 8 conference/division cells.
func groupByDivision(teams []models.Team) map[divisionKey][]models.Team {
	groups := map[divisionKey][]models.Team{}
	for _, t := range teams {
		k := divisionKey{t.Conference, t.Division}
		groups[k] = append(groups[k], t)
	}
	return groups
}

// generateNFLMatchups builds the 32-team slate: intradivision double
// round-robin (6/team), intraconference cross-division (4/team),
// interconference (4/team), then random intraconference fillers up to
// nflGamesPerTeam (spec.md §4.3 steps 1-4).
func generateNFLMatchups(teams []models.Team, s *rng.Source) []matchup {
	groups := groupByDivision(teams)
	counts := make(map[string]int, len(teams))
	for _, t := range teams {
		counts[t.TeamID] = 0
	}

	var matchups []matchup
	matchups = append(matchups, intradivisionMatchups(groups, counts)...)
	matchups = append(matchups, crossDivisionMatchups(groups, counts, s)...)
	matchups = append(matchups, interconferenceMatchups(groups, counts, s)...)
	matchups = append(matchups, fillerMatchups(teams, counts, s)...)
	return matchups
}

// intradivisionMatchups has every team in a 4-team division play every
// other member home and away: 3 opponents x 2 = 6 games/team. Divisions
// are visited sorted by conference, then division, so the output order
// does not depend on map iteration.
func intradivisionMatchups(groups map[divisionKey][]models.Team, counts map[string]int) []matchup {
	var out []matchup
	keys := make([]divisionKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && (keys[j].conference < keys[j-1].conference ||
			keys[j].conference == keys[j-1].conference && keys[j].division < keys[j-1].division); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	for _, k := range keys {
		div := groups[k]
		for i := 0; i < len(div); i++ {
			for j := i + 1; j < len(div); j++ {
				a, b := div[i], div[j]
				out = append(out, matchup{home: a, away: b}, matchup{home: b, away: a})
				counts[a.TeamID] += 2
				counts[b.TeamID] += 2
			}
		}
	}
	return out
}

// conferenceDivisions returns the 4 division groups belonging to conf, in
// a stable order (map iteration order is randomized by Go itself, so the
// caller's rng.Source - not map order - drives any randomization here).
func conferenceDivisions(groups map[divisionKey][]models.Team, conf models.Conference) []divisionKey {
	var keys []divisionKey
	for k := range groups {
		if k.conference == conf {
			keys = append(keys, k)
		}
	}
	// Stable order independent of map iteration: sort by division name.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j].division < keys[j-1].division; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

// crossDivisionMatchups pairs each conference's 4 divisions into 2 pairs
// and has every team in one division play every team in the paired
// division once: 4 games/team. Home/away is randomized per pair.
func crossDivisionMatchups(groups map[divisionKey][]models.Team, counts map[string]int, s *rng.Source) []matchup {
	var out []matchup
	for _, conf := range []models.Conference{models.AFC, models.NFC} {
		divs := conferenceDivisions(groups, conf)
		if len(divs) != 4 {
			continue
		}
		pairs := [][2]int{{0, 1}, {2, 3}}
		if s.Chance(0.5) {
			pairs = [][2]int{{0, 2}, {1, 3}}
		}
		for _, p := range pairs {
			out = append(out, allVsAll(groups[divs[p[0]]], groups[divs[p[1]]], counts, s)...)
		}
	}
	return out
}

// interconferenceMatchups rotates each of the 4 AFC divisions against one
// NFC division (a one-to-one pairing), playing all 16 games of each pair:
// 4 games/team.
func interconferenceMatchups(groups map[divisionKey][]models.Team, counts map[string]int, s *rng.Source) []matchup {
	afc := conferenceDivisions(groups, models.AFC)
	nfc := conferenceDivisions(groups, models.NFC)
	if len(afc) != 4 || len(nfc) != 4 {
		return nil
	}

	nfcOrder := []int{0, 1, 2, 3}
	for i := len(nfcOrder) - 1; i > 0; i-- {
		j := s.IntRange(0, i)
		nfcOrder[i], nfcOrder[j] = nfcOrder[j], nfcOrder[i]
	}

	var out []matchup
	for i, a := range afc {
		n := nfc[nfcOrder[i]]
		out = append(out, allVsAll(groups[a], groups[n], counts, s)...)
	}
	return out
}

// allVsAll has every team in group a play every team in group b exactly
// once, with home/away randomized per matchup.
func allVsAll(a, b []models.Team, counts map[string]int, s *rng.Source) []matchup {
	var out []matchup
	for _, ta := range a {
		for _, tb := range b {
			home, away := ta, tb
			if s.Chance(0.5) {
				home, away = tb, ta
			}
			out = append(out, matchup{home: home, away: away})
			counts[ta.TeamID]++
			counts[tb.TeamID]++
		}
	}
	return out
}

// fillerMatchups fills every team up to nflGamesPerTeam with random
// intraconference opponents, bounded by a hard attempt cap so an unlucky
// sequence of draws can never loop forever (spec.md §4.3 step 4, §9 Open
// Question 2).
func fillerMatchups(teams []models.Team, counts map[string]int, s *rng.Source) []matchup {
	const maxAttempts = 5000

	byConference := map[models.Conference][]models.Team{}
	for _, t := range teams {
		byConference[t.Conference] = append(byConference[t.Conference], t)
	}

	var out []matchup
	for attempt := 0; attempt < maxAttempts; attempt++ {
		needsMore := false
		for _, t := range teams {
			if counts[t.TeamID] < nflGamesPerTeam {
				needsMore = true
				break
			}
		}
		if !needsMore {
			break
		}

		conf := models.AFC
		if s.Chance(0.5) {
			conf = models.NFC
		}
		pool := byConference[conf]
		if len(pool) < 2 {
			continue
		}

		a := rng.Pick(s, pool)
		if counts[a.TeamID] >= nflGamesPerTeam {
			continue
		}
		b := rng.Pick(s, pool)
		if b.TeamID == a.TeamID || counts[b.TeamID] >= nflGamesPerTeam {
			continue
		}

		home, away := a, b
		if s.Chance(0.5) {
			home, away = b, a
		}
		out = append(out, matchup{home: home, away: away})
		counts[a.TeamID]++
		counts[b.TeamID]++
	}
	return out
}
