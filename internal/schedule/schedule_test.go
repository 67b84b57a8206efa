package schedule

import (
	"context"
	"fmt"
	"testing"

	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/rng"
)

// nflTeams builds the canonical 32-team, 8-division league used across the
// schedule tests.
func nflTeams() []models.Team {
	confs := []models.Conference{models.AFC, models.NFC}
	divs := []models.Division{models.North, models.South, models.East, models.West}

	var teams []models.Team
	for _, conf := range confs {
		for _, div := range divs {
			for i := 0; i < 4; i++ {
				id := fmt.Sprintf("%s-%s-%d", conf, div, i)
				teams = append(teams, models.Team{
					TeamID:       id,
					Abbreviation: id,
					City:         "City",
					Name:         "Team",
					Conference:   conf,
					Division:     div,
					Stats: models.TeamStats{
						Offensive: 70, Defensive: 70, SpecialTeams: 70, Coaching: 3, HomeFieldAdvantage: 2,
					},
				})
			}
		}
	}
	return teams
}

func TestGenerate_NoTeamPlaysTwiceInAWeek(t *testing.T) {
	seed := uint32(7)
	sched := Generate(context.Background(), nflTeams(), &seed)

	for week, games := range sched.Weeks {
		seen := map[string]bool{}
		for _, g := range games {
			if seen[g.Home.TeamID] {
				t.Fatalf("week %d: team %s scheduled twice", week, g.Home.TeamID)
			}
			if seen[g.Away.TeamID] {
				t.Fatalf("week %d: team %s scheduled twice", week, g.Away.TeamID)
			}
			seen[g.Home.TeamID] = true
			seen[g.Away.TeamID] = true
		}
	}
}

// TestGenerate_NFLMode_GamesPerTeamNearFull checks every team reaches a
// full 17-game slate, or close to it: with 17 games packed into an
// 18-week grid a handful of filler matchups can be left unplaceable by
// the greedy packer (spec.md §9 Open Question 2 accepts this rather than
// retrying indefinitely), so this asserts "close to full" rather than an
// exact count.
func TestGenerate_NFLMode_GamesPerTeamNearFull(t *testing.T) {
	seed := uint32(7)
	sched := Generate(context.Background(), nflTeams(), &seed)

	const minAcceptable = nflGamesPerTeam - 3
	for _, t2 := range nflTeams() {
		got := sched.TeamGameCounts[t2.TeamID]
		if got > nflGamesPerTeam {
			t.Errorf("team %s: got %d games, want at most %d", t2.TeamID, got, nflGamesPerTeam)
		}
		if got < minAcceptable {
			t.Errorf("team %s: got %d games, want at least %d", t2.TeamID, got, minAcceptable)
		}
	}
}

func TestGenerate_NFLMode_TotalWeeks(t *testing.T) {
	seed := uint32(7)
	sched := Generate(context.Background(), nflTeams(), &seed)

	if len(sched.Weeks) > TotalWeeks {
		t.Fatalf("got %d weeks, want at most %d", len(sched.Weeks), TotalWeeks)
	}
	for w := range sched.Weeks {
		if w < 1 || w > TotalWeeks {
			t.Errorf("unexpected week number %d", w)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	seed := uint32(42)
	a := Generate(context.Background(), nflTeams(), &seed)
	b := Generate(context.Background(), nflTeams(), &seed)

	if len(a.Weeks) != len(b.Weeks) {
		t.Fatalf("week counts differ: %d vs %d", len(a.Weeks), len(b.Weeks))
	}
	for week, gamesA := range a.Weeks {
		gamesB := b.Weeks[week]
		if len(gamesA) != len(gamesB) {
			t.Fatalf("week %d: game counts differ: %d vs %d", week, len(gamesA), len(gamesB))
		}
		for i := range gamesA {
			if gamesA[i].Home.TeamID != gamesB[i].Home.TeamID || gamesA[i].Away.TeamID != gamesB[i].Away.TeamID {
				t.Fatalf("week %d game %d: matchup differs between identical seeds", week, i)
			}
		}
	}
}

func TestGenerate_FallbackMode_EvenTeamCount(t *testing.T) {
	teams := []models.Team{
		{TeamID: "a", Conference: models.AFC, Division: models.North},
		{TeamID: "b", Conference: models.AFC, Division: models.North},
		{TeamID: "c", Conference: models.NFC, Division: models.South},
		{TeamID: "d", Conference: models.NFC, Division: models.South},
	}
	seed := uint32(3)
	sched := Generate(context.Background(), teams, &seed)

	for _, tm := range teams {
		want := 2 * (len(teams) - 1)
		if got := sched.TeamGameCounts[tm.TeamID]; got != want {
			t.Errorf("team %s: got %d games, want %d", tm.TeamID, got, want)
		}
	}
}

func TestAssignByeWeeks_OneByePerTeamWithinWindow(t *testing.T) {
	s := rng.NewFromSeed(11)
	byes := assignByeWeeks(nflTeams(), s)

	if len(byes) != 32 {
		t.Fatalf("got %d bye assignments, want 32", len(byes))
	}
	for team, week := range byes {
		if week < ByeWeekMin || week > ByeWeekMax {
			t.Errorf("team %s: bye week %d out of [%d,%d]", team, week, ByeWeekMin, ByeWeekMax)
		}
	}
}
