package gameengine

import (
	"context"
	"testing"

	"github.com/francisco/gridiron-sim/internal/models"
)

func testTeams() (models.Team, models.Team) {
	home := models.Team{
		TeamID:       "home-1",
		Abbreviation: "KC",
		City:         "Kansas City",
		Name:         "Chiefs",
		Conference:   models.AFC,
		Division:     models.West,
		Stats: models.TeamStats{
			Offensive:          82,
			Defensive:          75,
			SpecialTeams:       70,
			Coaching:           80,
			HomeFieldAdvantage: 3,
		},
	}
	away := models.Team{
		TeamID:       "away-1",
		Abbreviation: "DEN",
		City:         "Denver",
		Name:         "Broncos",
		Conference:   models.AFC,
		Division:     models.West,
		Stats: models.TeamStats{
			Offensive:          68,
			Defensive:          71,
			SpecialTeams:       65,
			Coaching:           60,
			HomeFieldAdvantage: 2,
		},
	}
	return home, away
}

func seed(v uint32) Options {
	return Options{Seed: &v}
}

func TestSimulateGame_Determinism(t *testing.T) {
	home, away := testTeams()
	a := SimulateGame(context.Background(), home, away, seed(4242))
	b := SimulateGame(context.Background(), home, away, seed(4242))

	if a.HomeScore != b.HomeScore || a.AwayScore != b.AwayScore {
		t.Fatalf("score not deterministic: %d-%d vs %d-%d", a.HomeScore, a.AwayScore, b.HomeScore, b.AwayScore)
	}
	if len(a.PlayByPlay) != len(b.PlayByPlay) {
		t.Fatalf("play count not deterministic: %d vs %d", len(a.PlayByPlay), len(b.PlayByPlay))
	}
	for i := range a.PlayByPlay {
		if a.PlayByPlay[i] != b.PlayByPlay[i] {
			t.Fatalf("play %d diverged: %+v != %+v", i, a.PlayByPlay[i], b.PlayByPlay[i])
		}
	}
	if a.Weather != b.Weather {
		t.Fatalf("weather not deterministic: %+v != %+v", a.Weather, b.Weather)
	}
}

func TestSimulateGame_DifferentSeedsUsuallyDiverge(t *testing.T) {
	home, away := testTeams()
	diverged := false
	for i := uint32(1); i <= 20; i++ {
		a := SimulateGame(context.Background(), home, away, seed(i))
		b := SimulateGame(context.Background(), home, away, seed(i+1000))
		if a.HomeScore != b.HomeScore || a.AwayScore != b.AwayScore {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Fatal("expected at least one of 20 seed pairs to produce different scores")
	}
}

func TestSimulateGame_ScoreMatchesDrivePoints(t *testing.T) {
	home, away := testTeams()
	for i := uint32(1); i <= 25; i++ {
		r := SimulateGame(context.Background(), home, away, seed(i))

		homePoints, awayPoints := 0, 0
		for _, d := range r.Drives {
			switch d.OffenseAbbr {
			case home.Abbreviation:
				homePoints += d.Points
			case away.Abbreviation:
				awayPoints += d.Points
			}
		}
		if homePoints != r.HomeScore || awayPoints != r.AwayScore {
			t.Fatalf("seed %d: drive points %d-%d don't match final score %d-%d", i, homePoints, awayPoints, r.HomeScore, r.AwayScore)
		}
	}
}

func TestSimulateGame_WinnerIDInvariant(t *testing.T) {
	home, away := testTeams()
	for i := uint32(1); i <= 25; i++ {
		r := SimulateGame(context.Background(), home, away, seed(i))
		if r.HomeScore == r.AwayScore {
			if r.WinnerID != "" {
				t.Fatalf("seed %d: tied %d-%d but winner_id = %q", i, r.HomeScore, r.AwayScore, r.WinnerID)
			}
			continue
		}
		want := away.TeamID
		if r.HomeScore > r.AwayScore {
			want = home.TeamID
		}
		if r.WinnerID != want {
			t.Fatalf("seed %d: winner_id = %q, want %q", i, r.WinnerID, want)
		}
	}
}

func TestSimulateGame_DurationMatchesOvertime(t *testing.T) {
	home, away := testTeams()
	for i := uint32(1); i <= 25; i++ {
		r := SimulateGame(context.Background(), home, away, seed(i))
		want := 60
		if r.Overtime {
			want = 75
		}
		if r.DurationMin != want {
			t.Fatalf("seed %d: duration %d, overtime %v, want %d", i, r.DurationMin, r.Overtime, want)
		}
	}
}

func TestSimulateGame_PlayInvariants(t *testing.T) {
	home, away := testTeams()
	for i := uint32(1); i <= 25; i++ {
		r := SimulateGame(context.Background(), home, away, seed(i))
		for _, p := range r.PlayByPlay {
			if p.Down < 1 || p.Down > 4 {
				t.Fatalf("seed %d: down %d out of [1,4]", i, p.Down)
			}
			if p.EndField < 0 || p.EndField > 100 {
				t.Fatalf("seed %d: end_field %d out of [0,100]", i, p.EndField)
			}
			if len(p.Clock) != 5 || p.Clock[2] != ':' {
				t.Fatalf("seed %d: clock %q not MM:SS", i, p.Clock)
			}
		}
	}
}

func TestSimulateGame_NonNegativeScores(t *testing.T) {
	home, away := testTeams()
	for i := uint32(1); i <= 25; i++ {
		r := SimulateGame(context.Background(), home, away, seed(i))
		if r.HomeScore < 0 || r.AwayScore < 0 {
			t.Fatalf("seed %d: negative score %d-%d", i, r.HomeScore, r.AwayScore)
		}
	}
}

func TestSimulateGame_ExplicitWeatherOverridesGeneration(t *testing.T) {
	home, away := testTeams()
	w := models.Weather{Condition: models.HeavySnow, TemperatureF: 10, WindSpeedMPH: 20, WindDirection: models.Headwind}
	s := uint32(99)
	r := SimulateGame(context.Background(), home, away, Options{Seed: &s, Weather: &w})
	if r.Weather != w {
		t.Fatalf("explicit weather not honored: got %+v, want %+v", r.Weather, w)
	}
}
