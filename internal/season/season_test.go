package season

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/simerrors"
)

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

func TestNew_InitializesEmptyRecords(t *testing.T) {
	seed := uint32(1)
	e := New(context.Background(), nflTeams(), 2024, &seed)

	if e.CurrentPhase != RegularSeason {
		t.Fatalf("CurrentPhase = %v, want RegularSeason", e.CurrentPhase)
	}
	if e.CurrentWeek != 1 {
		t.Fatalf("CurrentWeek = %d, want 1", e.CurrentWeek)
	}
	groups := e.GetStandings(false)
	count := 0
	for _, g := range groups {
		count += len(g.Records)
	}
	if count != len(nflTeams()) {
		t.Fatalf("got %d standings rows, want %d", count, len(nflTeams()))
	}
}

func TestGetWeekGames_OutOfRange(t *testing.T) {
	seed := uint32(1)
	e := New(context.Background(), nflTeams(), 2024, &seed)

	if _, err := e.GetWeekGames(0); !errors.Is(err, simerrors.ErrInvalidArgument) {
		t.Fatalf("week 0: got %v, want InvalidArgument", err)
	}
	if _, err := e.GetWeekGames(23); !errors.Is(err, simerrors.ErrInvalidArgument) {
		t.Fatalf("week 23: got %v, want InvalidArgument", err)
	}
}

func TestProcessGameResult_UpdatesBothSides(t *testing.T) {
	seed := uint32(1)
	e := New(context.Background(), nflTeams(), 2024, &seed)

	games, err := e.GetWeekGames(1)
	if err != nil || len(games) == 0 {
		t.Fatalf("GetWeekGames(1) = %v, %v", games, err)
	}
	g := games[0]

	before := map[string]int{g.Home.TeamID: 0, g.Away.TeamID: 0}
	for id, rec := range recordsByID(e) {
		if _, ok := before[id]; ok {
			before[id] = rec.GamesPlayed()
		}
	}

	if err := e.ProcessGameResult(context.Background(), g.GameID, 24, 17, nil, nil); err != nil {
		t.Fatalf("ProcessGameResult: %v", err)
	}

	after := recordsByID(e)
	for id, prevGP := range before {
		if got := after[id].GamesPlayed(); got != prevGP+1 {
			t.Errorf("team %s: games played = %d, want %d", id, got, prevGP+1)
		}
	}
	if after[g.Home.TeamID].Wins != 1 || after[g.Away.TeamID].Losses != 1 {
		t.Errorf("expected home win recorded: home=%+v away=%+v", after[g.Home.TeamID], after[g.Away.TeamID])
	}
}

func TestProcessGameResult_AlreadyCompletedIsConflict(t *testing.T) {
	seed := uint32(1)
	e := New(context.Background(), nflTeams(), 2024, &seed)
	games, _ := e.GetWeekGames(1)
	g := games[0]

	if err := e.ProcessGameResult(context.Background(), g.GameID, 10, 3, nil, nil); err != nil {
		t.Fatalf("first ProcessGameResult: %v", err)
	}
	err := e.ProcessGameResult(context.Background(), g.GameID, 10, 3, nil, nil)
	if !errors.Is(err, simerrors.ErrConflict) {
		t.Fatalf("second ProcessGameResult: got %v, want Conflict", err)
	}
}

func TestProcessGameResult_UnknownGameIsNotFound(t *testing.T) {
	seed := uint32(1)
	e := New(context.Background(), nflTeams(), 2024, &seed)
	err := e.ProcessGameResult(context.Background(), "does-not-exist", 10, 3, nil, nil)
	if !errors.Is(err, simerrors.ErrNotFound) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestRecalculateRecords_Idempotent(t *testing.T) {
	seed := uint32(1)
	e := New(context.Background(), nflTeams(), 2024, &seed)
	games, _ := e.GetWeekGames(1)
	for _, g := range games {
		_ = e.ProcessGameResult(context.Background(), g.GameID, 20, 10, nil, nil)
	}

	first := recordsByID(e)
	e.RecalculateRecords()
	second := recordsByID(e)

	for id, rec := range first {
		if second[id] != rec {
			t.Fatalf("team %s: record changed on idempotent recalculation: %+v vs %+v", id, rec, second[id])
		}
	}
}

func recordsByID(e *Engine) map[string]models.TeamRecord {
	out := map[string]models.TeamRecord{}
	for _, g := range e.GetStandings(false) {
		for _, r := range g.Records {
			out[r.Team.TeamID] = r
		}
	}
	return out
}
