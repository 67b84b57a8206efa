package exportcsv

import (
	"strings"
	"testing"

	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/season"
)

func TestWriteSchedule_OneRowPerGame(t *testing.T) {
	home := models.Team{TeamID: "kc", Abbreviation: "KC"}
	away := models.Team{TeamID: "den", Abbreviation: "DEN"}
	score := 24
	games := []models.ScheduledGame{
		{GameID: "g1", Week: 1, Home: home, Away: away, Status: models.Scheduled},
		{GameID: "g2", Week: 1, Home: away, Away: home, Status: models.Completed, HomeScore: &score},
	}

	var buf strings.Builder
	if err := WriteSchedule(&buf, games); err != nil {
		t.Fatalf("WriteSchedule: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %q", len(lines), buf.String())
	}
}

func TestWriteStandings_GroupsAllRecords(t *testing.T) {
	groups := []season.StandingsGroup{
		{Key: "AFC West", Records: []models.TeamRecord{
			{Team: models.Team{City: "Kansas City", Name: "Chiefs"}, Wins: 10, Losses: 2},
			{Team: models.Team{City: "Denver", Name: "Broncos"}, Wins: 6, Losses: 6},
		}},
	}

	var buf strings.Builder
	if err := WriteStandings(&buf, groups); err != nil {
		t.Fatalf("WriteStandings: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %q", len(lines), buf.String())
	}
}
