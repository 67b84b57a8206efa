// Package exportcsv writes a generated schedule or standings snapshot
// out as CSV, for operators who want a flat file instead of the CLI's
// JSON output. Grounded on internal/nflverse/csv_parser.go's use of
// gocarina/gocsv - the teacher used it to unmarshal NFLverse releases
// into Go structs; here the same struct-tag machinery runs in the
// opposite direction, marshaling our own structs out to CSV.
package exportcsv

import (
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/francisco/gridiron-sim/internal/models"
)

// ScheduleRow is one game of a generated schedule, flattened into the
// columns a spreadsheet-minded operator expects.
type ScheduleRow struct {
	Week      int    `csv:"week"`
	GameID    string `csv:"game_id"`
	AwayTeam  string `csv:"away_team"`
	HomeTeam  string `csv:"home_team"`
	Status    string `csv:"status"`
	AwayScore string `csv:"away_score"`
	HomeScore string `csv:"home_score"`
}

// WriteSchedule marshals a season's games out as CSV, one row per game,
// ordered however the caller passed them in (callers typically flatten
// week-by-week in ascending week order).
func WriteSchedule(w io.Writer, games []models.ScheduledGame) error {
	rows := make([]*ScheduleRow, 0, len(games))
	for _, g := range games {
		rows = append(rows, &ScheduleRow{
			Week:      g.Week,
			GameID:    g.GameID,
			AwayTeam:  g.Away.Abbreviation,
			HomeTeam:  g.Home.Abbreviation,
			Status:    string(g.Status),
			AwayScore: scoreString(g.AwayScore),
			HomeScore: scoreString(g.HomeScore),
		})
	}
	return gocsv.Marshal(rows, w)
}

func scoreString(score *int) string {
	if score == nil {
		return ""
	}
	return strconv.Itoa(*score)
}
