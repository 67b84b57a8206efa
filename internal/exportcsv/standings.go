package exportcsv

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/francisco/gridiron-sim/internal/season"
)

// StandingsRow is one team's record, flattened for CSV export.
type StandingsRow struct {
	Group            string  `csv:"group"`
	Team             string  `csv:"team"`
	Wins             int     `csv:"wins"`
	Losses           int     `csv:"losses"`
	Ties             int     `csv:"ties"`
	WinPct           float64 `csv:"win_pct"`
	PointsFor        int     `csv:"points_for"`
	PointsAgainst    int     `csv:"points_against"`
	DivisionWins     int     `csv:"division_wins"`
	DivisionLosses   int     `csv:"division_losses"`
	ConferenceWins   int     `csv:"conference_wins"`
	ConferenceLosses int     `csv:"conference_losses"`
}

// WriteStandings marshals one or more standings groups (by division or
// by conference) out as CSV.
func WriteStandings(w io.Writer, groups []season.StandingsGroup) error {
	var rows []*StandingsRow
	for _, g := range groups {
		for _, r := range g.Records {
			rows = append(rows, &StandingsRow{
				Group:            g.Key,
				Team:             fmt.Sprintf("%s %s", r.Team.City, r.Team.Name),
				Wins:             r.Wins,
				Losses:           r.Losses,
				Ties:             r.Ties,
				WinPct:           r.WinPercentage(),
				PointsFor:        r.PointsFor,
				PointsAgainst:    r.PointsAgainst,
				DivisionWins:     r.DivisionWins,
				DivisionLosses:   r.DivisionLosses,
				ConferenceWins:   r.ConferenceWins,
				ConferenceLosses: r.ConferenceLosses,
			})
		}
	}
	return gocsv.Marshal(rows, w)
}
