package models

// PlayType is a closed variant of the three kinds of offensive plays the
// engine can select.
type PlayType string

const (
	PlayRun       PlayType = "Run"
	PlayPass      PlayType = "Pass"
	PlayTurnover  PlayType = "Turnover"
	PlaySpecial   PlayType = "Special"
)

// PlayLogEntry is one row of a drive's play-by-play.
type PlayLogEntry struct {
	Quarter     int      `json:"quarter"`
	Down        int      `json:"down"`
	YardsToGo   int      `json:"yards_to_go"`
	StartField  int      `json:"start_field"`
	EndField    int      `json:"end_field"`
	PlayType    PlayType `json:"play_type"`
	YardsGained int      `json:"yards_gained"`
	Clock       string   `json:"clock"`
}

// DriveResult is the closed set of ways a drive can end.
type DriveResult string

const (
	Touchdown       DriveResult = "Touchdown"
	FieldGoal       DriveResult = "FieldGoal"
	Turnover        DriveResult = "Turnover"
	TurnoverOnDowns DriveResult = "TurnoverOnDowns"
	Punt            DriveResult = "Punt"
	MissedFG        DriveResult = "MissedFG"
	EndOfQuarter    DriveResult = "EndOfQuarter"
)

// Points returns the points a drive ending in r scores: 7 for a
// Touchdown, 3 for a FieldGoal, 0 otherwise. simulateDrive sets
// DriveLog.Points from it.
func (r DriveResult) Points() int {
	switch r {
	case Touchdown:
		return 7
	case FieldGoal:
		return 3
	default:
		return 0
	}
}

// DriveLog records one complete drive.
type DriveLog struct {
	Quarter              int            `json:"quarter"`
	DriveNumber          int            `json:"drive_number"`
	OffenseAbbr          string         `json:"offense_abbr"`
	DefenseAbbr          string         `json:"defense_abbr"`
	StartField           int            `json:"start_field"`
	Result               DriveResult    `json:"result"`
	Points               int            `json:"points"`
	TimeElapsedSec        int            `json:"time_elapsed"`
	Plays                int            `json:"plays"`
	PlayLog              []PlayLogEntry `json:"play_log"`
	FinalPlayDescription string         `json:"final_play_description,omitempty"`
}
