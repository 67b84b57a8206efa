package models

// GameStatus is the closed set of states a ScheduledGame moves through.
// It is write-once-then-complete: Scheduled -> InProgress -> Completed, or
// Scheduled -> Postponed.
type GameStatus string

const (
	Scheduled  GameStatus = "Scheduled"
	InProgress GameStatus = "InProgress"
	Completed  GameStatus = "Completed"
	Postponed  GameStatus = "Postponed"
)

// ScheduledGame is one entry of a season schedule. Its GameID is stable
// and globally unique; its fields are write-once-then-complete (§5 mutation
// discipline of spec.md).
type ScheduledGame struct {
	GameID          string     `json:"game_id"`
	Home            Team       `json:"home"`
	Away            Team       `json:"away"`
	Week            int        `json:"week"`
	Status          GameStatus `json:"status"`
	HomeScore       *int       `json:"home_score,omitempty"`
	AwayScore       *int       `json:"away_score,omitempty"`
	Overtime        *bool      `json:"overtime,omitempty"`
	GameDurationMin *int       `json:"game_duration,omitempty"`
}

// GameFilters narrows a ScheduledGame lookup. No store implementation in
// this module accepts one.
type GameFilters struct {
	Week   int
	TeamID string
	Status GameStatus
}

// GameTeamStats holds the home and away TeamSimulationStats for a GameResult.
type GameTeamStats struct {
	Home TeamSimulationStats `json:"home"`
	Away TeamSimulationStats `json:"away"`
}

// GameResult is the fully populated output of one simulated game. It is a
// pure value: the Game Engine never retains a reference to it.
type GameResult struct {
	Home        Team           `json:"home"`
	Away        Team           `json:"away"`
	HomeScore   int            `json:"home_score"`
	AwayScore   int            `json:"away_score"`
	DurationMin int            `json:"duration"`
	Overtime    bool           `json:"overtime"`
	WinnerID    string         `json:"winner_id,omitempty"`
	Weather     Weather        `json:"weather"`
	Summary     string         `json:"summary"`
	PlayByPlay  []PlayLogEntry `json:"play_by_play"`
	Drives      []DriveLog     `json:"drives"`
	TeamStats   GameTeamStats  `json:"team_stats"`
}
