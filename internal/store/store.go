// Package store defines the core's two inbound boundaries (spec.md §6):
// TeamRepository and GameRepository. The Postgres implementation lives in
// internal/store/postgres; this package also provides an in-memory
// implementation used by tests.
//
// Grounded on the teacher's *Queries structs (GameQueries, PlayerQueries
// in internal/db) as thin method-holders over a backing store, reshaped
// as interfaces so the core can depend on the contract rather than a
// concrete Postgres pool.
package store

import (
	"context"

	"github.com/francisco/gridiron-sim/internal/models"
)

// TeamRepository returns the stable set of teams the core simulates
// over. Implementations must return a copyable list the caller can
// mutate freely.
type TeamRepository interface {
	List(ctx context.Context) ([]models.Team, error)
}

// GameResultUpdate is the persistence payload spec.md §6 describes for
// GameRepository.save_result.
type GameResultUpdate struct {
	HomeScore   int
	AwayScore   int
	WinnerID    string
	Weather     models.Weather
	Drives      []models.DriveLog
	PlayByPlay  []models.PlayLogEntry
	TeamStats   models.GameTeamStats
	Overtime    bool
	DurationMin int
}

// GameRepository is the read/write boundary for scheduled games. Get
// returns (nil, nil) for a game_id that doesn't exist - callers that need
// a typed NotFound wrap this at the call site.
type GameRepository interface {
	Get(ctx context.Context, gameID string) (*models.ScheduledGame, error)
	SaveResult(ctx context.Context, gameID string, result GameResultUpdate) error
}
