package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/store"
)

// TeamQueries implements store.TeamRepository against the teams table.
type TeamQueries struct{}

// List returns every team, ordered the way the teacher's standings query
// always read them: conference, division, abbreviation.
func (q *TeamQueries) List(ctx context.Context) ([]models.Team, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	rows, err := pool.Query(ctx, `
		SELECT team_id, abbreviation, city, name, conference, division,
		       offensive_rating, defensive_rating, special_teams_rating,
		       coaching_rating, home_field_advantage
		FROM teams
		ORDER BY conference, division, abbreviation
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func scanTeam(row pgx.Row) (models.Team, error) {
	var t models.Team
	err := row.Scan(&t.TeamID, &t.Abbreviation, &t.City, &t.Name, &t.Conference, &t.Division,
		&t.Stats.Offensive, &t.Stats.Defensive, &t.Stats.SpecialTeams,
		&t.Stats.Coaching, &t.Stats.HomeFieldAdvantage)
	return t, err
}

func teamByID(ctx context.Context, teamID string) (models.Team, error) {
	pool := GetPool()
	row := pool.QueryRow(ctx, `
		SELECT team_id, abbreviation, city, name, conference, division,
		       offensive_rating, defensive_rating, special_teams_rating,
		       coaching_rating, home_field_advantage
		FROM teams
		WHERE team_id = $1
	`, teamID)
	t, err := scanTeam(row)
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to load team %s: %w", teamID, err)
	}
	return t, nil
}

// GameQueries implements store.GameRepository against the
// scheduled_games table.
type GameQueries struct{}

// Get returns the game, or (nil, nil) if game_id doesn't exist, per
// spec.md §6's read-only lookup contract.
func (q *GameQueries) Get(ctx context.Context, gameID string) (*models.ScheduledGame, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}

	var g models.ScheduledGame
	var homeID, awayID string
	var homeScore, awayScore, durationMin sql.NullInt32
	var overtime sql.NullBool
	err := pool.QueryRow(ctx, `
		SELECT game_id, week, status, home_score, away_score, overtime,
		       duration_min, home_team_id, away_team_id
		FROM scheduled_games
		WHERE game_id = $1
	`, gameID).Scan(&g.GameID, &g.Week, &g.Status, &homeScore, &awayScore,
		&overtime, &durationMin, &homeID, &awayID)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query game %s: %w", gameID, err)
	}
	if homeScore.Valid {
		v := int(homeScore.Int32)
		g.HomeScore = &v
	}
	if awayScore.Valid {
		v := int(awayScore.Int32)
		g.AwayScore = &v
	}
	if overtime.Valid {
		v := overtime.Bool
		g.Overtime = &v
	}
	if durationMin.Valid {
		v := int(durationMin.Int32)
		g.GameDurationMin = &v
	}

	home, err := teamByID(ctx, homeID)
	if err != nil {
		return nil, err
	}
	away, err := teamByID(ctx, awayID)
	if err != nil {
		return nil, err
	}
	g.Home = home
	g.Away = away
	return &g, nil
}

// SaveResult persists a completed game's scores and simulation detail.
// Drive logs, play-by-play, team stats, and weather are stored as JSONB
// since none of them are queried relationally - only ever read back
// whole, the same way the teacher stores denormalized blobs alongside
// relational columns elsewhere in internal/db.
func (q *GameQueries) SaveResult(ctx context.Context, gameID string, result store.GameResultUpdate) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	weatherJSON, err := json.Marshal(result.Weather)
	if err != nil {
		return fmt.Errorf("failed to marshal weather: %w", err)
	}
	drivesJSON, err := json.Marshal(result.Drives)
	if err != nil {
		return fmt.Errorf("failed to marshal drives: %w", err)
	}
	playsJSON, err := json.Marshal(result.PlayByPlay)
	if err != nil {
		return fmt.Errorf("failed to marshal play_by_play: %w", err)
	}
	statsJSON, err := json.Marshal(result.TeamStats)
	if err != nil {
		return fmt.Errorf("failed to marshal team_stats: %w", err)
	}

	_, err = pool.Exec(ctx, `
		UPDATE scheduled_games
		SET status = 'Completed',
		    home_score = $2,
		    away_score = $3,
		    winner_id = NULLIF($4, ''),
		    overtime = $5,
		    duration_min = $6,
		    weather = $7,
		    drives = $8,
		    play_by_play = $9,
		    team_stats = $10
		WHERE game_id = $1
	`, gameID, result.HomeScore, result.AwayScore, result.WinnerID, result.Overtime,
		result.DurationMin, weatherJSON, drivesJSON, playsJSON, statsJSON)
	if err != nil {
		return fmt.Errorf("failed to save result for game %s: %w", gameID, err)
	}
	return nil
}
