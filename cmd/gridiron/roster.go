package main

import (
	"context"
	"fmt"

	"github.com/francisco/gridiron-sim/internal/config"
	"github.com/francisco/gridiron-sim/internal/leaguedata"
	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/store/postgres"
)

// loadTeams returns the roster a season runs over. With DATABASE_URL
// set it reads from Postgres (internal/store/postgres.TeamQueries);
// otherwise it falls back to the canonical 32-team default roster,
// since the core itself never requires a persisted team set (spec.md
// §1: "the core consumes a read interface").
func loadTeams(ctx context.Context, cfg *config.Config) ([]models.Team, error) {
	if cfg.DatabaseURL == "" {
		return leaguedata.DefaultTeams(), nil
	}

	if err := postgres.Connect(ctx, postgres.Config{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
	}); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	teams := &postgres.TeamQueries{}
	list, err := teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	if len(list) == 0 {
		return leaguedata.DefaultTeams(), nil
	}
	return list, nil
}
