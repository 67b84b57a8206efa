// Package config loads the core's runtime configuration from the
// environment, grounded on the teacher's internal/config/config.go
// godotenv-based loader. Trimmed to the handful of settings a
// simulation run actually needs: everything API-key/Yahoo/
// environment-tier related on the teacher's side belonged to its HTTP
// API surface, which this core doesn't have.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/francisco/gridiron-sim/pkg/validation"
)

// Config holds the CLI's runtime configuration. DatabaseURL and
// RedisURL are both optional: with neither set, the CLI uses
// internal/leaguedata.DefaultTeams and runs with no cache.
type Config struct {
	Seed         *uint32
	DatabaseURL  string
	RedisURL     string
	DBMaxConns   int32
	DBMinConns   int32
	DefaultTeams int
	DefaultMode  string
}

// Load reads configuration from environment variables, loading a local
// .env file first if one exists (the same convenience the teacher's
// loader offers for local development).
func Load() (*Config, error) {
	_ = godotenv.Load()

	var seed *uint32
	if raw := os.Getenv("SIM_SEED"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			s := uint32(v)
			seed = &s
		}
	}

	cfg := &Config{
		Seed:         seed,
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		RedisURL:     getEnv("REDIS_URL", ""),
		DBMaxConns:   int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:   int32(getEnvInt("DB_MIN_CONNS", 5)),
		DefaultTeams: getEnvInt("SIM_TEAM_COUNT", 32),
		DefaultMode:  getEnv("SIM_SCHEDULE_MODE", "nfl"),
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	return validation.ParseIntParam(os.Getenv(key), defaultValue)
}
