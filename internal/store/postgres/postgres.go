// Package postgres is the core's Postgres-backed store.TeamRepository
// and store.GameRepository implementation. Kept close to the teacher's
// internal/db package for the pool lifecycle (this is domain-agnostic
// connection plumbing) and rewritten query methods scoped to the two
// tables the core actually reads and writes: teams and scheduled_games,
// instead of the teacher's games/game_stats/players.
package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var pool *pgxpool.Pool

// Config holds database connection pool configuration.
type Config struct {
	DatabaseURL string
	MaxConns    int32
	MinConns    int32
}

// Connect establishes a connection pool to PostgreSQL with the given
// configuration, validating connections before acquisition and verifying
// connectivity with an initial ping.
func Connect(ctx context.Context, cfg Config) error {
	config, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("unable to parse database URL: %w", err)
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute
	config.ConnConfig.ConnectTimeout = 10 * time.Second

	config.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		return conn.Ping(ctx) == nil
	}
	config.AfterRelease = func(conn *pgx.Conn) bool {
		return true
	}

	pool, err = pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("unable to ping database: %w", err)
	}

	log.Printf("Successfully connected to PostgreSQL (MaxConns: %d, MinConns: %d)", cfg.MaxConns, cfg.MinConns)
	return nil
}

// GetPool returns the database connection pool.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the database connection pool.
func Close() {
	if pool != nil {
		pool.Close()
		log.Println("Database connection pool closed")
	}
}

// HealthCheck verifies database connectivity.
func HealthCheck(ctx context.Context) error {
	if pool == nil {
		return fmt.Errorf("database connection pool not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// Stats returns connection pool statistics.
func Stats() *pgxpool.Stat {
	if pool == nil {
		return nil
	}
	return pool.Stat()
}

// PoolMetrics returns detailed pool metrics as a map, suitable for
// logging or exposing through a status command.
func PoolMetrics() map[string]interface{} {
	if pool == nil {
		return map[string]interface{}{"error": "pool not initialized"}
	}
	stat := pool.Stat()
	return map[string]interface{}{
		"acquired_conns":         stat.AcquiredConns(),
		"idle_conns":             stat.IdleConns(),
		"max_conns":              stat.MaxConns(),
		"total_conns":            stat.TotalConns(),
		"new_conns_count":        stat.NewConnsCount(),
		"acquire_count":          stat.AcquireCount(),
		"acquire_duration_ms":    stat.AcquireDuration().Milliseconds(),
		"empty_acquire_count":    stat.EmptyAcquireCount(),
		"canceled_acquire_count": stat.CanceledAcquireCount(),
	}
}

// LogPoolStats logs current pool statistics.
func LogPoolStats() {
	metrics := PoolMetrics()
	log.Printf("[DB-POOL] Acquired: %v, Idle: %v, Max: %v, Total: %v, Acquire Duration: %vms",
		metrics["acquired_conns"], metrics["idle_conns"], metrics["max_conns"],
		metrics["total_conns"], metrics["acquire_duration_ms"])
}

// IsHealthy reports whether the pool looks usable: not exhausted, not
// slow to acquire from, and not accumulating canceled acquisitions.
func IsHealthy() bool {
	if pool == nil {
		return false
	}
	stat := pool.Stat()
	if stat.AcquiredConns() >= stat.MaxConns() {
		log.Printf("[DB-POOL] WARNING: Pool exhaustion - %d/%d connections acquired", stat.AcquiredConns(), stat.MaxConns())
		return false
	}
	if stat.AcquireDuration().Milliseconds() > 100 {
		log.Printf("[DB-POOL] WARNING: High acquire duration - %dms", stat.AcquireDuration().Milliseconds())
		return false
	}
	if stat.CanceledAcquireCount() > 10 {
		log.Printf("[DB-POOL] WARNING: High canceled acquire count - %d", stat.CanceledAcquireCount())
		return false
	}
	return true
}
