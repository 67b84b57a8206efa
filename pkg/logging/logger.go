// Package logging provides run-scoped structured logging for the
// simulation core. Every entry point that performs a simulation
// (SimulateGame, schedule.Generate, ProcessGameResult, AdvanceBracket, or a
// CLI invocation) carries a run ID through context.Context, the same way
// the teacher's HTTP layer carried a request ID - just without an HTTP
// request to derive it from.
package logging

import (
	"context"
	"fmt"
	"log"
)

// runIDKey is the context key this package owns for the current run ID.
type runIDKey struct{}

// RunIDKey is the context.Context key under which the current run ID is
// stored. Exported so callers (e.g. cmd/gridiron) can attach one with
// context.WithValue directly.
var RunIDKey = runIDKey{}

// WithRunID returns a context carrying runID, retrievable with GetRunID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from context, or "unknown" if none was set.
func GetRunID(ctx context.Context) string {
	if id := ctx.Value(RunIDKey); id != nil {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return "unknown"
}

// Info logs an info message with the run ID.
func Info(ctx context.Context, format string, args ...interface{}) {
	log.Printf("[INFO] [%s] %s", GetRunID(ctx), fmt.Sprintf(format, args...))
}

// Warn logs a warning message with the run ID.
func Warn(ctx context.Context, format string, args ...interface{}) {
	log.Printf("[WARN] [%s] %s", GetRunID(ctx), fmt.Sprintf(format, args...))
}

// Error logs an error message with the run ID.
func Error(ctx context.Context, format string, args ...interface{}) {
	log.Printf("[ERROR] [%s] %s", GetRunID(ctx), fmt.Sprintf(format, args...))
}

// Debug logs a debug message with the run ID.
func Debug(ctx context.Context, format string, args ...interface{}) {
	log.Printf("[DEBUG] [%s] %s", GetRunID(ctx), fmt.Sprintf(format, args...))
}

// SlowOp logs a simulation operation that took unusually long - a game with
// many drives, a full-season replay, a deep playoff advance.
func SlowOp(ctx context.Context, op string, durationMs int64) {
	log.Printf("[SLOW-OP] [%s] %s took %dms", GetRunID(ctx), op, durationMs)
}

// CacheHit logs a cache hit against a store/cache key.
func CacheHit(ctx context.Context, key string) {
	log.Printf("[CACHE-HIT] [%s] %s", GetRunID(ctx), key)
}

// CacheMiss logs a cache miss against a store/cache key.
func CacheMiss(ctx context.Context, key string) {
	log.Printf("[CACHE-MISS] [%s] %s", GetRunID(ctx), key)
}
