package logging

import (
	"context"
	"testing"
)

func TestGetRunID_WithContext(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")

	if got := GetRunID(ctx); got != "run-123" {
		t.Errorf("GetRunID() = %s, want run-123", got)
	}
}

func TestGetRunID_WithoutContext(t *testing.T) {
	ctx := context.Background()

	if got := GetRunID(ctx); got != "unknown" {
		t.Errorf("GetRunID() = %s, want 'unknown'", got)
	}
}

func TestInfo(t *testing.T) {
	ctx := WithRunID(context.Background(), "info-test-123")

	// Should not panic
	Info(ctx, "Test info message: %s", "value")
}

func TestWarn(t *testing.T) {
	ctx := WithRunID(context.Background(), "warn-test-123")

	// Should not panic
	Warn(ctx, "Test warning: %d", 42)
}

func TestError(t *testing.T) {
	ctx := WithRunID(context.Background(), "error-test-123")

	// Should not panic
	Error(ctx, "Test error: %v", "error message")
}

func TestDebug(t *testing.T) {
	ctx := WithRunID(context.Background(), "debug-test-123")

	// Should not panic
	Debug(ctx, "Test debug: %s", "debug info")
}

func TestSlowOp(t *testing.T) {
	ctx := WithRunID(context.Background(), "slow-op-test-123")

	// Should not panic
	SlowOp(ctx, "simulate-season", 1500)
}

func TestCacheHit(t *testing.T) {
	ctx := WithRunID(context.Background(), "cache-test-123")

	// Should not panic
	CacheHit(ctx, "standings:2025")
}

func TestCacheMiss(t *testing.T) {
	ctx := WithRunID(context.Background(), "cache-test-456")

	// Should not panic
	CacheMiss(ctx, "bracket:2025")
}

func TestLogging_WithoutRunID(t *testing.T) {
	ctx := context.Background()

	// All logging functions should handle a missing run ID gracefully
	Info(ctx, "Test without run ID")
	Warn(ctx, "Test without run ID")
	Error(ctx, "Test without run ID")
	Debug(ctx, "Test without run ID")
	SlowOp(ctx, "simulate-game", 200)
	CacheHit(ctx, "key")
	CacheMiss(ctx, "key")
}
