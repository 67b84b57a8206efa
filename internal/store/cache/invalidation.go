package cache

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// InvalidationManager handles cache invalidation around season state
// changes. Grounded on the teacher's InvalidationManager shape
// (internal/cache/invalidation.go), rescoped from player/team/game
// sync events to the three things the core caches: standings,
// schedule weeks, and the playoff bracket.
type InvalidationManager struct{}

// NewInvalidationManager creates a new invalidation manager.
func NewInvalidationManager() *InvalidationManager {
	return &InvalidationManager{}
}

// InvalidateAfterGameResult invalidates every cache entry a
// process_game_result call can make stale: that season's standings,
// its bracket/playoff picture, and the cached copy of the week the
// game belonged to.
func (m *InvalidationManager) InvalidateAfterGameResult(ctx context.Context, year, week int) error {
	patterns := []string{
		InvalidateStandingsPattern(year),
		InvalidateBracketPattern(year),
		ScheduleWeekCacheKey(year, week),
	}
	for _, pattern := range patterns {
		if err := m.invalidateByPattern(ctx, pattern); err != nil {
			log.Printf("[CACHE] error invalidating pattern %s: %v", pattern, err)
		}
	}
	log.Printf("[CACHE] invalidated season %d week %d after game result", year, week)
	return nil
}

// InvalidateSeason invalidates every cache entry for a season, used
// after a schedule is regenerated or the season is reset.
func (m *InvalidationManager) InvalidateSeason(ctx context.Context, year int) error {
	patterns := []string{
		InvalidateStandingsPattern(year),
		InvalidateBracketPattern(year),
		InvalidateSchedulePattern(year),
	}
	for _, pattern := range patterns {
		if err := m.invalidateByPattern(ctx, pattern); err != nil {
			log.Printf("[CACHE] error invalidating pattern %s: %v", pattern, err)
		}
	}
	log.Printf("[CACHE] invalidated season %d", year)
	return nil
}

// InvalidateAll flushes the entire cache database.
func (m *InvalidationManager) InvalidateAll(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("redis not initialized")
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush cache: %w", err)
	}
	log.Printf("[CACHE] invalidated all cache")
	return nil
}

func (m *InvalidationManager) invalidateByPattern(ctx context.Context, pattern string) error {
	if client == nil {
		return fmt.Errorf("redis not initialized")
	}

	keys, err := client.Keys(ctx, pattern).Result()
	if err != nil {
		return fmt.Errorf("failed to get keys for pattern %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil
	}

	deleted, err := client.Del(ctx, keys...).Result()
	if err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	log.Printf("[CACHE] invalidated %d keys for pattern %s", deleted, pattern)
	return nil
}

// Metrics returns cache-wide statistics, used by a status command.
func (m *InvalidationManager) Metrics(ctx context.Context) (map[string]interface{}, error) {
	if client == nil {
		return map[string]interface{}{"error": "redis not initialized"}, nil
	}

	info, err := client.Info(ctx, "stats").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache info: %w", err)
	}

	metrics := make(map[string]interface{})
	for _, line := range strings.Split(info, "\r\n") {
		if parts := strings.SplitN(line, ":", 2); len(parts) == 2 {
			metrics[parts[0]] = parts[1]
		}
	}

	if dbSize, err := client.DBSize(ctx).Result(); err == nil {
		metrics["total_keys"] = dbSize
	}
	return metrics, nil
}
