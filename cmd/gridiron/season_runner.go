package main

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/francisco/gridiron-sim/internal/gameengine"
	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/season"
)

// gameSeed derives a per-game seed from the season seed and a key naming
// the game (playWeek passes its week and home/away team IDs, which stay
// the same across runs, unlike the random GameID), so a full season
// replay is byte-identical under the same seed regardless of iteration
// order, without threading a counter
// through the Season Engine (which owns no notion of "the Nth game").
func gameSeed(base *uint32, gameID string) *uint32 {
	if base == nil {
		return nil
	}
	h := fnv.New32a()
	h.Write([]byte(gameID))
	s := *base ^ h.Sum32()
	return &s
}

// playWeek simulates and records every not-yet-completed game in week w.
func playWeek(ctx context.Context, eng *season.Engine, seed *uint32, w int) error {
	games, err := eng.GetWeekGames(w)
	if err != nil {
		return err
	}
	for _, g := range games {
		if g.Status == models.Completed {
			continue
		}
		result := gameengine.SimulateGame(ctx, g.Home, g.Away, gameengine.Options{Seed: gameSeed(seed, fmt.Sprintf("w%d-%s-%s", g.Week, g.Home.TeamID, g.Away.TeamID))})
		overtime := result.Overtime
		duration := result.DurationMin
		if err := eng.ProcessGameResult(ctx, g.GameID, result.HomeScore, result.AwayScore, &overtime, &duration); err != nil {
			return err
		}
	}
	return nil
}

// playThroughWeek simulates every week from the engine's current week up
// to and including targetWeek.
func playThroughWeek(ctx context.Context, eng *season.Engine, seed *uint32, targetWeek int) error {
	for eng.CurrentPhase == season.RegularSeason && eng.CurrentWeek <= targetWeek {
		if err := playWeek(ctx, eng, seed, eng.CurrentWeek); err != nil {
			return err
		}
	}
	return nil
}

// playRegularSeason simulates every remaining regular-season week.
func playRegularSeason(ctx context.Context, eng *season.Engine, seed *uint32) error {
	return playThroughWeek(ctx, eng, seed, eng.TotalWeeks)
}
