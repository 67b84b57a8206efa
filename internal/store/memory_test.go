package store

import (
	"context"
	"testing"

	"github.com/francisco/gridiron-sim/internal/models"
)

func TestMemoryStore_GetUnknownGameReturnsNilNoError(t *testing.T) {
	s := NewMemoryStore(nil, nil)
	g, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if g != nil {
		t.Fatalf("expected nil game, got %+v", g)
	}
}

func TestMemoryStore_SaveResultThenGetReflectsUpdate(t *testing.T) {
	teams := []models.Team{{TeamID: "a"}, {TeamID: "b"}}
	games := []models.ScheduledGame{{
		GameID: "g1",
		Home:   teams[0],
		Away:   teams[1],
		Week:   1,
		Status: models.Scheduled,
	}}
	s := NewMemoryStore(teams, games)
	ctx := context.Background()

	if err := s.SaveResult(ctx, "g1", GameResultUpdate{HomeScore: 24, AwayScore: 17}); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	got, err := s.Get(ctx, "g1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != models.Completed {
		t.Errorf("Status = %v, want Completed", got.Status)
	}
	if got.HomeScore == nil || *got.HomeScore != 24 {
		t.Errorf("HomeScore = %v, want 24", got.HomeScore)
	}
	if got.AwayScore == nil || *got.AwayScore != 17 {
		t.Errorf("AwayScore = %v, want 17", got.AwayScore)
	}
}

func TestMemoryStore_ListReturnsACopy(t *testing.T) {
	teams := []models.Team{{TeamID: "a"}}
	s := NewMemoryStore(teams, nil)
	ctx := context.Background()

	out, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	out[0].TeamID = "mutated"

	again, _ := s.List(ctx)
	if again[0].TeamID != "a" {
		t.Fatalf("List mutation leaked into store: %v", again[0].TeamID)
	}
}
