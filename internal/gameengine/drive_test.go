package gameengine

import (
	"testing"

	"github.com/francisco/gridiron-sim/internal/models"
)

func TestGoalToGo(t *testing.T) {
	tests := []struct {
		field int
		want  int
	}{
		{0, 10},
		{50, 10},
		{85, 10},
		{90, 10},
		{95, 5},
		{99, 1},
	}
	for _, tt := range tests {
		if got := goalToGo(tt.field); got != tt.want {
			t.Errorf("goalToGo(%d) = %d, want %d", tt.field, got, tt.want)
		}
	}
}

func TestFourthDownDecision_ShortYardageInOpponentTerritory(t *testing.T) {
	g := &gameState{quarter: 2, clockSec: 900, rng: nil}
	if got := g.fourthDownDecision(60, 2); got != decisionGoForIt {
		t.Fatalf("fourthDownDecision(60, 2) in Q2 = %v, want decisionGoForIt", got)
	}
}

func TestFourthDownDecision_ShortYardageFourthQuarterOwnTerritory(t *testing.T) {
	g := &gameState{quarter: 4, clockSec: 900, rng: nil}
	if got := g.fourthDownDecision(30, 1); got != decisionGoForIt {
		t.Fatalf("fourthDownDecision(30, 1) in Q4 = %v, want decisionGoForIt", got)
	}
}

func TestFourthDownDecision_InsideEasyFieldGoalRange(t *testing.T) {
	g := &gameState{quarter: 2, clockSec: 900, rng: nil}
	// field 75 -> kick distance (100-75)+17 = 42, comfortably under the 45 cutoff.
	if got := g.fourthDownDecision(75, 8); got != decisionFieldGoal {
		t.Fatalf("fourthDownDecision(75, 8) = %v, want decisionFieldGoal", got)
	}
}

func TestFourthDownDecision_PuntFromOwnTerritory(t *testing.T) {
	g := &gameState{quarter: 1, clockSec: 900, rng: nil}
	if got := g.fourthDownDecision(20, 8); got != decisionPunt {
		t.Fatalf("fourthDownDecision(20, 8) = %v, want decisionPunt", got)
	}
}

// TestThirdFourthDownConversion locks in the decision that a conversion is
// recorded when yards_gained >= yards_to_go OR the play ends the drive as a
// touchdown, checked once per play before the down counter advances.
func TestThirdFourthDownConversion(t *testing.T) {
	home, _ := testTeams()

	tests := []struct {
		name                 string
		down                 int
		yardsGained, yardsToGo, endField int
		wantAttempts, wantConversions int
	}{
		{"third down converted by yardage", 3, 12, 10, 50, 1, 1},
		{"third down not converted", 3, 4, 10, 44, 1, 0},
		{"fourth down not converted", 4, 2, 5, 50, 1, 0},
		{"fourth down converted by touchdown despite short yardage", 4, 3, 10, 100, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &gameState{home: home}
			g.recordPlayStats(home, models.PlayRun, tt.yardsGained, tt.down, tt.yardsToGo, 20, tt.endField)

			var split models.DownSplit
			switch tt.down {
			case 3:
				split = g.homeStats.ThirdDown
			case 4:
				split = g.homeStats.FourthDown
			}
			if split.Attempts != tt.wantAttempts || split.Conversions != tt.wantConversions {
				t.Fatalf("got attempts=%d conversions=%d, want attempts=%d conversions=%d", split.Attempts, split.Conversions, tt.wantAttempts, tt.wantConversions)
			}
		})
	}
}

func TestRecordPlayStats_TurnoverIncrementsCount(t *testing.T) {
	home, _ := testTeams()
	g := &gameState{home: home}
	g.recordPlayStats(home, models.PlayTurnover, 0, 2, 10, 25, 40)
	if g.homeStats.Turnovers != 1 {
		t.Fatalf("Turnovers = %d, want 1", g.homeStats.Turnovers)
	}
	if g.homeStats.TotalYards != 0 {
		t.Fatalf("TotalYards = %d, want 0 (no yards on a turnover)", g.homeStats.TotalYards)
	}
}

func TestRecordPlayStats_NegativeYardsDoNotReduceTotals(t *testing.T) {
	home, _ := testTeams()
	g := &gameState{home: home}
	g.recordPlayStats(home, models.PlayRun, -3, 1, 10, 20, 47)
	if g.homeStats.TotalYards != 0 || g.homeStats.RushingYards != 0 {
		t.Fatalf("negative play should not touch totals, got total=%d rushing=%d", g.homeStats.TotalYards, g.homeStats.RushingYards)
	}
	if g.homeStats.Plays != 1 {
		t.Fatalf("Plays = %d, want 1", g.homeStats.Plays)
	}
}
