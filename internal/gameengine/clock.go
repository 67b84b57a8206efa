package gameengine

import "github.com/francisco/gridiron-sim/internal/models"

// consumePlayClock returns the total game-clock seconds one play burns: a
// play-time component keyed to what happened, a between-play component that
// shrinks in the two-minute-drill downs (3rd/4th), and a 3% chance of an
// extra stoppage (incomplete pass out of bounds, injury, replay).
func (g *gameState) consumePlayClock(playType models.PlayType, turnover bool, down int) int {
	var playTime int
	switch {
	case turnover:
		playTime = g.rng.IntRange(3, 6)
	case playType == models.PlayRun:
		playTime = g.rng.IntRange(2, 6)
	case playType == models.PlayPass:
		playTime = g.rng.IntRange(1, 7)
	default: // Special
		playTime = g.rng.IntRange(3, 5)
	}

	var between int
	if down == 3 || down == 4 {
		between = g.rng.IntRange(10, 20)
	} else {
		between = g.rng.IntRange(15, 25)
	}

	total := playTime + between
	if g.rng.Chance(0.03) {
		total += g.rng.IntRange(15, 45)
	}
	return total
}
