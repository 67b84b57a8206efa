package gameengine

import (
	"fmt"
	"math"
)

// round converts a float to the nearest int, rounding half away from zero.
func round(v float64) int {
	if v < 0 {
		return -int(math.Round(-v))
	}
	return int(math.Round(v))
}

// clampF restricts v to [lo, hi].
func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatClock renders seconds remaining in a quarter as "MM:SS".
func formatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
