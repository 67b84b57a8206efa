package rng

import "gonum.org/v1/gonum/stat/distuv"

// Normal draws one sample from Normal(mean, stdev) using s as the
// generator's bit source, so the draw is fully determined by s's current
// state.
func (s *Source) Normal(mean, stdev float64) float64 {
	n := distuv.Normal{Mu: mean, Sigma: stdev, Src: s}
	return n.Rand()
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
