package gameengine

import "github.com/francisco/gridiron-sim/internal/models"

// kickoffReceive returns (receiving, startField) for a kickoff from kicking
// to receiving: the opening kickoff of each half. startField is expressed
// in the receiving team's own frame (1..99).
func (g *gameState) kickoffReceive(receiving, kicking models.Team) (models.Team, int) {
	return receiving, g.kickoffReturn(receiving, kicking)
}

// kickoffReceive2 is the mid-game counterpart used after a score: same
// return math, but the caller only needs the resulting field position since
// it already knows who the new offense is.
func (g *gameState) kickoffReceive2(receiving, kicking models.Team) int {
	return g.kickoffReturn(receiving, kicking)
}

// kickoffReturn computes the receiving team's starting field position after
// a kickoff, per spec: 25 + Normal(0, 8) + 5*(receiver_ST - kicker_ST),
// clamped to [10, 50].
func (g *gameState) kickoffReturn(receiving, kicking models.Team) int {
	pos := 25.0 + g.rng.Normal(0, 8) + 5.0*float64(receiving.Stats.SpecialTeams-kicking.Stats.SpecialTeams)
	return round(clampF(pos, 10, 50))
}

// attemptFieldGoal resolves a field goal try from the offense's current
// field position. distance is (100-field)+17, the equivalent kick length in
// yards; success probability starts from a base keyed to distance bucket,
// then adjusts for the kicker's rating, home field, and weather.
func (g *gameState) attemptFieldGoal(offense, defense models.Team, field int) (made bool, distance int) {
	distance = (100 - field) + 17

	var base float64
	switch {
	case distance <= 30:
		base = 0.98
	case distance <= 40:
		base = 0.90
	case distance <= 50:
		base = 0.78
	default:
		base = 0.58
	}

	base += (float64(offense.Stats.SpecialTeams) - 75) / 100
	if g.isHome(offense) {
		base += 0.05
	}
	base *= g.effects.KickingAccuracy
	if distance > 40 {
		base *= g.effects.KickingDistance
	}
	base = clampF(base, 0.15, 0.98)

	return g.rng.Chance(base), distance
}

// punt resolves a fourth-down (or hard-cap) punt and returns the receiving
// team's new field position (1..99), accounting for a touchback and any
// return yardage.
func (g *gameState) punt(offense, defense models.Team, field int) int {
	distance := clampF(42.0+g.rng.Normal(0, 8)+5.0*float64(offense.Stats.SpecialTeams), 25, 60)

	landingSpot := float64(field) + distance
	if landingSpot >= 100 {
		return 20
	}

	returnYards := clampF(g.rng.Normal(8, 4)+3*float64(defense.Stats.SpecialTeams), 0, 20)
	receiverField := (100 - landingSpot) + returnYards
	return round(clampF(receiverField, 1, 99))
}
