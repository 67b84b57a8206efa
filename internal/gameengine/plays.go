package gameengine

import "github.com/francisco/gridiron-sim/internal/models"

// executePlay runs one offensive snap: picks a play type, resolves success
// against the defense and weather, advances the clock, and updates the
// offense's running stat line. It returns the logged entry and whether the
// play ended in a turnover.
func (g *gameState) executePlay(offense, defense models.Team, field, down, yardsToGo int) (models.PlayLogEntry, bool) {
	playType := g.choosePlayType(down, yardsToGo, field)

	homeBonus := 0
	if g.isHome(offense) {
		homeBonus = offense.Stats.HomeFieldAdvantage
	}
	success := (float64(offense.Stats.Offensive) + float64(homeBonus) - float64(defense.Stats.Defensive) + situationModifier(down, yardsToGo, field)) / 90.0

	turnover := g.checkTurnover(playType, down, success)
	clockUsed := g.consumePlayClock(playType, turnover, down)
	clockAtSnap := formatClock(g.clockSec)

	loggedType := playType
	var yardsGained int
	if turnover {
		loggedType = models.PlayTurnover
	} else {
		switch playType {
		case models.PlayRun:
			yardsGained = g.resolveRun(success, field)
		case models.PlayPass:
			yardsGained = g.resolvePass(success, field, yardsToGo)
		case models.PlaySpecial:
			yardsGained = g.resolveSpecial(success)
		}
	}

	g.clockSec -= clockUsed
	if g.clockSec < 0 {
		g.clockSec = 0
	}

	endField := field + yardsGained
	if endField < 0 {
		endField = 0
	}
	if endField > 100 {
		endField = 100
	}

	entry := models.PlayLogEntry{
		Quarter:     g.quarter,
		Down:        down,
		YardsToGo:   yardsToGo,
		StartField:  field,
		EndField:    endField,
		PlayType:    loggedType,
		YardsGained: yardsGained,
		Clock:       clockAtSnap,
	}

	g.recordPlayStats(offense, loggedType, yardsGained, down, yardsToGo, clockUsed, endField)

	return entry, turnover
}

// choosePlayType picks Run, Pass, or Special for the upcoming down. Special
// plays are rare trick/gadget calls; otherwise the pass rate rises on
// third-and-long and falls near the goal line.
func (g *gameState) choosePlayType(down, yardsToGo, field int) models.PlayType {
	if g.rng.Chance(0.05) {
		return models.PlaySpecial
	}

	passProb := 0.55
	yardsToGoal := 100 - field
	switch {
	case down == 3 && yardsToGo >= 7:
		passProb = 0.75
	case yardsToGoal <= 5:
		passProb = 0.25
	}

	if g.rng.Chance(passProb) {
		return models.PlayPass
	}
	return models.PlayRun
}

// situationModifier folds down, distance, and field position into the
// success formula: early downs and short yardage help the offense, long
// yardage and the red zone squeeze are harder.
func situationModifier(down, yardsToGo, field int) float64 {
	mod := 0.0
	switch down {
	case 1:
		mod += 5
	case 2:
		mod += 2
	case 3:
		mod += -3
	case 4:
		mod += -8
	}
	if yardsToGo <= 3 {
		mod += 3
	}
	if yardsToGo >= 10 {
		mod += -5
	}
	if 100-field <= 20 {
		mod += 3
	}
	return mod
}

// checkTurnover rolls for a fumble or interception. Base rate depends on
// play type, rises 50% on third/fourth down, and is scaled by weather
// (fumble chance directly for runs, visibility/field condition for
// everything else).
func (g *gameState) checkTurnover(playType models.PlayType, down int, success float64) bool {
	base := 0.015
	switch playType {
	case models.PlayPass:
		base = 0.018
	case models.PlayRun:
		base = 0.012
	}

	p := base - 0.015*success
	if down == 3 || down == 4 {
		p *= 1.5
	}

	if playType == models.PlayRun {
		p *= g.effects.FumbleChance
	} else {
		p *= (2 - g.effects.Visibility + 2 - g.effects.FieldCondition) / 2
	}

	p = clampF(p, 0.005, 0.12)
	return g.rng.Chance(p)
}

// resolveRun samples rush yardage around a success-weighted mean, clamps to
// a realistic range, and caps it at the goal line plus a short buffer so a
// single carry can't overshoot by an absurd margin.
func (g *gameState) resolveRun(success float64, field int) int {
	mean := 4.2 + 2.5*success
	yards := clampF(g.rng.Normal(mean, 2.5), -3, 25)

	yardsToGoal := 100 - field
	if yardsToGoal < 5 {
		cap := float64(yardsToGoal + 2)
		if yards > cap {
			yards = cap
		}
	}

	yards *= g.effects.RushingYards
	return round(yards)
}

// resolvePass rolls completion first (scaled by accuracy and visibility);
// an incompletion gains nothing. A completion's yardage mean leans on
// distance-to-go when the offense needs more than a short gain.
func (g *gameState) resolvePass(success float64, field, yardsToGo int) int {
	compProb := clampF(0.7+0.2*success, 0.45, 0.9)
	compProb *= g.effects.PassingAccuracy * g.effects.Visibility
	compProb = clampF(compProb, 0.15, 0.9)

	if !g.rng.Chance(compProb) {
		return 0
	}

	base := 8.5
	if yardsToGo > 10 {
		base = 0.9 * float64(yardsToGo)
	}
	yards := clampF(g.rng.Normal(base+4.0*success, 4), 0, 40)
	yards *= g.effects.PassingDistance
	return round(yards)
}

// resolveSpecial is the gadget-play outcome: usually a modest loss or short
// gain, occasionally a big chunk play.
func (g *gameState) resolveSpecial(success float64) int {
	bigPlayChance := clampF(0.30+0.20*success, 0, 1)
	if g.rng.Chance(bigPlayChance) {
		return g.rng.IntRange(8, 24)
	}
	return g.rng.IntRange(-5, 2)
}

// recordPlayStats folds one play's outcome into the offense's running
// TeamSimulationStats: yardage totals (positive gains only), play and
// turnover counts, time of possession, and third/fourth-down conversions.
func (g *gameState) recordPlayStats(offense models.Team, playType models.PlayType, yardsGained, down, yardsToGo, clockUsed, endField int) {
	stats := g.statsFor(offense)
	stats.Plays++
	stats.TimeOfPossession += clockUsed

	if yardsGained > 0 {
		stats.TotalYards += yardsGained
		switch playType {
		case models.PlayPass:
			stats.PassingYards += yardsGained
		case models.PlayRun:
			stats.RushingYards += yardsGained
		}
	}

	if playType == models.PlayTurnover {
		stats.Turnovers++
	}

	converted := yardsGained >= yardsToGo || endField >= 100
	switch down {
	case 3:
		stats.ThirdDown.Attempts++
		if converted {
			stats.ThirdDown.Conversions++
		}
	case 4:
		stats.FourthDown.Attempts++
		if converted {
			stats.FourthDown.Conversions++
		}
	}
}
