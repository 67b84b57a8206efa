package gameengine

import (
	"fmt"

	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/rng"
)

// maxPlaysPerDrive is the hard safety cap: a drive that somehow reaches it
// without resolving terminates as a punt rather than looping forever.
const maxPlaysPerDrive = 20

// fourthDownDecision is the closed set of choices the offense can make on
// fourth down.
type fourthDownDecision int

const (
	decisionGoForIt fourthDownDecision = iota
	decisionFieldGoal
	decisionPunt
)

// driveOutcome is what simulateDrive hands back to the quarter loop: the
// finished DriveLog plus the state the next drive should start from.
type driveOutcome struct {
	log          models.DriveLog
	nextOffense  models.Team
	nextField    int
	nextDown     int
	nextYardsToGo int
	quarterEnded bool
}

// simulateDrive plays one drive to completion: a sequence of downs ending in
// a touchdown, field goal (made or missed), turnover, turnover on downs,
// punt, or the quarter clock running out.
func (g *gameState) simulateDrive(offense, defense models.Team, field, down, yardsToGo int) driveOutcome {
	driveNum := g.nextDriveNumber()
	startField := field
	startClock := g.clockSec

	var plays []models.PlayLogEntry
	var result models.DriveResult
	var finalDesc string
	var nextField int

	for i := 0; i < maxPlaysPerDrive; i++ {
		if g.clockSec <= 0 {
			result = models.EndOfQuarter
			break
		}

		if down == 4 {
			switch g.fourthDownDecision(field, yardsToGo) {
			case decisionPunt:
				result = models.Punt
				nextField = g.punt(offense, defense, field)
				finalDesc = fmt.Sprintf("%s punts", offense.Abbreviation)
			case decisionFieldGoal:
				made, distance := g.attemptFieldGoal(offense, defense, field)
				if made {
					result = models.FieldGoal
					finalDesc = fmt.Sprintf("%s field goal good from %d", offense.Abbreviation, distance)
				} else {
					result = models.MissedFG
					nextField = rng.ClampInt(100-field, 1, 99)
					finalDesc = fmt.Sprintf("%s field goal no good from %d", offense.Abbreviation, distance)
				}
			}
			if result != "" {
				break
			}
		}

		entry, turnover := g.executePlay(offense, defense, field, down, yardsToGo)
		plays = append(plays, entry)
		field = entry.EndField

		if turnover {
			result = models.Turnover
			nextField = rng.ClampInt(100-field, 1, 99)
			finalDesc = fmt.Sprintf("%s turns it over", offense.Abbreviation)
			break
		}
		if field >= 100 {
			result = models.Touchdown
			finalDesc = fmt.Sprintf("%s touchdown", offense.Abbreviation)
			break
		}

		if entry.YardsGained >= yardsToGo {
			down = 1
			yardsToGo = goalToGo(field)
			continue
		}

		yardsToGo -= entry.YardsGained
		down++
		if down > 4 {
			result = models.TurnoverOnDowns
			nextField = rng.ClampInt(100-field, 1, 99)
			finalDesc = fmt.Sprintf("%s turns it over on downs", offense.Abbreviation)
			break
		}
	}

	if result == "" {
		// Hit the play cap without resolving; the hard safety cap terminates
		// the drive as a punt.
		result = models.Punt
		nextField = g.punt(offense, defense, field)
		finalDesc = fmt.Sprintf("%s punts", offense.Abbreviation)
	}

	elapsed := startClock - g.clockSec
	if elapsed < 0 {
		elapsed = 0
	}

	log := models.DriveLog{
		Quarter:               g.quarter,
		DriveNumber:           driveNum,
		OffenseAbbr:           offense.Abbreviation,
		DefenseAbbr:           defense.Abbreviation,
		StartField:            startField,
		Result:                result,
		Points:                result.Points(),
		TimeElapsedSec:        elapsed,
		Plays:                 len(plays),
		PlayLog:               plays,
		FinalPlayDescription:  finalDesc,
	}

	out := driveOutcome{log: log}

	switch result {
	case models.EndOfQuarter:
		out.quarterEnded = true
		out.nextOffense = offense
		out.nextField = field
		out.nextDown = down
		out.nextYardsToGo = yardsToGo
	case models.Touchdown, models.FieldGoal:
		out.nextOffense = defense
		out.nextField = g.kickoffReceive2(defense, offense)
		out.nextDown = 1
		out.nextYardsToGo = goalToGo(out.nextField)
	default: // Turnover, TurnoverOnDowns, MissedFG, Punt
		out.nextOffense = defense
		out.nextField = nextField
		out.nextDown = 1
		out.nextYardsToGo = goalToGo(out.nextField)
	}

	return out
}

// goalToGo caps the standard 10-yard first down at the distance remaining
// to the goal line, so yardsToGo never asks for more yards than exist.
func goalToGo(field int) int {
	toGoal := 100 - field
	if toGoal < 10 {
		if toGoal < 1 {
			return 1
		}
		return toGoal
	}
	return 10
}

// fourthDownDecision chooses go-for-it, field goal, or punt given the
// current field position and distance. Order matters: each rule is checked
// in sequence and the first match wins.
func (g *gameState) fourthDownDecision(field, yardsToGo int) fourthDownDecision {
	opponentTerritory := field > 50

	if yardsToGo <= 2 && (opponentTerritory || g.quarter == 4) {
		return decisionGoForIt
	}

	if field >= 47 {
		kickDistance := (100 - field) + 17
		if kickDistance <= 45 {
			return decisionFieldGoal
		}
		if g.quarter == 4 && g.clockSec < 300 {
			return decisionFieldGoal
		}
		if yardsToGo <= 3 && g.rng.Chance(0.3) {
			return decisionGoForIt
		}
		return decisionFieldGoal
	}

	if g.quarter == 4 && g.clockSec < 120 && field >= 45 {
		return decisionGoForIt
	}

	if field < 35 {
		return decisionPunt
	}

	if yardsToGo <= 3 && g.rng.Chance(0.2) {
		return decisionGoForIt
	}
	return decisionPunt
}
