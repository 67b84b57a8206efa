// Package gameengine simulates a single game play by play: quarters, drives,
// downs, field goals, punts, kickoffs, and the resulting per-team stat line.
// Every draw comes from a rng.Source, so the same seed and the same two
// Teams always produce the same GameResult.
package gameengine

import (
	"context"
	"fmt"

	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/rng"
	"github.com/francisco/gridiron-sim/pkg/logging"
)

// Options configures one SimulateGame call. A nil Seed draws from a
// non-reproducible Source (rng.New); a nil Weather generates weather from a
// side Source seeded at *Seed+1000, keeping the weather stream independent
// of the play stream per spec §9.
type Options struct {
	Seed    *uint32
	Weather *models.Weather
}

// gameState is the mutable state threaded through one simulated game.
type gameState struct {
	home, away models.Team
	weather    models.Weather
	effects    models.WeatherEffects
	rng        *rng.Source

	quarter   int
	clockSec  int
	driveSeq  int
	overtime  bool

	playByPlay []models.PlayLogEntry
	drives     []models.DriveLog

	homeScore, awayScore int
	homeStats, awayStats models.TeamSimulationStats
}

// SimulateGame runs one complete game between home and away and returns the
// fully populated result: score, drives, play-by-play, and per-team stats.
func SimulateGame(ctx context.Context, home, away models.Team, opts Options) models.GameResult {
	seeded := opts.Seed != nil

	var playSource, weatherSource *rng.Source
	if seeded {
		playSource = rng.NewFromSeed(*opts.Seed)
		weatherSource = rng.NewFromSeed(*opts.Seed + 1000)
	} else {
		playSource = rng.New()
		weatherSource = rng.New()
	}

	var w models.Weather
	if opts.Weather != nil {
		w = *opts.Weather
	} else {
		w = rng.GenerateWeather(weatherSource)
	}

	g := &gameState{
		home:    home,
		away:    away,
		weather: w,
		effects: rng.Effects(w),
		rng:     playSource,
	}

	g.run()

	result := g.result()
	logging.Info(ctx, "game simulated: %s %d - %s %d", home.Abbreviation, result.HomeScore, away.Abbreviation, result.AwayScore)
	return result
}

// run plays all four quarters and, if necessary, the single overtime period.
func (g *gameState) run() {
	offense, field := g.kickoffReceive(g.home, g.away)
	down, yardsToGo := 1, 10

	g.quarter, g.clockSec = 1, 900
	offense, field, down, yardsToGo = g.playQuarter(offense, field, down, yardsToGo)

	g.quarter, g.clockSec = 2, 900
	offense, field, down, yardsToGo = g.playQuarter(offense, field, down, yardsToGo)

	g.quarter, g.clockSec = 3, 900
	offense, field = g.kickoffReceive(g.away, g.home)
	down, yardsToGo = 1, 10
	offense, field, down, yardsToGo = g.playQuarter(offense, field, down, yardsToGo)

	g.quarter, g.clockSec = 4, 900
	_, _, _, _ = g.playQuarter(offense, field, down, yardsToGo)

	if g.homeScore == g.awayScore {
		g.playOvertime()
	}
}

// playQuarter runs drives back to back until the quarter clock is exhausted,
// threading possession, field position, and down/distance from one drive to
// the next. It returns the state the following quarter should resume with.
func (g *gameState) playQuarter(offense models.Team, field, down, yardsToGo int) (models.Team, int, int, int) {
	for g.clockSec > 0 {
		defense := g.opponent(offense)
		out := g.simulateDrive(offense, defense, field, down, yardsToGo)
		g.recordDrive(out.log)

		if out.quarterEnded {
			return out.nextOffense, out.nextField, out.nextDown, out.nextYardsToGo
		}
		offense, field, down, yardsToGo = out.nextOffense, out.nextField, out.nextDown, out.nextYardsToGo
	}
	return offense, field, down, yardsToGo
}

// playOvertime implements the modified-sudden-death period: a coin flip
// picks the first offense, which starts a drive at its own 25. A touchdown
// ends the game immediately; anything else gives the other team one drive,
// after which the higher score wins (a tie stands).
func (g *gameState) playOvertime() {
	g.overtime = true
	g.quarter = 5
	g.clockSec = 900

	var first models.Team
	if g.rng.Chance(0.5) {
		first = g.home
	} else {
		first = g.away
	}

	out := g.simulateDrive(first, g.opponent(first), 25, 1, 10)
	g.recordDrive(out.log)
	if out.log.Result == models.Touchdown {
		return
	}

	second := g.opponent(first)
	out2 := g.simulateDrive(second, g.opponent(second), 25, 1, 10)
	g.recordDrive(out2.log)
}

func (g *gameState) opponent(t models.Team) models.Team {
	if t.TeamID == g.home.TeamID {
		return g.away
	}
	return g.home
}

func (g *gameState) isHome(t models.Team) bool {
	return t.TeamID == g.home.TeamID
}

func (g *gameState) statsFor(t models.Team) *models.TeamSimulationStats {
	if g.isHome(t) {
		return &g.homeStats
	}
	return &g.awayStats
}

func (g *gameState) nextDriveNumber() int {
	g.driveSeq++
	return g.driveSeq
}

// recordDrive appends a finished drive's play-by-play and drive log to the
// running game record, and applies its points to the scoring team.
func (g *gameState) recordDrive(d models.DriveLog) {
	g.drives = append(g.drives, d)
	g.playByPlay = append(g.playByPlay, d.PlayLog...)

	if d.Points == 0 {
		return
	}
	if d.OffenseAbbr == g.home.Abbreviation {
		g.homeScore += d.Points
	} else {
		g.awayScore += d.Points
	}
}

func (g *gameState) result() models.GameResult {
	duration := 60
	if g.overtime {
		duration = 75
	}

	winnerID := ""
	if g.homeScore > g.awayScore {
		winnerID = g.home.TeamID
	} else if g.awayScore > g.homeScore {
		winnerID = g.away.TeamID
	}

	return models.GameResult{
		Home:        g.home,
		Away:        g.away,
		HomeScore:   g.homeScore,
		AwayScore:   g.awayScore,
		DurationMin: duration,
		Overtime:    g.overtime,
		WinnerID:    winnerID,
		Weather:     g.weather,
		Summary:     fmt.Sprintf("%s %d - %s %d (%s)", g.away.Abbreviation, g.awayScore, g.home.Abbreviation, g.homeScore, g.weather.String()),
		PlayByPlay:  g.playByPlay,
		Drives:      g.drives,
		TeamStats: models.GameTeamStats{
			Home: g.homeStats,
			Away: g.awayStats,
		},
	}
}
