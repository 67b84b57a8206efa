// Package season implements the Season Engine (spec.md §4.4): it owns a
// team's full regular-season schedule, the derived TeamRecord for every
// team, and the week/phase state machine that eventually hands off to the
// Playoff Engine.
//
// Grounded on internal/ingestion/standings.go's win/loss/points accumulation
// loop (teacher's CalculateStandings) and internal/handlers/standings.go's
// field set and ORDER BY (conference, division, division_rank), replayed
// here from an in-memory schedule instead of a SQL aggregate.
package season

import (
	"context"
	"sort"

	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/internal/playoffs"
	"github.com/francisco/gridiron-sim/internal/schedule"
	"github.com/francisco/gridiron-sim/internal/simerrors"
	"github.com/francisco/gridiron-sim/pkg/logging"
)

// Phase is the closed set of states a season moves through.
type Phase string

const (
	Preseason    Phase = "Preseason"
	RegularSeason Phase = "RegularSeason"
	Playoffs     Phase = "Playoffs"
	Offseason    Phase = "Offseason"
)

// StandingsGroup is one division or conference's sorted TeamRecords.
type StandingsGroup struct {
	Key     string
	Records []models.TeamRecord
}

// Engine owns a season's schedule, derived records, and phase. All
// mutating operations are expected to be called from a single goroutine
// (spec.md §5: single-owner, no internal locking). ctx is retained from
// construction so accessors that lazily build the playoff bracket
// (GetPlayoffBracket, GetPlayoffPicture, and the internal week-advance
// path) keep logging under the run ID the season started with, the same
// way a single long-lived worker keeps one request-scoped logger instead
// of re-deriving it per call.
type Engine struct {
	Year         int
	Teams        []models.Team
	TotalWeeks   int
	CurrentWeek  int
	CurrentPhase Phase

	ctx       context.Context
	weekOrder map[int][]string
	games     map[string]*models.ScheduledGame
	records   map[string]models.TeamRecord

	bracket *playoffs.Bracket
}

// New generates the schedule (§4.3) and initializes empty TeamRecords for
// every team.
func New(ctx context.Context, teams []models.Team, year int, seed *uint32) *Engine {
	sched := schedule.Generate(ctx, teams, seed)

	e := &Engine{
		Year:         year,
		Teams:        teams,
		TotalWeeks:   schedule.TotalWeeks,
		CurrentWeek:  1,
		CurrentPhase: RegularSeason,
		ctx:          ctx,
		weekOrder:    make(map[int][]string, schedule.TotalWeeks),
		games:        make(map[string]*models.ScheduledGame),
		records:      make(map[string]models.TeamRecord, len(teams)),
	}

	for week, gs := range sched.Weeks {
		ids := make([]string, 0, len(gs))
		for i := range gs {
			g := gs[i]
			e.games[g.GameID] = &g
			ids = append(ids, g.GameID)
		}
		e.weekOrder[week] = ids
	}

	for _, t := range teams {
		e.records[t.TeamID] = models.TeamRecord{Team: t}
	}

	logging.Info(ctx, "season %d engine started: %d teams, %d weeks", year, len(teams), schedule.TotalWeeks)
	e.maybeAdvanceWeek()

	return e
}

// GetWeekGames returns a snapshot of week w's games.
func (e *Engine) GetWeekGames(w int) ([]models.ScheduledGame, error) {
	if w < 1 || w > e.TotalWeeks {
		return nil, simerrors.NewInvalidArgument("week %d out of range [1,%d]", w, e.TotalWeeks)
	}
	ids := e.weekOrder[w]
	games := make([]models.ScheduledGame, 0, len(ids))
	for _, id := range ids {
		games = append(games, *e.games[id])
	}
	return games, nil
}

// GetNextGames returns up to n still-Scheduled games, starting at
// CurrentWeek and scanning forward.
func (e *Engine) GetNextGames(n int) []models.ScheduledGame {
	if n <= 0 {
		return nil
	}
	var out []models.ScheduledGame
	for w := e.CurrentWeek; w <= e.TotalWeeks && len(out) < n; w++ {
		for _, id := range e.weekOrder[w] {
			g := e.games[id]
			if g.Status != models.Scheduled {
				continue
			}
			out = append(out, *g)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// GetStandings groups every team's current record by division
// (byDivision) or by conference, sorted per spec.md §4.4's standings
// rule: win_percentage desc, point_differential desc, then
// division_wins or conference_wins desc, with abbreviation as the final
// stable tiebreak.
func (e *Engine) GetStandings(byDivision bool) []StandingsGroup {
	groups := map[string][]models.TeamRecord{}
	for _, t := range e.Teams {
		key := string(t.Conference)
		if byDivision {
			key = string(t.Conference) + " " + string(t.Division)
		}
		groups[key] = append(groups[key], e.records[t.TeamID])
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]StandingsGroup, 0, len(keys))
	for _, k := range keys {
		recs := groups[k]
		SortRecords(recs, byDivision)
		out = append(out, StandingsGroup{Key: k, Records: recs})
	}
	return out
}

// SortRecords sorts recs in place per the §4.4 standings rule. The
// Playoff Engine's seeding uses the identical rule through its own copy,
// playoffs.sortRecords, since importing this package from there would be
// an import cycle.
func SortRecords(recs []models.TeamRecord, byDivision bool) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.WinPercentage() != b.WinPercentage() {
			return a.WinPercentage() > b.WinPercentage()
		}
		if a.PointDifferential() != b.PointDifferential() {
			return a.PointDifferential() > b.PointDifferential()
		}
		if byDivision {
			if a.DivisionWins != b.DivisionWins {
				return a.DivisionWins > b.DivisionWins
			}
		} else {
			if a.ConferenceWins != b.ConferenceWins {
				return a.ConferenceWins > b.ConferenceWins
			}
		}
		return a.Team.Abbreviation < b.Team.Abbreviation
	})
}

// ProcessGameResult marks game_id Completed, recomputes records by full
// replay, and advances the week/phase if every game of the current week
// is now Completed.
func (e *Engine) ProcessGameResult(ctx context.Context, gameID string, homeScore, awayScore int, overtime *bool, durationMin *int) error {
	g, ok := e.games[gameID]
	if !ok {
		return simerrors.NewNotFound("game %q", gameID)
	}
	if g.Status == models.Completed {
		return simerrors.NewConflict("game %q is already completed", gameID)
	}
	if homeScore < 0 || awayScore < 0 {
		return simerrors.NewInvalidArgument("scores must be non-negative, got %d-%d", homeScore, awayScore)
	}

	hs, as := homeScore, awayScore
	g.HomeScore = &hs
	g.AwayScore = &as
	g.Overtime = overtime
	g.GameDurationMin = durationMin
	g.Status = models.Completed

	logging.Info(ctx, "game %q completed %d-%d", gameID, homeScore, awayScore)
	e.RecalculateRecords()
	e.maybeAdvanceWeek()
	return nil
}

// RecalculateRecords is the canonical source of truth: it rebuilds every
// TeamRecord from scratch by replaying every Completed game in week order,
// rather than trusting any incremental update (spec.md §4.4, §9 "replay
// over incremental update"). Idempotent: calling it twice in a row yields
// identical records.
func (e *Engine) RecalculateRecords() {
	fresh := make(map[string]models.TeamRecord, len(e.Teams))
	for _, t := range e.Teams {
		fresh[t.TeamID] = models.TeamRecord{Team: t}
	}

	for w := 1; w <= e.TotalWeeks; w++ {
		for _, id := range e.weekOrder[w] {
			g := e.games[id]
			if g.Status != models.Completed || g.HomeScore == nil || g.AwayScore == nil {
				continue
			}
			applyResult(fresh, g.Home, g.Away, *g.HomeScore, *g.AwayScore)
		}
	}

	e.records = fresh
}

// applyResult mutates home and away's records in place per spec.md §4.4's
// record update rules.
func applyResult(records map[string]models.TeamRecord, home, away models.Team, homeScore, awayScore int) {
	h := records[home.TeamID]
	a := records[away.TeamID]

	h.PointsFor += homeScore
	h.PointsAgainst += awayScore
	a.PointsFor += awayScore
	a.PointsAgainst += homeScore

	switch {
	case homeScore > awayScore:
		h.Wins++
		a.Losses++
	case awayScore > homeScore:
		a.Wins++
		h.Losses++
	default:
		h.Ties++
		a.Ties++
	}

	if home.Conference == away.Conference && home.Division == away.Division {
		switch {
		case homeScore > awayScore:
			h.DivisionWins++
			a.DivisionLosses++
		case awayScore > homeScore:
			a.DivisionWins++
			h.DivisionLosses++
		}
	}
	if home.Conference == away.Conference {
		switch {
		case homeScore > awayScore:
			h.ConferenceWins++
			a.ConferenceLosses++
		case awayScore > homeScore:
			a.ConferenceWins++
			h.ConferenceLosses++
		}
	}

	records[home.TeamID] = h
	records[away.TeamID] = a
}

// maybeAdvanceWeek moves to the next week once every game of the current
// week is Completed, and transitions to Playoffs once CurrentWeek would
// exceed TotalWeeks.
// maybeAdvanceWeek advances CurrentWeek past every week whose games are
// all complete, including weeks with none scheduled at all (a fallback
// round-robin on a small roster can leave a week empty).
func (e *Engine) maybeAdvanceWeek() {
	for e.CurrentPhase == RegularSeason {
		for _, id := range e.weekOrder[e.CurrentWeek] {
			if e.games[id].Status != models.Completed {
				return
			}
		}
		e.CurrentWeek++
		if e.CurrentWeek > e.TotalWeeks {
			e.CurrentPhase = Playoffs
			logging.Info(e.ctx, "season %d regular season complete, entering Playoffs", e.Year)
			e.bracket = playoffs.NewBracket(e.ctx, e.Year, e.Teams, e.records)
		}
	}
}

// GetPlayoffBracket lazily constructs (once the regular season is over)
// and returns a snapshot of the postseason bracket.
func (e *Engine) GetPlayoffBracket() (*models.PlayoffBracket, error) {
	if e.CurrentPhase == RegularSeason || e.CurrentPhase == Preseason {
		return nil, simerrors.NewConflict("regular season is not yet complete")
	}
	if e.bracket == nil {
		e.bracket = playoffs.NewBracket(e.ctx, e.Year, e.Teams, e.records)
	}
	snap := e.bracket.Snapshot()
	return &snap, nil
}

// GetPlayoffPicture returns the same lazily-constructed bracket once the
// season has reached Playoffs/Offseason; during the regular season it
// instead returns a projected seeding with no games materialized yet, so
// callers can render a "playoff picture" without waiting for week 18.
func (e *Engine) GetPlayoffPicture() models.PlayoffBracket {
	if e.CurrentPhase == Playoffs || e.CurrentPhase == Offseason {
		if e.bracket == nil {
			e.bracket = playoffs.NewBracket(e.ctx, e.Year, e.Teams, e.records)
		}
		return e.bracket.Snapshot()
	}

	afc, nfc := playoffs.Seed(e.Teams, e.records)
	return models.PlayoffBracket{
		SeasonYear:   e.Year,
		AFCTeams:     afc,
		NFCTeams:     nfc,
		CurrentRound: models.WildCard,
	}
}
