// Package playoffs implements the Playoff Engine (spec.md §4.5): seeding
// from conference records, Wild Card / Divisional / Conference
// Championship / Super Bowl round construction, and bracket progression.
//
// Grounded on the same standings comparator as internal/season (itself
// grounded on internal/handlers/standings.go's conference/division/rank
// ordering) and on models.PlayoffGame's shape, which promotes the
// teacher's Game.PlayoffRound *string field to a closed PlayoffRound enum
// per spec.md §9's "tagged variants instead of inheritance" guidance.
package playoffs

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/francisco/gridiron-sim/internal/models"
	"github.com/francisco/gridiron-sim/pkg/logging"
)

// Seed splits teams into their conference's 7-team seed order: the four
// division winners (by the season package's standings comparator within
// each division) take seeds 1-4 in comparator order, then the next three
// best remaining teams by the same comparator take seeds 5-7 as wild
// cards (spec.md §4.5 "Seeding").
func Seed(teams []models.Team, records map[string]models.TeamRecord) (afc, nfc []models.PlayoffTeam) {
	return seedConference(teams, records, models.AFC), seedConference(teams, records, models.NFC)
}

func seedConference(teams []models.Team, records map[string]models.TeamRecord, conf models.Conference) []models.PlayoffTeam {
	byDivision := map[models.Division][]models.TeamRecord{}
	for _, t := range teams {
		if t.Conference != conf {
			continue
		}
		byDivision[t.Division] = append(byDivision[t.Division], records[t.TeamID])
	}

	var winners []models.TeamRecord
	var rest []models.TeamRecord
	for _, recs := range byDivision {
		sortRecords(recs, true)
		if len(recs) == 0 {
			continue
		}
		winners = append(winners, recs[0])
		rest = append(rest, recs[1:]...)
	}

	sortRecords(winners, false)
	sortRecords(rest, false)

	seeded := make([]models.PlayoffTeam, 0, 7)
	for i, r := range winners {
		seeded = append(seeded, models.PlayoffTeam{TeamRecord: r, Seed: i + 1, DivisionWinner: true})
	}
	for i, r := range rest {
		if i >= 3 {
			break
		}
		seeded = append(seeded, models.PlayoffTeam{TeamRecord: r, Seed: len(winners) + i + 1, WildCard: true})
	}
	return seeded
}

// Bracket owns a season's postseason state: the seeded conferences, the
// games materialized so far, and a by-GameID index for O(1) lookups from
// AdvanceBracket. ctx is retained (not just accepted by NewBracket) so
// later round transitions triggered from AdvanceBracket still log under
// the run ID the bracket was created with.
type Bracket struct {
	ctx   context.Context
	data  models.PlayoffBracket
	games map[string]*models.PlayoffGame
}

// NewBracket seeds both conferences and materializes the Wild Card round.
func NewBracket(ctx context.Context, year int, teams []models.Team, records map[string]models.TeamRecord) *Bracket {
	afc, nfc := Seed(teams, records)
	b := &Bracket{
		ctx: ctx,
		data: models.PlayoffBracket{
			SeasonYear:   year,
			AFCTeams:     afc,
			NFCTeams:     nfc,
			CurrentRound: models.WildCard,
		},
		games: map[string]*models.PlayoffGame{},
	}
	logging.Info(ctx, "playoff bracket seeded for %d: %d AFC seeds, %d NFC seeds", year, len(afc), len(nfc))
	b.buildWildCard()
	return b
}

// Snapshot returns a copy of the bracket's current state.
func (b *Bracket) Snapshot() models.PlayoffBracket {
	return b.data
}

// wildCardPairs maps a 7-seed conference (indices 0..6 = seeds 1..7) to
// the 3 Wild Card matchups: 2v7, 3v6, 4v5. Seed 1 sits out with a bye.
var wildCardPairs = [3][2]int{{1, 6}, {2, 5}, {3, 4}}

func (b *Bracket) buildWildCard() {
	var games []models.PlayoffGame
	for _, conf := range []models.Conference{models.AFC, models.NFC} {
		seeds := b.confSeeds(conf)
		if len(seeds) != 7 {
			continue
		}
		for _, p := range wildCardPairs {
			games = append(games, newGame(models.WildCard, string(conf), seeds[p[0]], seeds[p[1]]))
		}
	}
	b.data.WildCardGames = games
	b.index(b.data.WildCardGames)
}

// buildDivisional reseeds each conference's 4 survivors (the 1-seed plus
// the 3 Wild Card winners): 1 vs the lowest surviving seed, and the
// highest-seeded Wild Card survivor vs the middle survivor (spec.md §4.5
// "Divisional").
func (b *Bracket) buildDivisional() {
	var games []models.PlayoffGame
	for _, conf := range []models.Conference{models.AFC, models.NFC} {
		seeds := b.confSeeds(conf)
		if len(seeds) != 7 {
			continue
		}
		survivors := []models.PlayoffTeam{seeds[0]}
		for _, wc := range b.confGames(b.data.WildCardGames, conf) {
			survivors = append(survivors, winnerSeed(wc))
		}
		if len(survivors) != 4 {
			continue
		}
		sortPlayoffTeamsBySeed(survivors)

		games = append(games, newGame(models.Divisional, string(conf), survivors[0], survivors[3]))
		games = append(games, newGame(models.Divisional, string(conf), survivors[1], survivors[2]))
	}
	b.data.DivisionalGames = games
	b.index(b.data.DivisionalGames)
}

// buildConferenceChampionship pits each conference's two Divisional
// survivors against each other, higher seed hosting.
func (b *Bracket) buildConferenceChampionship() {
	var games []models.PlayoffGame
	for _, conf := range []models.Conference{models.AFC, models.NFC} {
		div := b.confGames(b.data.DivisionalGames, conf)
		if len(div) != 2 {
			continue
		}
		a := winnerSeed(div[0])
		c := winnerSeed(div[1])
		higher, lower := a, c
		if c.Seed < a.Seed {
			higher, lower = c, a
		}
		games = append(games, newGame(models.ConferenceChampionship, string(conf), higher, lower))
	}
	b.data.ConferenceChampionshipGames = games
	b.index(b.data.ConferenceChampionshipGames)
}

// buildSuperBowl pits the AFC and NFC champions against each other. The
// lower numeric seed is home; on a tied seed number, AFC hosts by
// convention (spec.md §9 Open Question 1).
func (b *Bracket) buildSuperBowl() {
	afcChamp := winnerSeed(b.confGames(b.data.ConferenceChampionshipGames, models.AFC)[0])
	nfcChamp := winnerSeed(b.confGames(b.data.ConferenceChampionshipGames, models.NFC)[0])
	b.data.AFCChampion = &afcChamp.Team
	b.data.NFCChampion = &nfcChamp.Team

	higher, lower := afcChamp, nfcChamp
	if nfcChamp.Seed < afcChamp.Seed {
		higher, lower = nfcChamp, afcChamp
	}
	game := newGame(models.SuperBowl, "NFL", higher, lower)
	b.data.SuperBowlGame = &game
	b.index([]models.PlayoffGame{game})
}

// AdvanceBracket records game_id's result and, once every game of the
// current round is Completed, materializes the next round. Invalid
// game_id, a winner not matching either participant, or advancing past
// the Super Bowl are all no-ops that return false (spec.md §4.5 "Failure
// semantics").
func (b *Bracket) AdvanceBracket(ctx context.Context, gameID string, winner models.Team, homeScore, awayScore int, overtime *bool) bool {
	g, ok := b.games[gameID]
	if !ok || g.Completed {
		logging.Warn(ctx, "AdvanceBracket no-op: game %q not found or already completed", gameID)
		return false
	}
	if g.Home == nil || g.Away == nil {
		return false
	}
	if winner.TeamID != g.Home.TeamID && winner.TeamID != g.Away.TeamID {
		logging.Warn(ctx, "AdvanceBracket no-op: winner %q is not a participant in game %q", winner.TeamID, gameID)
		return false
	}

	hs, as := homeScore, awayScore
	g.HomeScore = &hs
	g.AwayScore = &as
	g.Winner = &winner
	g.Overtime = overtime
	g.Completed = true

	b.maybeAdvanceRound(b.ctx)
	return true
}

func (b *Bracket) maybeAdvanceRound(ctx context.Context) {
	switch b.data.CurrentRound {
	case models.WildCard:
		if allCompleted(b.data.WildCardGames) {
			b.buildDivisional()
			b.data.CurrentRound = models.Divisional
			logging.Info(ctx, "playoff bracket %d advanced to Divisional", b.data.SeasonYear)
		}
	case models.Divisional:
		if allCompleted(b.data.DivisionalGames) {
			b.buildConferenceChampionship()
			b.data.CurrentRound = models.ConferenceChampionship
			logging.Info(ctx, "playoff bracket %d advanced to ConferenceChampionship", b.data.SeasonYear)
		}
	case models.ConferenceChampionship:
		if allCompleted(b.data.ConferenceChampionshipGames) {
			b.buildSuperBowl()
			b.data.CurrentRound = models.SuperBowl
			logging.Info(ctx, "playoff bracket %d advanced to SuperBowl", b.data.SeasonYear)
		}
	case models.SuperBowl:
		if b.data.SuperBowlGame != nil && b.data.SuperBowlGame.Completed {
			champ := *b.data.SuperBowlGame.Winner
			b.data.SuperBowlChampion = &champ
			logging.Info(ctx, "playoff bracket %d champion: %s", b.data.SeasonYear, champ.Abbreviation)
		}
	}
}

func (b *Bracket) confSeeds(conf models.Conference) []models.PlayoffTeam {
	if conf == models.AFC {
		return b.data.AFCTeams
	}
	return b.data.NFCTeams
}

func (b *Bracket) confGames(games []models.PlayoffGame, conf models.Conference) []models.PlayoffGame {
	var out []models.PlayoffGame
	for _, g := range games {
		if g.Conference == string(conf) {
			out = append(out, g)
		}
	}
	return out
}

func (b *Bracket) index(games []models.PlayoffGame) {
	for i := range games {
		b.games[games[i].GameID] = &games[i]
	}
}

func newGame(round models.PlayoffRound, conf string, higher, lower models.PlayoffTeam) models.PlayoffGame {
	home, away := higher.Team, lower.Team
	return models.PlayoffGame{
		GameID:     uuid.NewString(),
		Round:      round,
		Conference: conf,
		HigherSeed: &higher,
		LowerSeed:  &lower,
		Home:       &home,
		Away:       &away,
	}
}

func winnerSeed(g models.PlayoffGame) models.PlayoffTeam {
	if g.Winner != nil && g.HigherSeed != nil && g.Winner.TeamID == g.HigherSeed.Team.TeamID {
		return *g.HigherSeed
	}
	return *g.LowerSeed
}

func allCompleted(games []models.PlayoffGame) bool {
	if len(games) == 0 {
		return false
	}
	for _, g := range games {
		if !g.Completed {
			return false
		}
	}
	return true
}

// sortRecords applies the same win_percentage/point_differential/
// division-or-conference-wins/abbreviation comparator the Season Engine
// uses for standings (spec.md §4.4), duplicated here rather than
// imported to avoid a season<->playoffs import cycle: the Season Engine
// constructs the Playoff Engine, so the dependency can only run one way.
func sortRecords(recs []models.TeamRecord, byDivision bool) {
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

func sortPlayoffTeamsBySeed(teams []models.PlayoffTeam) {
	for i := 1; i < len(teams); i++ {
		for j := i; j > 0 && teams[j].Seed < teams[j-1].Seed; j-- {
			teams[j], teams[j-1] = teams[j-1], teams[j]
		}
	}
}
