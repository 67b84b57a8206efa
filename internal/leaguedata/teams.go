// Package leaguedata holds the canonical 32-team NFL roster the CLI
// loads by default when no store.TeamRepository is configured. Every
// rating starts at a flat baseline; spec.md §8's exhibition-determinism
// scenario exercises exactly two of these teams by team ID ("kc",
// "buf"), so both are kept identifiable by their real divisions.
package leaguedata

import "github.com/francisco/gridiron-sim/internal/models"

// defaultStats is the baseline TeamStats every default team starts
// with: the simulation core treats ratings as the caller's input, not
// something it derives, so a flat baseline keeps exhibition results
// attributable to play calling rather than hidden rating skew.
var defaultStats = models.TeamStats{
	Offensive:          75,
	Defensive:          75,
	SpecialTeams:       75,
	Coaching:           75,
	HomeFieldAdvantage: 2,
}

type teamSeed struct {
	id, abbr, city, name string
	conf                 models.Conference
	div                  models.Division
}

var seeds = []teamSeed{
	{"kc", "KC", "Kansas City", "Chiefs", models.AFC, models.West},
	{"lv", "LV", "Las Vegas", "Raiders", models.AFC, models.West},
	{"lac", "LAC", "Los Angeles", "Chargers", models.AFC, models.West},
	{"den", "DEN", "Denver", "Broncos", models.AFC, models.West},
	{"buf", "BUF", "Buffalo", "Bills", models.AFC, models.East},
	{"mia", "MIA", "Miami", "Dolphins", models.AFC, models.East},
	{"ne", "NE", "New England", "Patriots", models.AFC, models.East},
	{"nyj", "NYJ", "New York", "Jets", models.AFC, models.East},
	{"bal", "BAL", "Baltimore", "Ravens", models.AFC, models.North},
	{"cin", "CIN", "Cincinnati", "Bengals", models.AFC, models.North},
	{"cle", "CLE", "Cleveland", "Browns", models.AFC, models.North},
	{"pit", "PIT", "Pittsburgh", "Steelers", models.AFC, models.North},
	{"hou", "HOU", "Houston", "Texans", models.AFC, models.South},
	{"ind", "IND", "Indianapolis", "Colts", models.AFC, models.South},
	{"jax", "JAX", "Jacksonville", "Jaguars", models.AFC, models.South},
	{"ten", "TEN", "Tennessee", "Titans", models.AFC, models.South},
	{"sf", "SF", "San Francisco", "49ers", models.NFC, models.West},
	{"sea", "SEA", "Seattle", "Seahawks", models.NFC, models.West},
	{"ari", "ARI", "Arizona", "Cardinals", models.NFC, models.West},
	{"lar", "LAR", "Los Angeles", "Rams", models.NFC, models.West},
	{"phi", "PHI", "Philadelphia", "Eagles", models.NFC, models.East},
	{"dal", "DAL", "Dallas", "Cowboys", models.NFC, models.East},
	{"nyg", "NYG", "New York", "Giants", models.NFC, models.East},
	{"wsh", "WSH", "Washington", "Commanders", models.NFC, models.East},
	{"gb", "GB", "Green Bay", "Packers", models.NFC, models.North},
	{"min", "MIN", "Minnesota", "Vikings", models.NFC, models.North},
	{"chi", "CHI", "Chicago", "Bears", models.NFC, models.North},
	{"det", "DET", "Detroit", "Lions", models.NFC, models.North},
	{"tb", "TB", "Tampa Bay", "Buccaneers", models.NFC, models.South},
	{"no", "NO", "New Orleans", "Saints", models.NFC, models.South},
	{"atl", "ATL", "Atlanta", "Falcons", models.NFC, models.South},
	{"car", "CAR", "Carolina", "Panthers", models.NFC, models.South},
}

// DefaultTeams returns the canonical 32-team NFL roster (8 divisions of
// 4), every team starting from the same flat TeamStats baseline.
func DefaultTeams() []models.Team {
	teams := make([]models.Team, len(seeds))
	for i, s := range seeds {
		teams[i] = models.Team{
			TeamID:       s.id,
			Abbreviation: s.abbr,
			City:         s.city,
			Name:         s.name,
			Conference:   s.conf,
			Division:     s.div,
			Stats:        defaultStats,
		}
	}
	return teams
}
