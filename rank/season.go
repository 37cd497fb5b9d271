package rank

import (
	"strings"

	"github.com/beninactu/reco/core"
)

// seasonTopics maps each Beninese season to the title keywords it makes
// topical. An unrecognized season simply matches nothing.
var seasonTopics = map[core.Season][]string{
	core.SeasonDry: {
		"sécheresse", "secheresse", "chaleur", "canicule", "eau",
		"irrigation", "feux",
	},
	core.SeasonRainy: {
		"pluie", "pluies", "inondation", "inondations", "orage",
		"agriculture", "récolte", "recolte", "crue",
	},
	core.SeasonHarmattan: {
		"harmattan", "poussière", "poussiere", "vent", "santé", "sante",
		"grippe", "sécheresse cutanée",
	},
}

// MatchesSeason reports whether the title carries a topical keyword for
// the given season.
func MatchesSeason(season core.Season, title string) bool {
	topics, ok := seasonTopics[season]
	if !ok || title == "" {
		return false
	}
	lower := strings.ToLower(title)
	for _, kw := range topics {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
