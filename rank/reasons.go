package rank

import "github.com/beninactu/reco/core"

// Display reasons, in the reader's language.
const (
	ReasonExcellentMatch  = "Excellente correspondance"
	ReasonPreferredTopic  = "Catégorie que vous suivez"
	ReasonRecent          = "Article récent"
	ReasonPopular         = "Très populaire"
	ReasonLocale          = "Actualité du Bénin"
	ReasonFitsReadingTime = "Durée de lecture adaptée"
	ReasonSimilarReads    = "Proche de vos lectures"
)

// Qualitative thresholds per factor. Reasons re-derive labels from the
// sub-scores for display only; they are a best-effort explanation, not an
// audit trail of the arithmetic.
const (
	reasonCategoryThreshold    = 0.7
	reasonRecencyThreshold     = 0.8
	reasonPopularityThreshold  = 0.7
	reasonReadingTimeThreshold = 0.8
	reasonSimilarityThreshold  = 0.7
	reasonExcellentThreshold   = 0.8
)

// reasons builds the ordered display reasons for a scored article.
func reasons(profile *core.UserProfile, parts factorScores, total float64) []string {
	out := make([]string, 0, 4)

	if total > reasonExcellentThreshold {
		out = append(out, ReasonExcellentMatch)
	}
	if parts.category > reasonCategoryThreshold {
		out = append(out, ReasonPreferredTopic)
	}
	if parts.recency > reasonRecencyThreshold {
		out = append(out, ReasonRecent)
	}
	if parts.popularity > reasonPopularityThreshold {
		out = append(out, ReasonPopular)
	}
	if parts.locale && profile.LocaleAffinity > 0 {
		out = append(out, ReasonLocale)
	}
	if parts.readingTime > reasonReadingTimeThreshold {
		out = append(out, ReasonFitsReadingTime)
	}
	if parts.similarity > reasonSimilarityThreshold {
		out = append(out, ReasonSimilarReads)
	}
	return out
}
