package core

import "strings"

// localeKeywords is the fixed list of Beninese markers used for locale
// affinity and the locale content bonus. Matching is lowercase substring,
// so accented and plain spellings are both listed.
var localeKeywords = []string{
	"bénin", "benin", "béninois", "beninois",
	"cotonou", "porto-novo", "parakou", "abomey", "ouidah",
	"natitingou", "bohicon", "ganvié", "ganvie", "pendjari",
	"dahomey", "vodoun", "zémidjan", "zemidjan",
	"fcfa", "cfa", "uemoa", "cedeao",
}

// localeCategories are the sections treated as inherently local content.
var localeCategories = map[string]bool{
	"politique": true,
	"societe":   true,
	"economie":  true,
}

// ContainsLocaleKeyword reports whether the text mentions any Beninese
// marker.
func ContainsLocaleKeyword(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range localeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsLocaleCategory reports whether the category is inherently local.
func IsLocaleCategory(category string) bool {
	return localeCategories[strings.ToLower(category)]
}

// IsLocaleArticle reports whether an article counts as locale content:
// local category, Beninese keyword in its text, or a high locale-relevance
// mark from the catalog.
func IsLocaleArticle(a *Article) bool {
	if a == nil {
		return false
	}
	if IsLocaleCategory(a.Category) {
		return true
	}
	if a.LocaleRelevance >= 0.7 {
		return true
	}
	return ContainsLocaleKeyword(a.Title + " " + a.Excerpt)
}
