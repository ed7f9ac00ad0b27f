// Package pattern scores free-text Dutch complaint descriptions against
// curated medical term tables. Pure string analysis, no model call.
package pattern

import (
	"sort"
	"strings"
	"unicode"

	"github.com/fysioscribe/dcsph-engine/internal/taxonomy"
)

// #region constants

const (
	synonymFactor   = 0.9
	longTermFactor  = 1.1
	longTermMinLen  = 7
	maxSuggested    = 5
	topCodesPerSide = 3
	// Below this mean confidence the sufficiency check asks for a more
	// specific description even when all categories are covered.
	specificityThreshold = 0.7
)

// #endregion

// #region normalize

// Normalize lowercases text, strips punctuation, and collapses whitespace.
func Normalize(text string) string {
	lower := strings.ToLower(text)
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, lower)
	return strings.Join(strings.Fields(mapped), " ")
}

// containsWholeWord reports whether term occurs in normalized text on
// word boundaries. Handles multi-word terms.
func containsWholeWord(normalized, term string) bool {
	if term == "" {
		return false
	}
	padded := " " + normalized + " "
	return strings.Contains(padded, " "+term+" ")
}

// #endregion

// #region analyze

// Analyze scans text for term hits and returns the categorized,
// confidence-sorted analysis.
func Analyze(text string) Analysis {
	normalized := Normalize(text)

	matches := make(map[Category][]Match)
	total := 0.0
	count := 0

	for _, tp := range allTerms() {
		m, ok := matchPattern(normalized, tp)
		if !ok {
			continue
		}
		matches[m.Category] = append(matches[m.Category], m)
		total += m.Confidence
		count++
	}

	for cat := range matches {
		list := matches[cat]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Confidence > list[j].Confidence
		})
	}

	overall := 0.0
	if count > 0 {
		overall = total / float64(count)
	}

	return Analysis{
		Matches:           matches,
		OverallConfidence: overall,
		SuggestedCodes:    suggestCodes(matches),
	}
}

// matchPattern returns the best-scoring hit for one pattern: the
// canonical term beats its synonyms when both occur.
func matchPattern(normalized string, tp TermPattern) (Match, bool) {
	hit := ""
	synonym := false

	if containsWholeWord(normalized, Normalize(tp.Canonical)) {
		hit = tp.Canonical
	} else {
		for _, syn := range tp.Synonyms {
			if containsWholeWord(normalized, Normalize(syn)) {
				hit = syn
				synonym = true
				break
			}
		}
	}
	if hit == "" {
		return Match{}, false
	}

	conf := tp.Weight
	if synonym {
		conf *= synonymFactor
	}
	if len(hit) >= longTermMinLen {
		conf *= longTermFactor
	}
	if conf > 1.0 {
		conf = 1.0
	}

	return Match{
		Term:           tp.Canonical,
		Matched:        hit,
		Category:       tp.Category,
		Confidence:     conf,
		LocationCodes:  tp.LocationCodes,
		PathologyCodes: tp.PathologyCodes,
	}, true
}

// #endregion

// #region suggest-codes

// suggestCodes cross-combines the top location and pathology matches
// into 4-digit codes. This is a coarse pre-filter, not a ranked list;
// illogical combinations are excluded outright.
func suggestCodes(matches map[Category][]Match) []string {
	locs := topWithCodes(matches[CategoryLocation], func(m Match) []string { return m.LocationCodes })
	pats := topWithCodes(matches[CategoryPathology], func(m Match) []string { return m.PathologyCodes })

	seen := make(map[string]bool)
	var codes []string
	for _, lm := range locs {
		for _, pm := range pats {
			for _, lc := range lm.LocationCodes {
				for _, pc := range pm.PathologyCodes {
					code := lc + pc
					if seen[code] || !taxonomy.IsLogicalCombinationCodes(lc, pc) {
						continue
					}
					seen[code] = true
					codes = append(codes, code)
					if len(codes) >= maxSuggested {
						return codes
					}
				}
			}
		}
	}
	return codes
}

func topWithCodes(list []Match, codes func(Match) []string) []Match {
	var out []Match
	for _, m := range list {
		if len(codes(m)) == 0 {
			continue
		}
		out = append(out, m)
		if len(out) == topCodesPerSide {
			break
		}
	}
	return out
}

// #endregion

// #region sufficiency

// CheckSufficiency reports which categories the text leaves unaddressed.
// A symptom match counts as weak pathology signal: only when both are
// absent is pathology reported missing.
func CheckSufficiency(a Analysis) Sufficiency {
	var s Sufficiency

	if len(a.Matches[CategoryLocation]) == 0 {
		s.MissingCategories = append(s.MissingCategories, CategoryLocation)
		s.Recommendations = append(s.Recommendations,
			"Geef aan waar in het lichaam de klacht zit.")
	}
	if len(a.Matches[CategoryPathology]) == 0 && len(a.Matches[CategorySymptom]) == 0 {
		s.MissingCategories = append(s.MissingCategories, CategoryPathology)
		s.Recommendations = append(s.Recommendations,
			"Beschrijf wat voor soort klacht het is (pijn, zwelling, stijfheid).")
	}

	// Any matches at all that average below the threshold warrant a
	// specificity nudge, also when a category is missing besides.
	if a.OverallConfidence > 0 && a.OverallConfidence < specificityThreshold {
		s.Recommendations = append(s.Recommendations,
			"Beschrijf de klacht specifieker voor een betrouwbaarder resultaat.")
	}

	return s
}

// #endregion
