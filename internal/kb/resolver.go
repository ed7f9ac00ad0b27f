// Package kb is the deterministic knowledge-base resolution path: token
// expansion, curated symptom-pattern shortcuts, and relevance-ranked
// keyword search over the taxonomy tables. It is the fallback when the
// AI-assisted path fails, and needs no model call.
package kb

import (
	"sort"
	"strings"

	"github.com/fysioscribe/dcsph-engine/internal/codes"
	"github.com/fysioscribe/dcsph-engine/internal/pattern"
	"github.com/fysioscribe/dcsph-engine/internal/taxonomy"
)

// #region result

// Source tells which path produced a knowledge-base result.
type Source string

const (
	SourceShortcut Source = "shortcut"
	SourceSearch   Source = "search"
)

// Result is the outcome of one knowledge-base resolution.
type Result struct {
	Suggestions        []codes.Suggestion
	NeedsClarification bool
	ClarifyingQuestion string
	Confidence         float64
	Source             Source
}

// #endregion

// #region constants

const (
	// With more location candidates than this and a very short query,
	// the resolver asks for specificity instead of guessing.
	maxLocationsBeforeClarify = 5
	minWordsForBroadQuery     = 4
)

// #endregion

// #region resolve

// Resolve runs the deterministic pipeline over a complaint query.
// Extra strings (answers from earlier clarification rounds) are folded
// into the search text.
func Resolve(query string, extra ...string) Result {
	text := query
	if len(extra) > 0 {
		text = query + " " + strings.Join(extra, " ")
	}
	normalized := pattern.Normalize(text)
	queryWords := strings.Fields(normalized)
	tokens := expandTokens(tokenize(normalized))

	// Curated multi-word patterns short-circuit the search.
	if sc, ok := matchShortcut(tokens); ok {
		return shortcutResult(sc)
	}

	locMatches := searchLocations(tokens)
	patMatches := searchPathologies(tokens)

	switch {
	case len(locMatches) == 0:
		return clarify("In welk deel van het lichaam zit de klacht? Bijvoorbeeld knie, schouder of onderrug.")
	case len(patMatches) == 0:
		return clarify("Wat voor soort klacht is het? Bijvoorbeeld pijn na een val, een ontsteking of slijtage.")
	case len(locMatches) > maxLocationsBeforeClarify && len(queryWords) < minWordsForBroadQuery:
		return clarify("Kunt u de klacht specifieker beschrijven? Noem de plek en hoe de klacht is ontstaan.")
	}

	suggestions := codes.GenerateSuggestions(locMatches, patMatches, codes.DefaultMaxSuggestions)
	return Result{
		Suggestions: suggestions,
		Confidence:  meanConfidence(suggestions),
		Source:      SourceSearch,
	}
}

func clarify(question string) Result {
	return Result{
		NeedsClarification: true,
		ClarifyingQuestion: question,
		Source:             SourceSearch,
	}
}

func meanConfidence(suggestions []codes.Suggestion) float64 {
	if len(suggestions) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range suggestions {
		total += s.Confidence
	}
	return total / float64(len(suggestions))
}

// #endregion

// #region shortcut-result

// shortcutResult emits a suggestion for every legal pair registered
// under the shortcut, at the fixed shortcut confidence.
func shortcutResult(sc shortcut) Result {
	var suggestions []codes.Suggestion
	for _, pair := range sc.pairs {
		if !taxonomy.IsLogicalCombinationCodes(pair.location, pair.pathology) {
			continue
		}
		code, ok := taxonomy.BuildCode(pair.location, pair.pathology)
		if !ok {
			continue
		}
		suggestions = append(suggestions, codes.Suggestion{
			Code:       code,
			Confidence: shortcutConfidence,
			Rationale:  codes.SelectRationale(code.Location, code.Pathology),
		})
		if len(suggestions) == codes.DefaultMaxSuggestions {
			break
		}
	}

	if len(suggestions) == 0 {
		// A shortcut whose pairs are all illegal cannot happen with the
		// current table, but degrade to search rather than going silent.
		return clarify("Kunt u de klacht specifieker beschrijven?")
	}

	return Result{
		Suggestions: suggestions,
		Confidence:  meanConfidence(suggestions),
		Source:      SourceShortcut,
	}
}

// #endregion

// #region keyword-search

// searchLocations ranks location entries by how many query tokens their
// description contains.
func searchLocations(tokens []string) []taxonomy.LocationCode {
	type scored struct {
		loc   taxonomy.LocationCode
		count int
	}
	var hits []scored
	for _, loc := range taxonomy.Locations() {
		if c := containmentCount(loc.Description, tokens); c > 0 {
			hits = append(hits, scored{loc, c})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })

	out := make([]taxonomy.LocationCode, len(hits))
	for i, h := range hits {
		out[i] = h.loc
	}
	return out
}

// searchPathologies ranks pathology entries the same way.
func searchPathologies(tokens []string) []taxonomy.PathologyCode {
	type scored struct {
		pat   taxonomy.PathologyCode
		count int
	}
	var hits []scored
	for _, pat := range taxonomy.Pathologies() {
		if c := containmentCount(pat.Description, tokens); c > 0 {
			hits = append(hits, scored{pat, c})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })

	out := make([]taxonomy.PathologyCode, len(hits))
	for i, h := range hits {
		out[i] = h.pat
	}
	return out
}

// containmentCount counts tokens of length >= 3 that occur as a
// substring of the lowercased description.
func containmentCount(description string, tokens []string) int {
	desc := strings.ToLower(description)
	count := 0
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		if strings.Contains(desc, tok) {
			count++
		}
	}
	return count
}

// #endregion
