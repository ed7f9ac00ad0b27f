package codes

import (
	"sort"

	"github.com/fysioscribe/dcsph-engine/internal/taxonomy"
)

// #region suggestion

// Suggestion is one ranked DCSPH code candidate. Confidence is a
// heuristic ranking aid in [0,1], not a calibrated probability.
type Suggestion struct {
	Code       taxonomy.DCSPHCode
	Confidence float64
	Rationale  string
}

// #endregion

// #region constants

const (
	// DefaultMaxSuggestions caps a generated suggestion list.
	DefaultMaxSuggestions = 3
	// Only the top entries of each ranked input list take part in the
	// cross-product.
	crossProductDepth = 5
)

// #endregion

// #region generate

// GenerateSuggestions cross-combines ranked location and pathology
// candidates into scored code suggestions. Positional decay rewards
// higher-ranked inputs; illogical pairs are excluded silently.
func GenerateSuggestions(locations []taxonomy.LocationCode, pathologies []taxonomy.PathologyCode, max int) []Suggestion {
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	if len(locations) > crossProductDepth {
		locations = locations[:crossProductDepth]
	}
	if len(pathologies) > crossProductDepth {
		pathologies = pathologies[:crossProductDepth]
	}

	var out []Suggestion
	for li, loc := range locations {
		for pi, pat := range pathologies {
			if !taxonomy.IsLogicalCombination(loc, pat) {
				continue
			}
			code, ok := taxonomy.BuildCode(loc.Code, pat.Code)
			if !ok {
				continue
			}
			out = append(out, Suggestion{
				Code:       code,
				Confidence: (positionalScore(li) + positionalScore(pi)) / 2,
				Rationale:  SelectRationale(loc, pat),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// positionalScore decays with list rank and bottoms out at 0.5.
func positionalScore(index int) float64 {
	score := 1.0 - 0.1*float64(index)
	if score < 0.5 {
		return 0.5
	}
	return score
}

// #endregion
