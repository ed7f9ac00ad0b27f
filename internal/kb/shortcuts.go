package kb

// #region shortcut-table

// codePair registers one legal location x pathology combination under a
// symptom-pattern shortcut.
type codePair struct {
	location  string
	pathology string
}

// shortcut is a curated multi-word symptom pattern. It fires when at
// least 60% of its words occur in the expanded query tokens.
type shortcut struct {
	key   string // underscore-joined words, diagnostic only
	words []string
	pairs []codePair
}

const shortcutMatchFraction = 0.6

// shortcutConfidence is the fixed confidence for shortcut-derived
// suggestions.
const shortcutConfidence = 0.9

var shortcuts = []shortcut{
	{
		key:   "knie_pijn_traplopen",
		words: []string{"knie", "pijn", "traplopen"},
		pairs: []codePair{{"73", "20"}, {"79", "20"}, {"73", "23"}},
	},
	{
		key:   "pijn_voorkant_knie",
		words: []string{"pijn", "voorkant", "knie"},
		pairs: []codePair{{"73", "20"}, {"73", "22"}, {"79", "20"}},
	},
	{
		key:   "lage_rug_uitstraling_been",
		words: []string{"lage", "rug", "pijn", "uitstraling", "been"},
		pairs: []codePair{{"34", "38"}, {"35", "38"}, {"34", "27"}},
	},
	{
		key:   "enkel_verzwikt",
		words: []string{"enkel", "verzwikt", "omgeslagen", "gezwollen"},
		pairs: []codePair{{"75", "31"}, {"79", "31"}},
	},
	{
		key:   "schouder_pijn_heffen",
		words: []string{"schouder", "pijn", "heffen", "arm"},
		pairs: []codePair{{"41", "20"}, {"41", "21"}},
	},
	{
		key:   "tenniselleboog",
		words: []string{"elleboog", "pijn", "tennis"},
		pairs: []codePair{{"43", "20"}},
	},
	{
		key:   "nek_pijn_aanrijding",
		words: []string{"nek", "pijn", "aanrijding", "auto"},
		pairs: []codePair{{"30", "80"}, {"13", "26"}},
	},
}

// #endregion

// #region match

// matchShortcut returns the best-matching shortcut for the token set,
// or false when none reaches the presence threshold. Ties keep table
// order.
func matchShortcut(tokens []string) (shortcut, bool) {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}

	best := -1
	bestFraction := 0.0
	for i, sc := range shortcuts {
		present := 0
		for _, w := range sc.words {
			if set[w] {
				present++
			}
		}
		fraction := float64(present) / float64(len(sc.words))
		if fraction >= shortcutMatchFraction && fraction > bestFraction {
			best = i
			bestFraction = fraction
		}
	}
	if best < 0 {
		return shortcut{}, false
	}
	return shortcuts[best], true
}

// #endregion
