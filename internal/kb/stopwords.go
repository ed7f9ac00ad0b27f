package kb

import "strings"

// #region stopwords
// stopwords contains common Dutch function words excluded from keyword
// search and synonym expansion.
var stopwords = map[string]bool{
	"de": true, "het": true, "een": true, "en": true, "of": true,
	"in": true, "op": true, "aan": true, "bij": true, "met": true,
	"van": true, "voor": true, "naar": true, "door": true, "uit": true,
	"over": true, "onder": true, "tussen": true, "sinds": true,
	"vanuit": true, "na": true, "tot": true, "als": true, "dan": true,
	"ik": true, "mijn": true, "me": true, "mij": true, "je": true,
	"uw": true, "heb": true, "hebben": true, "heeft": true, "had": true,
	"ben": true, "is": true, "zijn": true, "was": true, "word": true,
	"wordt": true, "ook": true, "erg": true, "heel": true, "veel": true,
	"weer": true, "al": true, "nog": true, "wel": true, "niet": true,
	"geen": true, "dat": true, "dit": true, "die": true, "deze": true,
	"er": true, "soms": true, "vaak": true, "vooral": true,
}

// tokenize splits normalized text into unique non-stopword tokens of at
// least two characters, preserving first-seen order.
func tokenize(normalized string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, w := range strings.Fields(normalized) {
		if len(w) < 2 || stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		tokens = append(tokens, w)
	}
	return tokens
}

// #endregion stopwords
