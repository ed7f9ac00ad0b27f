package kb

import "strings"

// #region synonym-dictionary

// synonymDict maps lay Dutch terms to the canonical medical terms used
// in the taxonomy descriptions. Expansion is bidirectional: a query
// token matches a key when either contains the other.
var synonymDict = map[string][]string{
	"rug":        {"wervelkolom"},
	"onderrug":   {"lumbale"},
	"lage":       {"lumbale"},
	"nek":        {"cervicale", "hals"},
	"knieschijf": {"knie"},
	"kuit":       {"onderbeen"},
	"scheen":     {"onderbeen"},
	"teen":       {"voet"},
	"hiel":       {"voet"},
	"lies":       {"heup"},
	"dij":        {"bovenbeen"},
	"hamstring":  {"bovenbeen"},
	"vinger":     {"hand"},
	"duim":       {"hand"},

	"ontsteking":   {"tendinitis", "bursitis"},
	"peesklacht":   {"tendinitis"},
	"slijtage":     {"artrose"},
	"gebroken":     {"fractuur"},
	"breuk":        {"fractuur"},
	"verzwikt":     {"distorsie"},
	"verstuikt":    {"distorsie"},
	"omgeslagen":   {"distorsie"},
	"gekneusd":     {"contusie"},
	"kneuzing":     {"contusie"},
	"spierpijn":    {"myalgie"},
	"verrekking":   {"spierverrekking"},
	"zweepslag":    {"spierverrekking"},
	"uitstral":     {"hnp"},
	"zenuwpijn":    {"hnp"},
	"slijmbeurs":   {"bursitis"},
	"meniscus":     {"meniscuslaesie"},
	"zwikken":      {"instabiliteit"},
	"etalagebenen": {"claudicatio"},
}

// #endregion

// #region expand

// expandTokens returns the query tokens plus every canonical term whose
// dictionary key shares a substring with a token. Original tokens come
// first; expansion order is not significant downstream.
func expandTokens(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}

	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		for key, canonicals := range synonymDict {
			if !strings.Contains(tok, key) && !strings.Contains(key, tok) {
				continue
			}
			for _, c := range canonicals {
				if !seen[c] {
					seen[c] = true
					out = append(out, c)
				}
			}
		}
	}
	return out
}

// #endregion
