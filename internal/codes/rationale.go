package codes

import (
	"fmt"
	"strings"

	"github.com/fysioscribe/dcsph-engine/internal/taxonomy"
)

// #region rationale-rules

// rationaleRule picks wording for a (pathology, location) pair via
// substring cues on the table descriptions. Rules are ordered; the
// first hit wins. Matching data lives in the taxonomy tables, wording
// lives here.
type rationaleRule struct {
	pathologyCue string // required, lowercase substring of the pathology description
	locationCue  string // optional, lowercase substring of the location description
	text         string
}

var rationaleRules = []rationaleRule{
	{
		pathologyCue: "tendinitis",
		locationCue:  "knie",
		text:         "Een peesontsteking rond de knie past bij pijn die toeneemt bij belasting, zoals traplopen of hurken.",
	},
	{
		pathologyCue: "artrose",
		locationCue:  "heup",
		text:         "Artrose van de heup past bij startpijn, ochtendstijfheid en pijn bij langer belasten.",
	},
	{
		pathologyCue: "artrose",
		locationCue:  "knie",
		text:         "Artrose van de knie past bij startpijn, stijfheid na rust en crepitaties bij bewegen.",
	},
	{
		pathologyCue: "fractuur",
		text:         "Een fractuur past bij een trauma met directe pijn, zwelling en belastingsbeperking.",
	},
	{
		pathologyCue: "distorsie",
		text:         "Een distorsie past bij een verzwikking met pijn en zwelling rond het gewricht.",
	},
	{
		pathologyCue: "contusie",
		text:         "Een contusie past bij een directe klap of val met lokale drukpijn.",
	},
	{
		pathologyCue: "discus",
		locationCue:  "wervelkolom",
		text:         "Discuspathologie van de wervelkolom past bij rugklachten met houdingsafhankelijke pijn.",
	},
	{
		pathologyCue: "hnp",
		locationCue:  "wervelkolom",
		text:         "Een HNP past bij rugklachten met uitstraling en eventueel tintelingen of krachtsverlies.",
	},
}

// #endregion

// #region select

// SelectRationale returns the rationale wording for a pair. Falls back
// to a generic sentence naming both table entries.
func SelectRationale(loc taxonomy.LocationCode, pat taxonomy.PathologyCode) string {
	patDesc := strings.ToLower(pat.Description)
	locDesc := strings.ToLower(loc.Description)

	for _, rule := range rationaleRules {
		if !strings.Contains(patDesc, rule.pathologyCue) {
			continue
		}
		if rule.locationCue != "" && !strings.Contains(locDesc, rule.locationCue) {
			continue
		}
		return rule.text
	}

	return fmt.Sprintf("%s in de regio %s past bij de beschreven klachten.",
		pat.Description, strings.ToLower(loc.Description))
}

// #endregion
