// Package eval is a lightweight regression harness for the
// deterministic resolution path. It runs labelled complaints through
// the knowledge base and checks that expected codes surface, so
// taxonomy or dictionary edits that silently change resolution behavior
// show up before a release.
package eval

import (
	"fmt"
	"strings"

	"github.com/fysioscribe/dcsph-engine/internal/kb"
)

// #region harness

// Harness runs fixtures against the knowledge base.
type Harness struct{}

func NewHarness() *Harness {
	return &Harness{}
}

// Run evaluates all fixtures. A fixture passes when every expected code
// appears among the suggestions, or when a clarification was expected
// and asked.
func (h *Harness) Run(fixtures []Fixture) Report {
	report := Report{Total: len(fixtures)}
	for _, f := range fixtures {
		cr := h.runCase(f)
		if cr.Pass {
			report.Passed++
		}
		report.Cases = append(report.Cases, cr)
	}
	return report
}

func (h *Harness) runCase(f Fixture) CaseResult {
	res := kb.Resolve(f.Query)

	cr := CaseResult{
		Name:             f.Name,
		GotClarification: res.NeedsClarification,
	}
	for _, s := range res.Suggestions {
		cr.GotCodes = append(cr.GotCodes, s.Code.Code)
	}

	if f.WantClarification {
		cr.Pass = res.NeedsClarification
		if !cr.Pass {
			cr.Reason = fmt.Sprintf("expected a clarification, got codes %s", strings.Join(cr.GotCodes, ","))
		}
		return cr
	}

	if res.NeedsClarification {
		cr.Reason = fmt.Sprintf("expected codes %s, got clarification %q", strings.Join(f.WantCodes, ","), res.ClarifyingQuestion)
		return cr
	}

	got := make(map[string]bool, len(cr.GotCodes))
	for _, c := range cr.GotCodes {
		got[c] = true
	}
	for _, want := range f.WantCodes {
		if !got[want] {
			cr.Reason = fmt.Sprintf("missing code %s in %s", want, strings.Join(cr.GotCodes, ","))
			return cr
		}
	}
	cr.Pass = true
	return cr
}

// #endregion

// #region fixtures

// DefaultFixtures is the built-in regression set covering the shortcut
// table, the keyword search path, and the clarification rules.
func DefaultFixtures() []Fixture {
	return []Fixture{
		{
			Name:      "knie_traplopen",
			Query:     "pijn in de knie bij traplopen",
			WantCodes: []string{"7320"},
		},
		{
			Name:      "enkel_verzwikt",
			Query:     "mijn enkel is verzwikt en gezwollen",
			WantCodes: []string{"7531"},
		},
		{
			Name:      "schouder_heffen",
			Query:     "pijn in de schouder bij het heffen van de arm",
			WantCodes: []string{"4120"},
		},
		{
			Name:      "heup_artrose_zoekpad",
			Query:     "artrose van het heupgewricht sinds vorig jaar",
			WantCodes: []string{"7123"},
		},
		{
			Name:              "alleen_pijn",
			Query:             "pijn",
			WantClarification: true,
		},
		{
			Name:              "locatie_zonder_klacht",
			Query:             "klachten aan de knie",
			WantClarification: true,
		},
	}
}

// #endregion
