package eval

// #region types

// Fixture is one labelled complaint with the codes a correct resolution
// should surface.
type Fixture struct {
	Name              string   `json:"name"`
	Query             string   `json:"query"`
	WantCodes         []string `json:"want_codes,omitempty"`
	WantClarification bool     `json:"want_clarification,omitempty"`
}

// CaseResult is the verdict for one fixture.
type CaseResult struct {
	Name             string   `json:"name"`
	Pass             bool     `json:"pass"`
	GotCodes         []string `json:"got_codes,omitempty"`
	GotClarification bool     `json:"got_clarification"`
	Reason           string   `json:"reason,omitempty"`
}

// Report aggregates a harness run.
type Report struct {
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Cases  []CaseResult `json:"cases"`
}

// #endregion
