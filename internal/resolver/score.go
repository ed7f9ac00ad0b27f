package resolver

import (
	"strings"

	"github.com/fysioscribe/dcsph-engine/internal/codes"
	"github.com/fysioscribe/dcsph-engine/internal/pattern"
)

// #region suggestion scoring

const (
	scoreBase            = 0.5
	scoreFormattedCode   = 0.1
	scoreRationaleLong   = 0.1 // rationale over 50 chars
	scoreRationaleLonger = 0.1 // rationale over 100 chars
	scorePastBij         = 0.05
	scoreNameHasCode     = 0.05
	scoreMedicalTerms    = 0.1

	acceptThreshold = 0.5
)

// scoreSuggestion assigns a quality score to a single model suggestion.
// The score rewards surface signals of a careful answer; it says nothing
// about medical correctness, which is the validator's job.
func scoreSuggestion(s rawSuggestion) float64 {
	score := scoreBase
	if isFormattedCode(s.Code) {
		score += scoreFormattedCode
	}
	if len(s.Rationale) > 50 {
		score += scoreRationaleLong
	}
	if len(s.Rationale) > 100 {
		score += scoreRationaleLonger
	}
	if strings.Contains(strings.ToLower(s.Rationale), "past bij") {
		score += scorePastBij
	}
	if strings.Contains(s.Name, s.Code) {
		score += scoreNameHasCode
	}
	if hasMedicalTerminology(s.Rationale) {
		score += scoreMedicalTerms
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func isFormattedCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// hasMedicalTerminology reports whether the rationale mentions at least
// one recognized location or pathology term.
func hasMedicalTerminology(rationale string) bool {
	a := pattern.Analyze(rationale)
	return len(a.Matches[pattern.CategoryLocation]) > 0 ||
		len(a.Matches[pattern.CategoryPathology]) > 0
}

// validation is the verdict over a full model response.
type validation struct {
	scores       []float64
	meanScore    float64
	invalidCodes []string
	accepted     bool
}

// validateResponse checks every suggested code against the taxonomy and
// scores the response. A response is accepted only when no code is
// invalid and the mean score clears the threshold. Clarification-only
// responses carry no codes and are accepted as-is.
func validateResponse(resp modelResponse) validation {
	var v validation
	if resp.NeedsClarification && len(resp.Suggestions) == 0 {
		v.accepted = true
		return v
	}
	var sum float64
	for _, s := range resp.Suggestions {
		if !codes.IsValid(s.Code) {
			v.invalidCodes = append(v.invalidCodes, s.Code)
		}
		sc := scoreSuggestion(s)
		v.scores = append(v.scores, sc)
		sum += sc
	}
	if len(v.scores) > 0 {
		v.meanScore = sum / float64(len(v.scores))
	}
	v.accepted = len(v.invalidCodes) == 0 && v.meanScore > acceptThreshold
	return v
}

// #endregion
