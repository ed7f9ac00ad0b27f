package pattern

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Pijn in de KNIE!", "pijn in de knie"},
		{"  veel   spaties  ", "veel spaties"},
		{"pijn, zwelling; stijfheid.", "pijn zwelling stijfheid"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAnalyzeKneeComplaint(t *testing.T) {
	a := Analyze("pijn in de knie bij traplopen")

	locs := a.Matches[CategoryLocation]
	if len(locs) == 0 {
		t.Fatal("expected a location match")
	}
	if locs[0].Term != "knie" {
		t.Fatalf("expected knie as top location, got %s", locs[0].Term)
	}
	if len(a.Matches[CategorySymptom]) == 0 {
		t.Fatal("expected a symptom match for pijn")
	}
	if len(a.Matches[CategoryMechanism]) == 0 {
		t.Fatal("expected a mechanism match for traplopen")
	}
	if a.OverallConfidence <= 0.3 {
		t.Fatalf("expected overall confidence > 0.3, got %.2f", a.OverallConfidence)
	}
}

func TestAnalyzeNoRecognizedTerms(t *testing.T) {
	a := Analyze("xyzzy frobnicate plugh")

	if a.OverallConfidence != 0 {
		t.Fatalf("expected zero confidence, got %.2f", a.OverallConfidence)
	}
	for _, cat := range Categories {
		if len(a.Matches[cat]) != 0 {
			t.Fatalf("expected no %s matches", cat)
		}
	}
	if len(a.SuggestedCodes) != 0 {
		t.Fatalf("expected no suggested codes, got %v", a.SuggestedCodes)
	}
}

func TestConfidenceAlwaysInRange(t *testing.T) {
	queries := []string{
		"pijn in de knie bij traplopen",
		"tendinitis van de schouder met uitstralende pijn sinds twee weken",
		"gebroken pols na een val tijdens het sporten",
		"chronische lage rugpijn met tintelingen in het been",
		"",
	}
	for _, q := range queries {
		a := Analyze(q)
		if a.OverallConfidence < 0 || a.OverallConfidence > 1 {
			t.Fatalf("overall confidence out of range for %q: %.2f", q, a.OverallConfidence)
		}
		for _, list := range a.Matches {
			for _, m := range list {
				if m.Confidence < 0 || m.Confidence > 1 {
					t.Fatalf("match confidence out of range: %+v", m)
				}
			}
		}
	}
}

func TestSynonymScoresBelowCanonical(t *testing.T) {
	canonical := Analyze("artrose in de heup")
	synonym := Analyze("slijtage in de heup")

	cTop := canonical.Matches[CategoryPathology][0]
	sTop := synonym.Matches[CategoryPathology][0]
	if cTop.Term != "artrose" || sTop.Term != "artrose" {
		t.Fatalf("expected artrose pattern for both, got %s / %s", cTop.Term, sTop.Term)
	}
	if sTop.Confidence >= cTop.Confidence {
		t.Fatalf("synonym hit (%.3f) should score below canonical (%.3f)",
			sTop.Confidence, cTop.Confidence)
	}
	if sTop.Matched != "slijtage" {
		t.Fatalf("expected matched synonym slijtage, got %s", sTop.Matched)
	}
}

func TestWholeWordMatchingOnly(t *testing.T) {
	// "handig" must not trigger the hand location.
	a := Analyze("dat is wel handig")
	if len(a.Matches[CategoryLocation]) != 0 {
		t.Fatalf("substring hit leaked through: %+v", a.Matches[CategoryLocation])
	}
}

func TestSuggestedCodesAreLegalAndCapped(t *testing.T) {
	a := Analyze("tendinitis en artrose van knie en enkel en heup")

	if len(a.SuggestedCodes) == 0 {
		t.Fatal("expected suggested codes")
	}
	if len(a.SuggestedCodes) > 5 {
		t.Fatalf("expected at most 5 suggested codes, got %d", len(a.SuggestedCodes))
	}
	seen := make(map[string]bool)
	for _, code := range a.SuggestedCodes {
		if len(code) != 4 {
			t.Fatalf("expected 4-digit code, got %q", code)
		}
		if seen[code] {
			t.Fatalf("duplicate suggested code %s", code)
		}
		seen[code] = true
	}
}

func TestSufficiencyMissingLocation(t *testing.T) {
	s := CheckSufficiency(Analyze("pijn bij het bukken"))
	if s.Sufficient() {
		t.Fatal("expected insufficiency without a location")
	}
	if s.MissingCategories[0] != CategoryLocation {
		t.Fatalf("expected location reported missing, got %v", s.MissingCategories)
	}
}

func TestSufficiencySymptomCoversPathology(t *testing.T) {
	// A symptom match suppresses the missing-pathology report.
	s := CheckSufficiency(Analyze("pijn in de knie"))
	for _, cat := range s.MissingCategories {
		if cat == CategoryPathology {
			t.Fatal("pathology should not be missing when a symptom matched")
		}
	}
}

func TestSufficiencySpecificityRecommendation(t *testing.T) {
	// All categories covered but mostly weak matches.
	a := Analyze("pijn in de knie")
	s := CheckSufficiency(a)
	if a.OverallConfidence >= 0.7 {
		t.Skipf("fixture confidence %.2f no longer below threshold", a.OverallConfidence)
	}
	if len(s.Recommendations) == 0 {
		t.Fatal("expected a specificity recommendation")
	}
}

func TestSufficiencySpecificityWithMissingCategory(t *testing.T) {
	// Weak matches trigger the nudge even while a category is missing.
	a := Analyze("last bij het bukken")
	s := CheckSufficiency(a)
	if a.OverallConfidence == 0 || a.OverallConfidence >= 0.7 {
		t.Skipf("fixture confidence %.2f not a weak match", a.OverallConfidence)
	}
	if len(s.MissingCategories) == 0 {
		t.Fatal("fixture should miss a category")
	}
	found := false
	for _, r := range s.Recommendations {
		if strings.Contains(r, "specifieker") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a specificity recommendation, got %v", s.Recommendations)
	}
}
