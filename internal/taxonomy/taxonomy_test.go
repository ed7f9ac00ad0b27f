package taxonomy

import "testing"

func TestGetLocation(t *testing.T) {
	loc, ok := GetLocation("79")
	if !ok {
		t.Fatal("expected location 79 to exist")
	}
	if loc.Region != RegionLowerExtremity {
		t.Fatalf("expected lower extremity region, got %s", loc.Region)
	}

	if _, ok := GetLocation("99"); ok {
		t.Fatal("expected location 99 to be unknown")
	}
}

func TestGetPathology(t *testing.T) {
	pat, ok := GetPathology("20")
	if !ok {
		t.Fatal("expected pathology 20 to exist")
	}
	if pat.Category != CategoryInflammatory {
		t.Fatalf("expected inflammatory category, got %s", pat.Category)
	}

	if _, ok := GetPathology("99"); ok {
		t.Fatal("expected pathology 99 to be unknown")
	}
}

func TestBuildCodeRoundTrip(t *testing.T) {
	// Every legal pair must decompose back into exactly its parts.
	for _, loc := range Locations() {
		for _, pat := range Pathologies() {
			code, ok := BuildCode(loc.Code, pat.Code)
			if !ok {
				t.Fatalf("BuildCode(%s, %s) failed", loc.Code, pat.Code)
			}
			if code.Code != loc.Code+pat.Code {
				t.Fatalf("expected %s%s, got %s", loc.Code, pat.Code, code.Code)
			}
			if code.Code[:2] != loc.Code || code.Code[2:] != pat.Code {
				t.Fatalf("code %s does not decompose into (%s, %s)", code.Code, loc.Code, pat.Code)
			}
			if code.Location.Code != loc.Code || code.Pathology.Code != pat.Code {
				t.Fatalf("embedded entries mismatch for %s", code.Code)
			}
		}
	}
}

func TestBuildCodeUnknownParts(t *testing.T) {
	if _, ok := BuildCode("99", "20"); ok {
		t.Fatal("expected failure for unknown location")
	}
	if _, ok := BuildCode("79", "99"); ok {
		t.Fatal("expected failure for unknown pathology")
	}
}

func TestCardiovascularNeverOnExtremity(t *testing.T) {
	for _, loc := range Locations() {
		if loc.Region != RegionUpperExtremity && loc.Region != RegionLowerExtremity {
			continue
		}
		for _, pat := range Pathologies() {
			if pat.Category != CategoryCardiovascular {
				continue
			}
			if IsLogicalCombination(loc, pat) {
				t.Fatalf("cardiovascular pathology %s allowed on extremity %s", pat.Code, loc.Code)
			}
		}
	}
}

func TestFractureNeverOnSoftTissue(t *testing.T) {
	loc, _ := GetLocation("22") // weke delen van de romp
	if !loc.SoftTissueOnly {
		t.Fatal("expected location 22 to be soft-tissue only")
	}
	pat, _ := GetPathology("36") // fractuur
	if IsLogicalCombination(loc, pat) {
		t.Fatal("fracture allowed on soft-tissue-only location")
	}
}

func TestSpineOnlyPathologies(t *testing.T) {
	knee, _ := GetLocation("73")
	spine, _ := GetLocation("34")
	hnp, _ := GetPathology("38")

	if IsLogicalCombination(knee, hnp) {
		t.Fatal("HNP allowed on knee")
	}
	if !IsLogicalCombination(spine, hnp) {
		t.Fatal("HNP rejected on lumbar spine")
	}
}

func TestIsLogicalCombinationCodes(t *testing.T) {
	cases := []struct {
		loc, pat string
		want     bool
	}{
		{"79", "20", true},  // knie/onderbeen/voet + tendinitis
		{"73", "70", false}, // knie + claudicatio
		{"22", "36", false}, // weke delen + fractuur
		{"99", "20", false}, // unknown location
		{"34", "99", false}, // unknown pathology
	}
	for _, c := range cases {
		if got := IsLogicalCombinationCodes(c.loc, c.pat); got != c.want {
			t.Errorf("IsLogicalCombinationCodes(%s, %s) = %v, want %v", c.loc, c.pat, got, c.want)
		}
	}
}

func TestFullDescription(t *testing.T) {
	code, ok := BuildCode("79", "20")
	if !ok {
		t.Fatal("BuildCode(79, 20) failed")
	}
	want := "Epicondylitis/tendinitis/tendovaginitis van Gecombineerd knie/onderbeen/voet"
	if code.FullDescription != want {
		t.Fatalf("unexpected full description: %q", code.FullDescription)
	}
}
