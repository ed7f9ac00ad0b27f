package pattern

// #region category

// Category labels what a matched term tells us about the complaint.
type Category string

const (
	CategoryLocation  Category = "location"
	CategoryPathology Category = "pathology"
	CategorySymptom   Category = "symptom"
	CategoryMechanism Category = "mechanism"
	CategoryTiming    Category = "timing"
)

// Categories lists all match categories in analysis order.
var Categories = []Category{
	CategoryLocation, CategoryPathology, CategorySymptom,
	CategoryMechanism, CategoryTiming,
}

// #endregion

// #region term-pattern

// TermPattern is one curated Dutch medical term with its synonyms,
// weight, and optionally associated DCSPH sub-codes.
type TermPattern struct {
	Canonical      string
	Synonyms       []string
	Category       Category
	Weight         float64
	LocationCodes  []string // 2-digit location codes, location terms only
	PathologyCodes []string // 2-digit pathology codes, pathology terms only
}

// #endregion

// #region match

// Match is a single scored term hit in the analyzed text.
type Match struct {
	Term           string // canonical term
	Matched        string // the synonym (or canonical) that actually hit
	Category       Category
	Confidence     float64
	LocationCodes  []string
	PathologyCodes []string
}

// #endregion

// #region analysis

// Analysis is the full output of scanning a free-text complaint.
type Analysis struct {
	Matches           map[Category][]Match // per category, sorted by confidence desc
	OverallConfidence float64
	SuggestedCodes    []string // coarse 4-digit pre-filter, max 5
}

// Sufficiency reports whether the analyzed text carries enough signal
// to attempt code resolution.
type Sufficiency struct {
	MissingCategories []Category
	Recommendations   []string
}

// Sufficient returns true when no category is reported missing.
func (s Sufficiency) Sufficient() bool {
	return len(s.MissingCategories) == 0
}

// #endregion
