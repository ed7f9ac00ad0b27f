// Package taxonomy holds the static DCSPH code tables and the legality
// rules for combining a body location with a pathology. All lookups are
// read-only and safe for concurrent use.
package taxonomy

import "fmt"

// #region lookups

// GetLocation returns the location entry for a 2-digit code.
func GetLocation(code string) (LocationCode, bool) {
	loc, ok := locationIndex[code]
	return loc, ok
}

// GetPathology returns the pathology entry for a 2-digit code.
func GetPathology(code string) (PathologyCode, bool) {
	pat, ok := pathologyIndex[code]
	return pat, ok
}

// Locations returns all location entries in table order.
func Locations() []LocationCode {
	out := make([]LocationCode, len(locationTable))
	copy(out, locationTable)
	return out
}

// Pathologies returns all pathology entries in table order.
func Pathologies() []PathologyCode {
	out := make([]PathologyCode, len(pathologyTable))
	copy(out, pathologyTable)
	return out
}

// #endregion

// #region build-code

// BuildCode composes a 4-digit DCSPH code from a location and pathology
// code. Returns false if either sub-code is unknown.
func BuildCode(locationCode, pathologyCode string) (DCSPHCode, bool) {
	loc, ok := locationIndex[locationCode]
	if !ok {
		return DCSPHCode{}, false
	}
	pat, ok := pathologyIndex[pathologyCode]
	if !ok {
		return DCSPHCode{}, false
	}
	return DCSPHCode{
		Code:            loc.Code + pat.Code,
		Location:        loc,
		Pathology:       pat,
		FullDescription: fmt.Sprintf("%s van %s", pat.Description, loc.Description),
	}, true
}

// #endregion

// #region logical-combination

// IsLogicalCombination applies the clinical exclusion rules. Every
// component that enumerates candidate codes must consult this predicate
// before offering a (location, pathology) pair.
func IsLogicalCombination(loc LocationCode, pat PathologyCode) bool {
	// Vascular pathologies are coded against the trunk, not a limb joint.
	if pat.Category == CategoryCardiovascular &&
		(loc.Region == RegionUpperExtremity || loc.Region == RegionLowerExtremity) {
		return false
	}

	// No fractures in locations without bony structures.
	if pat.Category == CategoryFracture && loc.SoftTissueOnly {
		return false
	}

	// Disc and vertebral pathologies only against the spine.
	if pat.SpineOnly && loc.Region != RegionSpine {
		return false
	}

	return true
}

// IsLogicalCombinationCodes is the code-keyed variant of
// IsLogicalCombination. Unknown sub-codes are never logical.
func IsLogicalCombinationCodes(locationCode, pathologyCode string) bool {
	loc, ok := locationIndex[locationCode]
	if !ok {
		return false
	}
	pat, ok := pathologyIndex[pathologyCode]
	if !ok {
		return false
	}
	return IsLogicalCombination(loc, pat)
}

// #endregion
