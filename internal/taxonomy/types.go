package taxonomy

// #region region

// Region groups body-location codes into anatomical regions.
type Region string

const (
	RegionHead           Region = "head"
	RegionNeck           Region = "neck"
	RegionThorax         Region = "thorax"
	RegionSpine          Region = "spine"
	RegionUpperExtremity Region = "upper_extremity"
	RegionLowerExtremity Region = "lower_extremity"
)

// #endregion

// #region category

// Category groups pathology codes into clinical families.
type Category string

const (
	CategoryInflammatory   Category = "inflammatory"
	CategoryDegenerative   Category = "degenerative"
	CategoryTraumatic      Category = "traumatic"
	CategoryFracture       Category = "fracture"
	CategoryNeurological   Category = "neurological"
	CategoryCardiovascular Category = "cardiovascular"
	CategoryMuscular       Category = "muscular"
	CategoryOther          Category = "other"
)

// #endregion

// #region location-code

// LocationCode is a 2-digit DCSPH body-location entry (Lijst A).
type LocationCode struct {
	Code        string
	Description string
	Region      Region
	// SoftTissueOnly marks locations without bony structures; fracture
	// pathologies are never legal against them.
	SoftTissueOnly bool
}

// #endregion

// #region pathology-code

// PathologyCode is a 2-digit DCSPH pathology entry (Lijst B).
type PathologyCode struct {
	Code        string
	Description string
	Category    Category
	// SpineOnly marks disc and vertebral pathologies that only make
	// sense against spine-region locations.
	SpineOnly bool
}

// #endregion

// #region dcsph-code

// DCSPHCode is a composite 4-digit code: 2-digit location + 2-digit pathology.
// It is derived from the two tables and never persisted on its own.
type DCSPHCode struct {
	Code            string
	Location        LocationCode
	Pathology       PathologyCode
	FullDescription string
}

// #endregion
