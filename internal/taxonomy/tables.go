package taxonomy

// Curated subset of the DCSPH tables covering the complaints the intake
// product handles. Codes follow the national Lijst A / Lijst B numbering.

// #region location-table

var locationTable = []LocationCode{
	{Code: "10", Description: "Hoofd", Region: RegionHead},
	{Code: "11", Description: "Aangezicht", Region: RegionHead},
	{Code: "13", Description: "Hals/nek", Region: RegionNeck},
	{Code: "20", Description: "Thorax/borstkas", Region: RegionThorax},
	{Code: "22", Description: "Weke delen van de romp", Region: RegionThorax, SoftTissueOnly: true},
	{Code: "30", Description: "Cervicale wervelkolom", Region: RegionSpine},
	{Code: "32", Description: "Thoracale wervelkolom", Region: RegionSpine},
	{Code: "34", Description: "Lumbale wervelkolom", Region: RegionSpine},
	{Code: "35", Description: "Lumbosacrale overgang", Region: RegionSpine},
	{Code: "36", Description: "Sacrum en SI-gewrichten", Region: RegionSpine},
	{Code: "41", Description: "Schoudergewricht", Region: RegionUpperExtremity},
	{Code: "42", Description: "Bovenarm", Region: RegionUpperExtremity},
	{Code: "43", Description: "Elleboog", Region: RegionUpperExtremity},
	{Code: "44", Description: "Onderarm", Region: RegionUpperExtremity},
	{Code: "45", Description: "Polsgewricht", Region: RegionUpperExtremity},
	{Code: "46", Description: "Hand/vingers", Region: RegionUpperExtremity},
	{Code: "71", Description: "Heupgewricht", Region: RegionLowerExtremity},
	{Code: "72", Description: "Bovenbeen", Region: RegionLowerExtremity},
	{Code: "73", Description: "Kniegewricht", Region: RegionLowerExtremity},
	{Code: "74", Description: "Onderbeen", Region: RegionLowerExtremity},
	{Code: "75", Description: "Enkelgewricht", Region: RegionLowerExtremity},
	{Code: "76", Description: "Voet/tenen", Region: RegionLowerExtremity},
	{Code: "79", Description: "Gecombineerd knie/onderbeen/voet", Region: RegionLowerExtremity},
}

// #endregion

// #region pathology-table

var pathologyTable = []PathologyCode{
	{Code: "00", Description: "Geen specifieke pathologie", Category: CategoryOther},
	{Code: "20", Description: "Epicondylitis/tendinitis/tendovaginitis", Category: CategoryInflammatory},
	{Code: "21", Description: "Bursitis/capsulitis", Category: CategoryInflammatory},
	{Code: "22", Description: "Chondropathie/meniscuslaesie", Category: CategoryDegenerative},
	{Code: "23", Description: "Artrose", Category: CategoryDegenerative},
	{Code: "26", Description: "Spierverrekking/myalgie", Category: CategoryMuscular},
	{Code: "27", Description: "Discusdegeneratie", Category: CategoryDegenerative, SpineOnly: true},
	{Code: "31", Description: "Distorsie", Category: CategoryTraumatic},
	{Code: "32", Description: "Contusie", Category: CategoryTraumatic},
	{Code: "33", Description: "Luxatie", Category: CategoryTraumatic},
	{Code: "36", Description: "Fractuur", Category: CategoryFracture},
	{Code: "38", Description: "Hernia nuclei pulposi (HNP)", Category: CategoryNeurological, SpineOnly: true},
	{Code: "70", Description: "Claudicatio intermittens", Category: CategoryCardiovascular},
	{Code: "71", Description: "Perifeer vaatlijden", Category: CategoryCardiovascular},
	{Code: "72", Description: "Lymfoedeem", Category: CategoryCardiovascular},
	{Code: "75", Description: "Parese/paralyse", Category: CategoryNeurological},
	{Code: "80", Description: "Whiplash/acceleratietrauma", Category: CategoryTraumatic},
	{Code: "81", Description: "Instabiliteit", Category: CategoryOther},
}

// #endregion

// #region indexes

var (
	locationIndex  = make(map[string]LocationCode, len(locationTable))
	pathologyIndex = make(map[string]PathologyCode, len(pathologyTable))
)

func init() {
	for _, loc := range locationTable {
		locationIndex[loc.Code] = loc
	}
	for _, pat := range pathologyTable {
		pathologyIndex[pat.Code] = pat
	}
}

// #endregion
