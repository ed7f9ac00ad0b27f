package pattern

// Curated Dutch complaint vocabulary. Weights reflect how strongly a
// term pins down its category, not statistical probabilities.

// #region location-terms

var locationTerms = []TermPattern{
	{Canonical: "knie", Synonyms: []string{"kniegewricht", "knieschijf", "patella"},
		Category: CategoryLocation, Weight: 0.9, LocationCodes: []string{"73", "79"}},
	{Canonical: "heup", Synonyms: []string{"heupgewricht", "lies"},
		Category: CategoryLocation, Weight: 0.9, LocationCodes: []string{"71"}},
	{Canonical: "schouder", Synonyms: []string{"schoudergewricht", "schouderblad"},
		Category: CategoryLocation, Weight: 0.9, LocationCodes: []string{"41"}},
	{Canonical: "elleboog", Synonyms: []string{"elleboogsgewricht"},
		Category: CategoryLocation, Weight: 0.9, LocationCodes: []string{"43"}},
	{Canonical: "pols", Synonyms: []string{"polsgewricht"},
		Category: CategoryLocation, Weight: 0.85, LocationCodes: []string{"45"}},
	{Canonical: "hand", Synonyms: []string{"vinger", "vingers", "duim"},
		Category: CategoryLocation, Weight: 0.8, LocationCodes: []string{"46"}},
	{Canonical: "enkel", Synonyms: []string{"enkelgewricht", "enkelband"},
		Category: CategoryLocation, Weight: 0.9, LocationCodes: []string{"75", "79"}},
	{Canonical: "voet", Synonyms: []string{"hiel", "tenen", "voetzool"},
		Category: CategoryLocation, Weight: 0.85, LocationCodes: []string{"76", "79"}},
	{Canonical: "nek", Synonyms: []string{"hals", "cervicaal"},
		Category: CategoryLocation, Weight: 0.85, LocationCodes: []string{"13", "30"}},
	{Canonical: "lage rug", Synonyms: []string{"onderrug", "lumbaal", "lende"},
		Category: CategoryLocation, Weight: 0.9, LocationCodes: []string{"34", "35"}},
	{Canonical: "rug", Synonyms: []string{"wervelkolom"},
		Category: CategoryLocation, Weight: 0.7, LocationCodes: []string{"32", "34"}},
	{Canonical: "bovenbeen", Synonyms: []string{"dij", "hamstring", "quadriceps"},
		Category: CategoryLocation, Weight: 0.85, LocationCodes: []string{"72"}},
	{Canonical: "onderbeen", Synonyms: []string{"kuit", "scheenbeen"},
		Category: CategoryLocation, Weight: 0.85, LocationCodes: []string{"74", "79"}},
	{Canonical: "bovenarm", Synonyms: []string{"biceps"},
		Category: CategoryLocation, Weight: 0.8, LocationCodes: []string{"42"}},
	{Canonical: "onderarm", Synonyms: nil,
		Category: CategoryLocation, Weight: 0.8, LocationCodes: []string{"44"}},
	{Canonical: "hoofd", Synonyms: []string{"achterhoofd", "slaap"},
		Category: CategoryLocation, Weight: 0.75, LocationCodes: []string{"10"}},
	{Canonical: "borst", Synonyms: []string{"borstkas", "ribben"},
		Category: CategoryLocation, Weight: 0.75, LocationCodes: []string{"20"}},
}

// #endregion

// #region pathology-terms

var pathologyTerms = []TermPattern{
	{Canonical: "peesontsteking", Synonyms: []string{"tendinitis", "tendinopathie", "peesirritatie"},
		Category: CategoryPathology, Weight: 0.95, PathologyCodes: []string{"20"}},
	{Canonical: "slijmbeursontsteking", Synonyms: []string{"bursitis"},
		Category: CategoryPathology, Weight: 0.95, PathologyCodes: []string{"21"}},
	{Canonical: "artrose", Synonyms: []string{"slijtage", "gewrichtsslijtage"},
		Category: CategoryPathology, Weight: 0.9, PathologyCodes: []string{"23"}},
	{Canonical: "meniscus", Synonyms: []string{"meniscusscheur", "meniscuslaesie"},
		Category: CategoryPathology, Weight: 0.95, PathologyCodes: []string{"22"}},
	{Canonical: "hernia", Synonyms: []string{"hnp", "uitstralende rugpijn"},
		Category: CategoryPathology, Weight: 0.9, PathologyCodes: []string{"38", "27"}},
	{Canonical: "botbreuk", Synonyms: []string{"fractuur", "gebroken"},
		Category: CategoryPathology, Weight: 0.95, PathologyCodes: []string{"36"}},
	{Canonical: "verstuiking", Synonyms: []string{"distorsie", "verzwikt", "verzwikking"},
		Category: CategoryPathology, Weight: 0.9, PathologyCodes: []string{"31"}},
	{Canonical: "kneuzing", Synonyms: []string{"contusie", "gekneusd"},
		Category: CategoryPathology, Weight: 0.9, PathologyCodes: []string{"32"}},
	{Canonical: "spierverrekking", Synonyms: []string{"verrekking", "spierscheur", "zweepslag"},
		Category: CategoryPathology, Weight: 0.9, PathologyCodes: []string{"26"}},
	{Canonical: "whiplash", Synonyms: []string{"acceleratietrauma"},
		Category: CategoryPathology, Weight: 0.95, PathologyCodes: []string{"80"}},
	{Canonical: "instabiliteit", Synonyms: []string{"instabiel", "zwikken"},
		Category: CategoryPathology, Weight: 0.8, PathologyCodes: []string{"81"}},
	{Canonical: "etalagebenen", Synonyms: []string{"claudicatio"},
		Category: CategoryPathology, Weight: 0.9, PathologyCodes: []string{"70"}},
}

// #endregion

// #region symptom-terms

var symptomTerms = []TermPattern{
	{Canonical: "pijn", Synonyms: []string{"pijnlijk", "zeer", "pijnklachten"},
		Category: CategorySymptom, Weight: 0.6},
	{Canonical: "zwelling", Synonyms: []string{"gezwollen", "dik", "vocht"},
		Category: CategorySymptom, Weight: 0.6},
	{Canonical: "stijfheid", Synonyms: []string{"stijf", "stram"},
		Category: CategorySymptom, Weight: 0.6},
	{Canonical: "tintelingen", Synonyms: []string{"tintelend", "doof gevoel", "prikkelingen"},
		Category: CategorySymptom, Weight: 0.65},
	{Canonical: "krachtsverlies", Synonyms: []string{"krachtverlies", "zwakte", "slap"},
		Category: CategorySymptom, Weight: 0.65},
	{Canonical: "bewegingsbeperking", Synonyms: []string{"beperkt bewegen", "niet strekken", "niet buigen"},
		Category: CategorySymptom, Weight: 0.6},
	{Canonical: "uitstraling", Synonyms: []string{"uitstralende pijn", "straalt uit"},
		Category: CategorySymptom, Weight: 0.65},
}

// #endregion

// #region mechanism-terms

var mechanismTerms = []TermPattern{
	{Canonical: "traplopen", Synonyms: []string{"trap lopen", "trappen"},
		Category: CategoryMechanism, Weight: 0.5},
	{Canonical: "hardlopen", Synonyms: []string{"rennen", "joggen"},
		Category: CategoryMechanism, Weight: 0.5},
	{Canonical: "sporten", Synonyms: []string{"sport", "voetbal", "tennis"},
		Category: CategoryMechanism, Weight: 0.5},
	{Canonical: "val", Synonyms: []string{"gevallen", "uitgegleden", "gestruikeld"},
		Category: CategoryMechanism, Weight: 0.55},
	{Canonical: "tillen", Synonyms: []string{"getild", "zwaar tillen"},
		Category: CategoryMechanism, Weight: 0.5},
	{Canonical: "bukken", Synonyms: []string{"gebukt", "vooroverbuigen"},
		Category: CategoryMechanism, Weight: 0.5},
	{Canonical: "zitten", Synonyms: []string{"lang zitten", "zittend werk"},
		Category: CategoryMechanism, Weight: 0.45},
}

// #endregion

// #region timing-terms

var timingTerms = []TermPattern{
	{Canonical: "acuut", Synonyms: []string{"plotseling", "opeens", "ineens"},
		Category: CategoryTiming, Weight: 0.5},
	{Canonical: "chronisch", Synonyms: []string{"langdurig", "al jaren"},
		Category: CategoryTiming, Weight: 0.5},
	{Canonical: "weken", Synonyms: []string{"week geleden", "sinds twee weken"},
		Category: CategoryTiming, Weight: 0.45},
	{Canonical: "maanden", Synonyms: []string{"maand geleden", "al maanden"},
		Category: CategoryTiming, Weight: 0.45},
	{Canonical: "ochtend", Synonyms: []string{"s ochtends", "bij het opstaan"},
		Category: CategoryTiming, Weight: 0.45},
	{Canonical: "nacht", Synonyms: []string{"s nachts", "in bed"},
		Category: CategoryTiming, Weight: 0.45},
}

// #endregion

// #region all-terms

// allTerms returns every term table concatenated, location terms first.
func allTerms() []TermPattern {
	out := make([]TermPattern, 0,
		len(locationTerms)+len(pathologyTerms)+len(symptomTerms)+len(mechanismTerms)+len(timingTerms))
	out = append(out, locationTerms...)
	out = append(out, pathologyTerms...)
	out = append(out, symptomTerms...)
	out = append(out, mechanismTerms...)
	out = append(out, timingTerms...)
	return out
}

// #endregion
