package service

import "testing"

func poiIntent() Intent {
	return Intent{Kind: IntentPOI, IsPOI: true}
}

func TestScoreResultIsPure(t *testing.T) {
	result := Result{
		Coordinates: kathmandu,
		Label:       "Hotel Annapurna, Kathmandu, Nepal",
		PlaceType:   "hotel",
		Source:      SourcePhoton,
		Category:    CategoryPOI,
	}
	intent := poiIntent()

	first := scoreResult(result, "hotel annapurna", intent)
	for i := 0; i < 5; i++ {
		if got := scoreResult(result, "hotel annapurna", intent); got != first {
			t.Fatalf("expected stable score, got %v then %v", first, got)
		}
	}
	if result.Score != 0 {
		t.Fatal("expected scoring not to mutate its input")
	}
}

func TestScoreResultStaysWithinUnitInterval(t *testing.T) {
	importance := 1.0
	zeroDistance := 0.0
	result := Result{
		Label:          "hotel annapurna",
		PlaceType:      "hotel",
		Source:         SourcePhoton,
		Category:       CategoryPOI,
		Importance:     &importance,
		DistanceMeters: &zeroDistance,
	}

	got := scoreResult(result, "hotel annapurna", poiIntent())
	if got > 1.0 {
		t.Fatalf("expected clamp at 1.0, got %v", got)
	}
	if got < 0 {
		t.Fatalf("expected non-negative score, got %v", got)
	}
}

func TestScoreCategoryMismatchGetsPartialCredit(t *testing.T) {
	matched := Result{Label: "x", Source: SourceNominatim, Category: CategoryPOI}
	mismatched := Result{Label: "x", Source: SourceNominatim, Category: CategoryCity}

	intent := poiIntent()
	diff := scoreResult(matched, "x", intent) - scoreResult(mismatched, "x", intent)
	want := (1.0 - categoryPartialCredit) * weightCategoryRelevance
	if diff < want-1e-9 || diff > want+1e-9 {
		t.Fatalf("expected category credit gap %v, got %v", want, diff)
	}
}

func TestScoreHotelPlaceTypeCountsAsPOI(t *testing.T) {
	result := Result{Label: "x", Source: SourcePhoton, PlaceType: "resort_hotel", Category: CategoryAddress}
	if got := categoryRelevance(result, poiIntent()); got != 1.0 {
		t.Fatalf("expected hotel-like place type to earn full category credit, got %v", got)
	}
}

func TestScoreDistanceCreditDecaysAndCutsOff(t *testing.T) {
	near := 1000.0
	far := 40000.0
	beyond := 75000.0

	base := Result{Label: "x", Source: SourcePhoton, Category: CategoryPOI}
	intent := poiIntent()

	nearResult, farResult, beyondResult := base, base, base
	nearResult.DistanceMeters = &near
	farResult.DistanceMeters = &far
	beyondResult.DistanceMeters = &beyond

	nearScore := scoreResult(nearResult, "x", intent)
	farScore := scoreResult(farResult, "x", intent)
	beyondScore := scoreResult(beyondResult, "x", intent)

	if nearScore <= farScore {
		t.Fatalf("expected nearer result to score higher, got %v vs %v", nearScore, farScore)
	}

	// Past the cutoff the distance term contributes exactly zero.
	noDistance := base
	zeroCredit := scoreResult(noDistance, "x", intent) - neutralDistanceCredit
	if beyondScore < zeroCredit-1e-9 || beyondScore > zeroCredit+1e-9 {
		t.Fatalf("expected zero distance credit past cutoff, got %v want %v", beyondScore, zeroCredit)
	}
}

func TestScoreMissingDistanceIsNeutralNotZero(t *testing.T) {
	farAway := maxDistanceBiasMeters - 1
	withFarDistance := Result{Label: "x", Source: SourcePhoton, Category: CategoryPOI, DistanceMeters: &farAway}
	withoutDistance := Result{Label: "x", Source: SourcePhoton, Category: CategoryPOI}

	intent := poiIntent()
	if scoreResult(withoutDistance, "x", intent) <= scoreResult(withFarDistance, "x", intent) {
		t.Fatal("expected neutral credit to beat near-cutoff distance credit")
	}
}

func TestRankSortsDescendingByScore(t *testing.T) {
	results := []Result{
		{Coordinates: pokhara, Label: "unrelated place", Source: SourceOpenMeteo, Category: CategoryCity},
		{Coordinates: kathmandu, Label: "hotel annapurna", Source: SourcePhoton, Category: CategoryPOI},
	}

	ranked := rank(results, "hotel annapurna", poiIntent())
	if ranked[0].Label != "hotel annapurna" {
		t.Fatalf("expected exact-match poi first, got %q", ranked[0].Label)
	}
	if ranked[0].Score < ranked[1].Score {
		t.Fatal("expected descending score order")
	}
	for _, r := range ranked {
		if r.Score == 0 {
			t.Fatalf("expected scores to be populated, got zero for %q", r.Label)
		}
	}
}

func TestRankBreaksNearTiesBySourcePriority(t *testing.T) {
	// Identical labels and categories, so scores differ only by the
	// source reliability term; force a near-tie by comparing photon
	// against pelias (0.95 vs 0.90 → score gap 0.009 < epsilon).
	results := []Result{
		{Coordinates: pokhara, Label: "same", Source: SourcePelias, Category: CategoryCity},
		{Coordinates: kathmandu, Label: "same", Source: SourcePhoton, Category: CategoryCity},
	}

	ranked := rank(results, "same", Intent{Kind: IntentCity, IsCity: true})
	if ranked[0].Source != SourcePhoton {
		t.Fatalf("expected photon to win the tie-break, got %s", ranked[0].Source)
	}
}
