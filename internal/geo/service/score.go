package service

import (
	"sort"
	"strings"
)

// Score weights. Name similarity dominates; the similarity weight is
// boosted for near-exact matches so they always float to the top.
const (
	weightNameSimilarity        = 0.45
	weightNameSimilarityBoosted = 0.55
	similarityBoostThreshold    = 0.90
	weightSourceReliability     = 0.18
	weightCategoryRelevance     = 0.20
	weightDistanceBias          = 0.07
	weightImportance            = 0.05

	// categoryPartialCredit is granted when a result's category does not
	// match the query intent. Never zero: a mismatched category should
	// demote, not eliminate.
	categoryPartialCredit = 0.5

	// neutralDistanceCredit is half the distance weight, applied when no
	// reference point exists. Absence of an anchor must not penalize.
	neutralDistanceCredit = 0.035

	// scoreTieEpsilon treats scores within this range as tied; ties are
	// broken by source priority.
	scoreTieEpsilon = 0.01
)

// scoreResult computes the multi-factor confidence score for one result.
// Pure: same result, query, and intent always yield the same score.
func scoreResult(result Result, query string, intent Intent) float64 {
	score := 0.0

	nameSimilarity := Similarity(query, result.Label)
	if nameSimilarity >= similarityBoostThreshold {
		score += nameSimilarity * weightNameSimilarityBoosted
	} else {
		score += nameSimilarity * weightNameSimilarity
	}

	score += result.Source.BaseConfidence() * weightSourceReliability

	score += categoryRelevance(result, intent) * weightCategoryRelevance

	if result.DistanceMeters != nil {
		distanceScore := 1 - *result.DistanceMeters/maxDistanceBiasMeters
		if distanceScore < 0 {
			distanceScore = 0
		}
		score += distanceScore * weightDistanceBias
	} else {
		score += neutralDistanceCredit
	}

	if result.Importance != nil {
		score += *result.Importance * weightImportance
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// categoryRelevance matches the result's coarse category against the
// intent flags. POI intent also accepts hotel/resort place types because
// several providers tag lodging that way instead of using a category.
func categoryRelevance(result Result, intent Intent) float64 {
	switch {
	case intent.IsPOI && (result.Category == CategoryPOI ||
		containsPlaceType(result.PlaceType, "hotel") ||
		containsPlaceType(result.PlaceType, "resort")):
		return 1.0
	case intent.IsAddress && result.Category == CategoryAddress:
		return 1.0
	case intent.IsCity && result.Category == CategoryCity:
		return 1.0
	default:
		return categoryPartialCredit
	}
}

func containsPlaceType(placeType, tag string) bool {
	return strings.Contains(strings.ToLower(placeType), tag)
}

// rank scores every result and sorts descending. Scores within
// scoreTieEpsilon are tied and fall back to the fixed source priority
// (Photon first, Open-Meteo last).
func rank(results []Result, query string, intent Intent) []Result {
	for i := range results {
		results[i].Score = scoreResult(results[i], query, intent)
	}

	sort.SliceStable(results, func(i, j int) bool {
		di := results[i].Score - results[j].Score
		if di > scoreTieEpsilon {
			return true
		}
		if di < -scoreTieEpsilon {
			return false
		}
		return results[i].Source < results[j].Source
	})

	return results
}
