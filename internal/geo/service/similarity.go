package service

import "strings"

// Similarity tiers. Exact matches beat shared whole words, which beat
// prefix and substring containment; anything below falls through to
// normalized edit distance.
const (
	similarityExact      = 1.0
	similaritySharedWord = 0.95
	similarityPrefix     = 0.92
	similarityContains   = 0.85
	similarityWordPrefix = 0.80
)

// Similarity computes a layered name-similarity score in [0,1] between
// the raw query and a result label. Comparison is case-insensitive and
// whitespace-trimmed.
func Similarity(a, b string) float64 {
	s1 := strings.ToLower(strings.TrimSpace(a))
	s2 := strings.ToLower(strings.TrimSpace(b))

	if s1 == s2 {
		return similarityExact
	}

	words1 := strings.Fields(s1)
	words2 := strings.Fields(s2)

	// Shared whole words longer than two characters outrank everything
	// but an exact match ("annapurna" in both query and label).
	for _, w1 := range words1 {
		if len(w1) <= 2 {
			continue
		}
		for _, w2 := range words2 {
			if w1 == w2 {
				return similaritySharedWord
			}
		}
	}

	if strings.HasPrefix(s1, s2) || strings.HasPrefix(s2, s1) {
		return similarityPrefix
	}

	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return similarityContains
	}

	for _, w1 := range words1 {
		for _, w2 := range words2 {
			if strings.HasPrefix(w1, w2) || strings.HasPrefix(w2, w1) {
				return similarityWordPrefix
			}
		}
	}

	longer, shorter := s1, s2
	if len(s2) > len(s1) {
		longer, shorter = s2, s1
	}
	if len(longer) == 0 {
		return similarityExact
	}

	distance := levenshtein(longer, shorter)
	score := float64(len(longer)-distance) / float64(len(longer))
	if score < 0 {
		return 0
	}
	return score
}

// levenshtein computes the edit distance with a single rolling cost row.
func levenshtein(s1, s2 string) int {
	costs := make([]int, len(s2)+1)
	for i := 0; i <= len(s1); i++ {
		lastValue := i
		for j := 0; j <= len(s2); j++ {
			if i == 0 {
				costs[j] = j
			} else if j > 0 {
				newValue := costs[j-1]
				if s1[i-1] != s2[j-1] {
					newValue = min(min(newValue, lastValue), costs[j]) + 1
				}
				costs[j-1] = lastValue
				lastValue = newValue
			}
		}
		if i > 0 {
			costs[len(s2)] = lastValue
		}
	}
	return costs[len(s2)]
}
