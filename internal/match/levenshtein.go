package match

// Levenshtein returns the minimum number of single-byte insertions,
// deletions and substitutions turning a into b.
//
// Runs in O(len(a) * len(b)) time and O(min(len(a), len(b))) space.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a as the shorter string; only two rows are kept.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity maps the edit distance to [0, 1]: 1 - distance/max(len(a), len(b)).
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}

// KeySimilarity compares two option keys after normalization, with and
// without unit suffixes, and returns the better score.
func KeySimilarity(a, b string) float64 {
	return max(
		Similarity(NormalizeKey(a), NormalizeKey(b)),
		Similarity(NormalizeKeyStripped(a), NormalizeKeyStripped(b)),
	)
}
