package match

import (
	"sort"
)

// Candidate represents a known key that may have been meant by a misspelled one.
type Candidate struct {
	Key string

	// Normalized Levenshtein similarity (0-1), the better of the plain and
	// suffix-stripped comparisons.
	Score float64

	// Metadata for debugging/explanation
	NormalizedKey  string
	NormalizedName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known key against name.
// Returns candidates sorted by score (descending).
func RankCandidates(name string, keys []string) CandidateList {
	var candidates CandidateList

	nameNorm := NormalizeKey(name)

	for _, key := range keys {
		candidates = append(candidates, Candidate{
			Key:            key,
			Score:          KeySimilarity(key, name),
			NormalizedKey:  NormalizeKey(key),
			NormalizedName: nameNorm,
		})
	}

	// Sort by score (descending), then by key for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit known keys that look like name, best first.
// Keys scoring below DefaultSuggestScore are never suggested.
func Suggest(name string, keys []string, limit int) []string {
	ranked := RankCandidates(name, keys).AboveThreshold(DefaultSuggestScore).Top(limit)
	if len(ranked) == 0 {
		return nil
	}

	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.Key)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by key for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Key < c[j].Key
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// DefaultSuggestScore is the minimum similarity for a key to be suggested.
const DefaultSuggestScore = 0.6
