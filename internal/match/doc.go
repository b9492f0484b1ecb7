// Package match suggests known option keys for misspelled ones.
//
// Keys are normalized so that spelling variants compare equal
// (NormalizeKey), optionally without a unit suffix (NormalizeKeyStripped),
// then scored by Levenshtein similarity. RankCandidates orders every known
// key by score and Suggest keeps the best ones above DefaultSuggestScore.
package match
