package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidates(t *testing.T) {
	keys := []string{"customer_name", "customerId", "host", "CustomerID"}

	candidates := RankCandidates("customer_id", keys)
	require.Len(t, candidates, 4)

	// "CustomerID" and "customerId" normalize identically; the tie is
	// broken alphabetically.
	assert.Equal(t, "CustomerID", candidates[0].Key)
	assert.Equal(t, "customerId", candidates[1].Key)
	assert.InDelta(t, 1.0, candidates[0].Score, 0.0001)
	assert.Equal(t, "host", candidates[3].Key)
}

func TestCandidateList_Top(t *testing.T) {
	candidates := CandidateList{
		{Key: "a", Score: 0.9},
		{Key: "b", Score: 0.8},
		{Key: "c", Score: 0.7},
	}

	assert.Len(t, candidates.Top(2), 2)
	assert.Len(t, candidates.Top(10), 3)
}

func TestCandidateList_Best(t *testing.T) {
	assert.Nil(t, CandidateList{}.Best())

	best := CandidateList{{Key: "a", Score: 0.4}}.Best()
	require.NotNil(t, best)
	assert.Equal(t, "a", best.Key)
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	candidates := CandidateList{
		{Key: "a", Score: 0.9},
		{Key: "b", Score: 0.6},
		{Key: "c", Score: 0.59},
	}

	above := candidates.AboveThreshold(0.6)
	require.Len(t, above, 2)
	assert.Equal(t, "b", above[1].Key)
}

func TestSuggest(t *testing.T) {
	keys := []string{"timeout", "host", "port", "log_level"}

	assert.Equal(t, []string{"timeout"}, Suggest("timeuot", keys, 3))
	assert.Equal(t, []string{"log_level"}, Suggest("logLevel", keys, 3))
	assert.Nil(t, Suggest("completely_unrelated", keys, 3))
	assert.Nil(t, Suggest("host", nil, 3))
}
