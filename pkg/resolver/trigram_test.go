package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []Entry {
	return []Entry{
		{EntityType: "custom_field", ScriptID: "custbody_rebate_amount", NaturalName: "rebate amount"},
		{EntityType: "custom_field", ScriptID: "custbody_rebate_rate", NaturalName: "rebate rate"},
		{EntityType: "saved_search", ScriptID: "customsearch_open_orders", NaturalName: "open orders report"},
		{EntityType: "custom_record", ScriptID: "customrecord_royalty", NaturalName: "royalty schedule"},
	}
}

func TestSearch_RanksExactMatchFirst(t *testing.T) {
	idx := NewIndex(testEntries())

	matches := idx.Search("rebate amount", 3)
	require.NotEmpty(t, matches)
	assert.Equal(t, "custbody_rebate_amount", matches[0].Entry.ScriptID)
	assert.InDelta(t, 1.0, matches[0].Score, 0.0001)

	// The sibling field shares the "rebate" word and ranks second.
	require.Len(t, matches, 2)
	assert.Equal(t, "custbody_rebate_rate", matches[1].Entry.ScriptID)
	assert.Less(t, matches[1].Score, matches[0].Score)
}

func TestSearch_ToleratesCaseAndPartialWords(t *testing.T) {
	idx := NewIndex(testEntries())

	matches := idx.Search("Royalty", 3)
	require.NotEmpty(t, matches)
	assert.Equal(t, "customrecord_royalty", matches[0].Entry.ScriptID)
}

func TestSearch_OmitsZeroScores(t *testing.T) {
	idx := NewIndex(testEntries())
	assert.Empty(t, idx.Search("zzzzqqq", 3))
	assert.Empty(t, idx.Search("", 3))
	assert.Empty(t, idx.Search("   ", 3))
}

func TestSearch_CapsAtK(t *testing.T) {
	idx := NewIndex(testEntries())
	matches := idx.Search("rebate", 1)
	assert.Len(t, matches, 1)
}

func TestCandidatePhrases(t *testing.T) {
	phrases := candidatePhrases(`Show the "rebate amount" for Northwind Traders this month`)
	assert.Contains(t, phrases, "rebate amount")
	assert.Contains(t, phrases, "Northwind Traders")
}

func TestCandidatePhrases_SkipsSentenceStartAndDedupes(t *testing.T) {
	phrases := candidatePhrases(`Compare 'royalty' and 'Royalty' figures`)
	// Quoted duplicates collapse case-insensitively.
	count := 0
	for _, p := range phrases {
		if p == "royalty" || p == "Royalty" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// A capitalized word opening the sentence is not a candidate by itself.
	phrases = candidatePhrases("Compare figures")
	assert.NotContains(t, phrases, "Compare")
}

func TestCandidatePhrases_CapitalizedRunsCapAtThreeWords(t *testing.T) {
	phrases := candidatePhrases("check the Deferred Revenue Recognition Schedule Report now")
	assert.Contains(t, phrases, "Deferred Revenue Recognition")
	assert.NotContains(t, phrases, "Deferred Revenue Recognition Schedule")
}
