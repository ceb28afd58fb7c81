package keywords

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusfaq/internal/models"
)

type staticEntries []models.KeywordEntry

func (s staticEntries) Entries(context.Context) []models.KeywordEntry { return s }

func kw(answer string, keywords ...string) models.KeywordEntry {
	return models.KeywordEntry{Keywords: keywords, Answer: answer, Source: models.KeywordFeedSource}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("library", "library"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
	assert.InDelta(t, 12.0/13.0, Similarity("libary", "library"), 1e-9)
	assert.InDelta(t, 12.0/18.0, Similarity("libary fine", "library"), 1e-9)
	assert.Equal(t, Similarity("hostel", "hotel"), Similarity("hotel", "hostel"))

	// Order-dependent block search: one direction alone finds 1 match, the other 2.
	assert.InDelta(t, 0.5, Similarity("tide", "diet"), 1e-9)
	assert.Equal(t, Similarity("tide", "diet"), Similarity("diet", "tide"))
	assert.Equal(t, Similarity("libary fine", "library"), Similarity("library", "libary fine"))
}

func TestFindExact(t *testing.T) {
	r := NewResolver(staticEntries{
		kw("Canteen opens at 8", "canteen"),
		kw("WiFi login is via portal", "wifi", "internet"),
	}, DefaultFuzzyThreshold)

	match, ok := r.Find(context.Background(), "How to connect WIFI")
	require.True(t, ok)
	assert.Equal(t, models.MatchExact, match.MatchType)
	assert.Equal(t, "WiFi login is via portal", match.Answer)
	assert.Equal(t, []string{"wifi", "internet"}, match.Matched)
	assert.Equal(t, 1.0, match.Score)
}

func TestFindExactFirstEntryWins(t *testing.T) {
	r := NewResolver(staticEntries{
		kw("first", "exam"),
		kw("second", "exam fee"),
	}, DefaultFuzzyThreshold)

	match, ok := r.Find(context.Background(), "exam fee last date")
	require.True(t, ok)
	assert.Equal(t, "first", match.Answer)
}

func TestFindExactOutranksFuzzy(t *testing.T) {
	// "library" is the closest keyword overall, but "fine" is contained in
	// the query, so the fuzzy pass never runs.
	r := NewResolver(staticEntries{
		kw("Library is in Block A", "library"),
		kw("Fines are paid at the counter", "fine"),
	}, DefaultFuzzyThreshold)

	match, ok := r.Find(context.Background(), "libary fine")
	require.True(t, ok)
	assert.Equal(t, models.MatchExact, match.MatchType)
	assert.Equal(t, "Fines are paid at the counter", match.Answer)
}

func TestFindFuzzy(t *testing.T) {
	r := NewResolver(staticEntries{
		kw("Hostel fees are separate", "hostel"),
		kw("Library is in Block A", "library"),
	}, DefaultFuzzyThreshold)

	match, ok := r.Find(context.Background(), "libary fine")
	require.True(t, ok)
	assert.Equal(t, models.MatchFuzzy, match.MatchType)
	assert.Equal(t, []string{"library"}, match.Matched)
	assert.Equal(t, "Library is in Block A", match.Answer)
	assert.GreaterOrEqual(t, match.Score, 0.6)
}

func TestFindFuzzyTieKeepsFirst(t *testing.T) {
	r := NewResolver(staticEntries{
		kw("first", "abcd"),
		kw("second", "abce"),
	}, 0.5)

	match, ok := r.Find(context.Background(), "abcx")
	require.True(t, ok)
	assert.Equal(t, "first", match.Answer)
}

func TestFindNoMatch(t *testing.T) {
	r := NewResolver(staticEntries{kw("Library is in Block A", "library")}, DefaultFuzzyThreshold)

	_, ok := r.Find(context.Background(), "parking")
	assert.False(t, ok)

	_, ok = r.Find(context.Background(), "   ")
	assert.False(t, ok)
}

func TestFindEmptyStore(t *testing.T) {
	r := NewResolver(staticEntries{}, DefaultFuzzyThreshold)

	_, ok := r.Find(context.Background(), "wifi")
	assert.False(t, ok)
}

func TestNewResolverThreshold(t *testing.T) {
	assert.Equal(t, DefaultFuzzyThreshold, NewResolver(staticEntries{}, -1).threshold)

	entries := staticEntries{kw("Canteen opens at 8", "canteen")}

	// "cxq" shares one character with "canteen": 2/10.
	_, ok := NewResolver(entries, DefaultFuzzyThreshold).Find(context.Background(), "cxq")
	assert.False(t, ok)

	match, ok := NewResolver(entries, 0).Find(context.Background(), "cxq")
	require.True(t, ok)
	assert.InDelta(t, 0.2, match.Score, 1e-9)
}

func TestFindLoadsStoreLazily(t *testing.T) {
	feed := &fakeFeed{rows: [][]string{{"wifi,internet", "WiFi login is via portal"}}}
	store := NewStore(feed, 0)
	r := NewResolver(store, 0)

	assert.Equal(t, int32(0), feed.calls.Load())
	_, ok := r.Find(context.Background(), "wifi down")
	require.True(t, ok)
	_, ok = r.Find(context.Background(), "internet")
	require.True(t, ok)
	assert.Equal(t, int32(1), feed.calls.Load())
}
