package keywords

import (
	"context"
	"strings"

	"campusfaq/internal/models"
)

// DefaultFuzzyThreshold is the minimum similarity for a fuzzy keyword match.
const DefaultFuzzyThreshold = 0.6

// EntrySource supplies keyword entries, loading them lazily.
type EntrySource interface {
	Entries(ctx context.Context) []models.KeywordEntry
}

// Resolver matches queries against keyword entries in two passes.
type Resolver struct {
	store     EntrySource
	threshold float64
}

// NewResolver creates a resolver. A negative threshold selects
// DefaultFuzzyThreshold; zero accepts any keyword with some similarity.
func NewResolver(store EntrySource, threshold float64) *Resolver {
	if threshold < 0 {
		threshold = DefaultFuzzyThreshold
	}
	return &Resolver{store: store, threshold: threshold}
}

// Find returns the keyword match for query. The exact pass returns the first
// entry, in feed order, with a keyword contained in the query. Only when no
// keyword is contained does the fuzzy pass run; it picks the keyword most
// similar to the whole query, first seen on ties.
func (r *Resolver) Find(ctx context.Context, query string) (*models.KeywordMatch, bool) {
	if strings.TrimSpace(query) == "" {
		return nil, false
	}

	entries := r.store.Entries(ctx)
	if len(entries) == 0 {
		return nil, false
	}

	q := strings.ToLower(query)
	if m, ok := exactMatch(entries, q); ok {
		return m, true
	}
	return r.fuzzyMatch(entries, q)
}

func exactMatch(entries []models.KeywordEntry, q string) (*models.KeywordMatch, bool) {
	for _, e := range entries {
		for _, k := range e.Keywords {
			if k != "" && strings.Contains(q, k) {
				return &models.KeywordMatch{
					Answer:    e.Answer,
					Matched:   append([]string(nil), e.Keywords...),
					Score:     1,
					MatchType: models.MatchExact,
				}, true
			}
		}
	}
	return nil, false
}

func (r *Resolver) fuzzyMatch(entries []models.KeywordEntry, q string) (*models.KeywordMatch, bool) {
	var (
		best      *models.KeywordEntry
		bestKey   string
		bestScore float64
	)
	for i := range entries {
		for _, k := range entries[i].Keywords {
			if s := Similarity(q, k); s > bestScore {
				best, bestKey, bestScore = &entries[i], k, s
			}
		}
	}

	if best == nil || bestScore < r.threshold {
		return nil, false
	}
	return &models.KeywordMatch{
		Answer:    best.Answer,
		Matched:   []string{bestKey},
		Score:     bestScore,
		MatchType: models.MatchFuzzy,
	}, true
}
