package faq

import (
	"context"
	"strings"

	"campusfaq/internal/models"
)

// Pool supplies the FAQ entries to search.
type Pool interface {
	LoadAll(ctx context.Context, force bool) []models.FAQEntry
}

// Resolver finds the single best FAQ entry for a query.
type Resolver struct {
	pool     Pool
	weights  Weights
	minScore float64
}

// NewResolver creates a resolver over pool. A negative minScore selects
// DefaultMinScore; zero accepts every best match.
func NewResolver(pool Pool, minScore float64) *Resolver {
	if minScore < 0 {
		minScore = DefaultMinScore
	}
	return &Resolver{
		pool:     pool,
		weights:  DefaultWeights(),
		minScore: minScore,
	}
}

// WithWeights returns a copy of the resolver using w.
func (r *Resolver) WithWeights(w Weights) *Resolver {
	cp := *r
	cp.weights = w
	return &cp
}

// FindBest scans the whole pool and returns the highest scoring entry.
// Ties keep the entry seen first. Returns false for a blank query, an empty
// pool, or when the best score is below the minimum.
func (r *Resolver) FindBest(ctx context.Context, query string) (*models.FAQMatch, bool) {
	if strings.TrimSpace(query) == "" {
		return nil, false
	}

	pool := r.pool.LoadAll(ctx, false)
	if len(pool) == 0 {
		return nil, false
	}

	best := -1
	bestScore := 0.0
	for i, entry := range pool {
		s := r.weights.Score(query, entry.Question, entry.Answer)
		if best == -1 || s > bestScore {
			best, bestScore = i, s
		}
	}

	if bestScore < r.minScore {
		return nil, false
	}
	return &models.FAQMatch{Entry: pool[best], Score: bestScore}, true
}
