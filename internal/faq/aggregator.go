// Package faq aggregates FAQ entries from independent knowledge sources and
// resolves free-text queries against them.
package faq

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"campusfaq/internal/models"
)

const (
	DefaultTTL           = 5 * time.Minute
	DefaultSourceTimeout = 10 * time.Second
)

// snapshot is an immutable view of the aggregation cache.
type snapshot struct {
	timestamp time.Time
	entries   []models.FAQEntry
	sources   []models.SourceStats
}

// Aggregator merges entries from all sources into one pool cached for a TTL.
// The pool is swapped as a whole, so readers see either the previous or the
// next snapshot.
type Aggregator struct {
	sources []Source
	ttl     time.Duration
	timeout time.Duration
	now     func() time.Time

	current atomic.Pointer[snapshot]
	group   singleflight.Group
}

// NewAggregator creates an aggregator over sources, which are merged in the given order.
func NewAggregator(sources []Source, ttl, sourceTimeout time.Duration) *Aggregator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if sourceTimeout <= 0 {
		sourceTimeout = DefaultSourceTimeout
	}
	return &Aggregator{
		sources: sources,
		ttl:     ttl,
		timeout: sourceTimeout,
		now:     time.Now,
	}
}

// LoadAll returns the merged FAQ pool. The cached pool is reused when it is
// non-empty, younger than the TTL, and force is false.
func (a *Aggregator) LoadAll(ctx context.Context, force bool) []models.FAQEntry {
	if !force {
		if snap := a.current.Load(); snap != nil && a.valid(snap) {
			return snap.entries
		}
	}

	// Concurrent callers share one fetch round.
	v, _, _ := a.group.Do("load", func() (interface{}, error) {
		return a.fetch(ctx), nil
	})
	return v.(*snapshot).entries
}

// Refresh forces a new fetch round and returns the resulting entry count.
func (a *Aggregator) Refresh(ctx context.Context) int {
	return len(a.LoadAll(ctx, true))
}

// Stats reports the current cache contents.
func (a *Aggregator) Stats() models.AggregatorStats {
	snap := a.current.Load()
	if snap == nil {
		return models.AggregatorStats{}
	}
	ts := snap.timestamp
	return models.AggregatorStats{
		Entries:     len(snap.entries),
		RefreshedAt: &ts,
		Sources:     append([]models.SourceStats(nil), snap.sources...),
	}
}

func (a *Aggregator) valid(snap *snapshot) bool {
	return len(snap.entries) > 0 && a.now().Sub(snap.timestamp) < a.ttl
}

// fetch queries every source concurrently and stores the merged result.
func (a *Aggregator) fetch(ctx context.Context) *snapshot {
	results := make([][]models.FAQEntry, len(a.sources))
	stats := make([]models.SourceStats, len(a.sources))

	// Detach from the caller's cancellation so one aborted request does not
	// empty the pool for everyone sharing this round.
	base := context.WithoutCancel(ctx)

	var g errgroup.Group
	for i, src := range a.sources {
		g.Go(func() error {
			stats[i] = models.SourceStats{Source: src.Name()}

			fetchCtx, cancel := context.WithTimeout(base, a.timeout)
			defer cancel()

			entries, err := fetchIsolated(fetchCtx, src)
			if err != nil {
				slog.Warn("faq source unavailable", "source", src.Name(), "error", err)
				stats[i].LastError = err.Error()
				return nil
			}
			results[i] = entries
			stats[i].Entries = len(entries)
			return nil
		})
	}
	_ = g.Wait()

	var merged []models.FAQEntry
	for _, entries := range results {
		merged = append(merged, entries...)
	}

	snap := &snapshot{
		timestamp: a.now(),
		entries:   merged,
		sources:   stats,
	}
	a.current.Store(snap)

	slog.Info("faq cache refreshed", "entries", len(merged))
	return snap
}

// fetchIsolated runs a source fetch, turning timeouts and panics into errors.
func fetchIsolated(ctx context.Context, src Source) ([]models.FAQEntry, error) {
	type result struct {
		entries []models.FAQEntry
		err     error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("source panicked: %v", r)}
			}
		}()
		entries, err := src.Fetch(ctx)
		done <- result{entries: entries, err: err}
	}()

	select {
	case r := <-done:
		return r.entries, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
