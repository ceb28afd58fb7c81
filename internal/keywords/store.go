// Package keywords resolves short tag-based queries against a keyword feed.
package keywords

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"campusfaq/internal/models"
	"campusfaq/internal/sheets"
)

// ErrFeedNotConfigured is recorded when no keyword feed is available.
var ErrFeedNotConfigured = errors.New("keyword feed not configured")

// Feed fetches raw keyword rows: comma-delimited keywords and an answer.
type Feed interface {
	Fetch(ctx context.Context) ([][]string, error)
}

// SheetFeed reads keyword rows from a spreadsheet range.
type SheetFeed struct {
	Client        *sheets.Client
	SpreadsheetID string
	Range         string
}

// Fetch implements Feed.
func (f *SheetFeed) Fetch(ctx context.Context) ([][]string, error) {
	if !f.Client.Configured() || f.SpreadsheetID == "" {
		return nil, ErrFeedNotConfigured
	}
	return f.Client.ReadRange(ctx, f.SpreadsheetID, f.Range)
}

type storeState struct {
	entries  []models.KeywordEntry
	loadedAt time.Time
	err      string
}

// Store caches keyword entries in memory until explicitly refreshed.
type Store struct {
	feed    Feed
	timeout time.Duration

	mu      sync.Mutex // serializes loads
	loaded  atomic.Bool
	current atomic.Pointer[storeState]
}

// NewStore creates a store backed by feed. A nil feed yields an always-empty store.
func NewStore(feed Feed, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Store{feed: feed, timeout: timeout}
}

// Load fetches the full feed and replaces the cached entries.
// Failures keep an empty set and are logged, never returned.
func (s *Store) Load(ctx context.Context) []models.KeywordEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Store) loadLocked(ctx context.Context) []models.KeywordEntry {
	state := &storeState{loadedAt: time.Now()}

	rows, err := s.fetch(ctx)
	if err != nil {
		slog.Warn("keyword feed unavailable", "error", err)
		state.err = err.Error()
	} else {
		state.entries = ParseRows(rows)
	}

	s.current.Store(state)
	s.loaded.Store(true)
	slog.Info("keyword store loaded", "entries", len(state.entries))
	return state.entries
}

func (s *Store) fetch(ctx context.Context) ([][]string, error) {
	if s.feed == nil {
		return nil, ErrFeedNotConfigured
	}
	// The loaded set outlives the request that triggered the load.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	return s.feed.Fetch(ctx)
}

// Entries returns the cached entries, loading them on first use only.
func (s *Store) Entries(ctx context.Context) []models.KeywordEntry {
	if !s.loaded.Load() {
		s.mu.Lock()
		if !s.loaded.Load() {
			s.loadLocked(ctx)
		}
		s.mu.Unlock()
	}
	return s.current.Load().entries
}

// Refresh reloads the feed and returns the new entry count.
func (s *Store) Refresh(ctx context.Context) int {
	return len(s.Load(ctx))
}

// Stats reports the store contents.
func (s *Store) Stats() models.KeywordStoreStats {
	state := s.current.Load()
	if state == nil {
		return models.KeywordStoreStats{}
	}
	ts := state.loadedAt
	return models.KeywordStoreStats{
		Entries:   len(state.entries),
		LoadedAt:  &ts,
		LastError: state.err,
	}
}

// ParseRows converts feed rows into keyword entries. A leading header row and
// rows without keywords or an answer are skipped.
func ParseRows(rows [][]string) []models.KeywordEntry {
	entries := make([]models.KeywordEntry, 0, len(rows))
	for i, row := range rows {
		if i == 0 && sheets.IsHeader(row, "keyword", "keywords") {
			continue
		}
		keywords := SplitKeywords(sheets.Cell(row, 0))
		answer := strings.TrimSpace(sheets.Cell(row, 1))
		if len(keywords) == 0 || answer == "" {
			continue
		}
		entries = append(entries, models.KeywordEntry{
			Keywords: keywords,
			Answer:   answer,
			Source:   models.KeywordFeedSource,
		})
	}
	return entries
}

// SplitKeywords splits a comma-delimited list into lower-cased, trimmed, non-empty tokens.
func SplitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.ToLower(strings.TrimSpace(p)); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
