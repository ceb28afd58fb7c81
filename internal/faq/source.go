package faq

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"campusfaq/internal/models"
	"campusfaq/internal/sheets"
)

// Source is a single knowledge source contributing FAQ entries.
// Fetch errors are isolated by the Aggregator and never reach callers.
type Source interface {
	Name() models.FAQSource
	Fetch(ctx context.Context) ([]models.FAQEntry, error)
}

// LocalSource reads FAQ entries from a YAML or JSON file on every fetch.
type LocalSource struct {
	Path string
}

type localEntry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Category string `json:"category" yaml:"category"`
}

// Name implements Source.
func (s *LocalSource) Name() models.FAQSource { return models.SourceLocal }

// Fetch implements Source. Files ending in .json are decoded as JSON, anything else as YAML.
func (s *LocalSource) Fetch(ctx context.Context) ([]models.FAQEntry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read local faq file: %w", err)
	}

	unmarshal := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(s.Path), ".json") {
		unmarshal = json.Unmarshal
	}

	var raw []localEntry
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse local faq file %s: %w", s.Path, err)
	}

	entries := make([]models.FAQEntry, 0, len(raw))
	for _, r := range raw {
		if entry, ok := newEntry(r.Question, r.Answer, r.Category, models.SourceLocal); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// FAQLister lists FAQs from the structured store.
type FAQLister interface {
	ListFAQs(ctx context.Context) ([]models.StoredFAQ, error)
}

// StoreSource reads FAQ entries from the structured store.
type StoreSource struct {
	Store FAQLister
}

// Name implements Source.
func (s *StoreSource) Name() models.FAQSource { return models.SourceStructuredStore }

// Fetch implements Source.
func (s *StoreSource) Fetch(ctx context.Context) ([]models.FAQEntry, error) {
	if s.Store == nil {
		return nil, nil
	}
	rows, err := s.Store.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]models.FAQEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.ToEntry())
	}
	return entries, nil
}

// RangeReader reads a spreadsheet range as rows of cells.
type RangeReader interface {
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

// SheetSource reads FAQ entries from a spreadsheet with columns question, answer and an optional category.
// A missing sheet ID or reader is a valid, empty feed.
type SheetSource struct {
	Source        models.FAQSource
	Reader        RangeReader
	SpreadsheetID string
	Range         string
}

// Name implements Source.
func (s *SheetSource) Name() models.FAQSource { return s.Source }

// Fetch implements Source.
func (s *SheetSource) Fetch(ctx context.Context) ([]models.FAQEntry, error) {
	if s.Reader == nil || s.SpreadsheetID == "" {
		return nil, nil
	}
	rows, err := s.Reader.ReadRange(ctx, s.SpreadsheetID, s.Range)
	if err != nil {
		return nil, err
	}

	entries := make([]models.FAQEntry, 0, len(rows))
	for i, row := range rows {
		if i == 0 && sheets.IsHeader(row, "question", "questions") {
			continue
		}
		entry, ok := newEntry(sheets.Cell(row, 0), sheets.Cell(row, 1), sheets.Cell(row, 2), s.Source)
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// newEntry builds an entry, rejecting rows without a question or answer.
func newEntry(question, answer, category string, source models.FAQSource) (models.FAQEntry, bool) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return models.FAQEntry{}, false
	}
	return models.FAQEntry{
		Question: question,
		Answer:   answer,
		Source:   source,
		Category: strings.TrimSpace(category),
	}, true
}
