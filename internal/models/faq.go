package models

import (
	"time"

	"github.com/google/uuid"
)

// FAQSource identifies where an FAQ entry was fetched from.
type FAQSource string

// FAQ source constants, listed in aggregation order.
const (
	SourceLocal           FAQSource = "local"
	SourceStructuredStore FAQSource = "structured-store"
	SourceFeedA           FAQSource = "feed-a"
	SourceFeedB           FAQSource = "feed-b"
)

// FAQEntry is a question/answer pair with its provenance.
// Entries are immutable once fetched; two entries are the same entry when
// question, answer and source all match.
type FAQEntry struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Source   FAQSource `json:"source"`
	Category string    `json:"category,omitempty"`
}

// FAQMatch is the best FAQ entry found for a query.
type FAQMatch struct {
	Entry FAQEntry `json:"entry"`
	Score float64  `json:"score"`
}

// StoredFAQ is a row of the faqs table.
type StoredFAQ struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToEntry converts a stored row into an FAQ entry tagged with the structured store source.
func (f StoredFAQ) ToEntry() FAQEntry {
	entry := FAQEntry{
		Question: f.Question,
		Answer:   f.Answer,
		Source:   SourceStructuredStore,
	}
	if f.Category != nil {
		entry.Category = *f.Category
	}
	return entry
}
