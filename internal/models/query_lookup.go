package models

import "time"

// QueryLookup represents a per-intent hit count by outcome.
type QueryLookup struct {
	Intent     string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
