package models

// KeywordFeedSource tags entries loaded from the keyword spreadsheet.
const KeywordFeedSource = "feed-keywords"

// MatchType records which keyword pass produced a match.
type MatchType string

const (
	MatchExact MatchType = "exact"
	MatchFuzzy MatchType = "fuzzy"
)

// KeywordEntry maps a set of normalized keyword tags to a canned answer.
type KeywordEntry struct {
	Keywords []string `json:"keywords"`
	Answer   string   `json:"answer"`
	Source   string   `json:"source"`
}

// KeywordMatch is the result of a keyword lookup.
type KeywordMatch struct {
	Answer    string    `json:"answer"`
	Matched   []string  `json:"matched"`
	Score     float64   `json:"score"`
	MatchType MatchType `json:"match_type"`
}
