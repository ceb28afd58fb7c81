package validation

import (
	"regexp"
	"strings"
)

// StudentIDPattern defines the valid student ID format: alphanumeric, hyphens, underscores.
var StudentIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// MaxQueryLength caps the free-text query handed to the resolvers.
const MaxQueryLength = 500

// ValidateStudentID checks if a student ID matches the allowed pattern.
func ValidateStudentID(id string) bool {
	if id == "" || len(id) > 32 {
		return false
	}
	return StudentIDPattern.MatchString(id)
}

// NormalizeStudentID trims and upper-cases a student ID so lookups are case-insensitive.
func NormalizeStudentID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// NormalizeQuery collapses runs of whitespace and truncates overly long queries.
func NormalizeQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) > MaxQueryLength {
		// Cut on a rune boundary.
		cut := MaxQueryLength
		for cut > 0 && !isRuneStart(query[cut]) {
			cut--
		}
		query = query[:cut]
	}
	return query
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
