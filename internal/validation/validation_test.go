package validation

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestValidateStudentID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid alphanumeric", "S1001", true},
		{"valid with hyphen", "CSE-2024-17", true},
		{"valid with underscore", "cse_17", true},
		{"empty string", "", false},
		{"too long", strings.Repeat("a", 33), false},
		{"max length", strings.Repeat("a", 32), true},
		{"contains space", "S 1001", false},
		{"sql injection attempt", "1' OR '1'='1", false},
		{"path traversal attempt", "../etc/passwd", false},
		{"unicode", "छात्र", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateStudentID(tt.id); got != tt.want {
				t.Errorf("ValidateStudentID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestNormalizeStudentID(t *testing.T) {
	if got := NormalizeStudentID("  s1001 "); got != "S1001" {
		t.Errorf("NormalizeStudentID() = %q, want %q", got, "S1001")
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"collapses whitespace", "  what   is\tSIH? ", "what is SIH?"},
		{"blank", " \n ", ""},
		{"unchanged", "fees", "fees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeQuery(tt.query); got != tt.want {
				t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestNormalizeQueryTruncates(t *testing.T) {
	long := strings.Repeat("é", MaxQueryLength)
	got := NormalizeQuery(long)

	if len(got) > MaxQueryLength {
		t.Errorf("len = %d, want <= %d", len(got), MaxQueryLength)
	}
	if !utf8.ValidString(got) {
		t.Error("truncated query is not valid UTF-8")
	}
}
