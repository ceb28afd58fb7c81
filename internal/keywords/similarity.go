package keywords

import (
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity returns the Ratcliff/Obershelp ratio of a and b at character
// level: 2*M/T where M is the number of matched characters and T the total
// length. 1.0 means identical; two empty strings are identical.
// The matcher's block search depends on argument order, so both orders are
// scored and the larger ratio wins, keeping Similarity(a, b) == Similarity(b, a).
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ca, cb := chars(a), chars(b)
	return math.Max(ratio(ca, cb), ratio(cb, ca))
}

func ratio(a, b []string) float64 {
	return difflib.NewMatcher(a, b).Ratio()
}

func chars(s string) []string {
	return strings.Split(s, "")
}
