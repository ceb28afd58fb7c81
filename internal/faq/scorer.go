package faq

import (
	"regexp"
	"strings"
)

// Default scoring weights. They are hand-tuned; change them only together
// with the minimum score threshold.
const (
	DefaultContainmentBonus = 2.0
	DefaultAnswerWeight     = 0.5
	DefaultMinScore         = 0.5
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// Weights tunes the relevance heuristic.
type Weights struct {
	ContainmentBonus float64
	AnswerWeight     float64
}

// DefaultWeights returns the stock scoring weights.
func DefaultWeights() Weights {
	return Weights{
		ContainmentBonus: DefaultContainmentBonus,
		AnswerWeight:     DefaultAnswerWeight,
	}
}

// Tokenize lower-cases text, strips punctuation, and splits on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(nonWordPattern.ReplaceAllString(strings.ToLower(text), ""))
}

// Score rates how well a candidate question/answer pair matches query using the default weights.
func Score(query, question, answer string) float64 {
	return DefaultWeights().Score(query, question, answer)
}

// Score rates how well a candidate question/answer pair matches query.
// The result is in [0, bonus + 1 + answer weight]: a bonus when the question
// contains the whole query, plus the share of query tokens found in the
// question, plus a weighted share of query tokens found in the answer.
func (w Weights) Score(query, question, answer string) float64 {
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return 0
	}

	var score float64
	if strings.Contains(strings.ToLower(question), strings.ToLower(query)) {
		score += w.ContainmentBonus
	}

	n := float64(len(queryTokens))
	score += float64(countPresent(queryTokens, tokenSet(question))) / n
	score += float64(countPresent(queryTokens, tokenSet(answer))) / n * w.AnswerWeight

	return score
}

func tokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// countPresent counts query tokens, duplicates included, that appear in set.
func countPresent(tokens []string, set map[string]struct{}) int {
	n := 0
	for _, t := range tokens {
		if _, ok := set[t]; ok {
			n++
		}
	}
	return n
}
