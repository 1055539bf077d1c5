// Package similarity detects near-duplicate text using Jaccard similarity over
// normalized word tokens.
package similarity

import (
	"regexp"
	"strings"
)

var (
	nonAlnumSpace = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Checker compares candidate text against recent output. It holds no per-call
// state and is safe for concurrent use.
type Checker struct {
	threshold float64
}

// New creates a Checker. A threshold outside (0, 1] falls back to DefaultThreshold.
func New(threshold float64) *Checker {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Checker{threshold: threshold}
}

// Threshold returns the configured threshold.
func (c *Checker) Threshold() float64 {
	return c.threshold
}

// Normalize lowercases text, drops everything that is not a letter, digit or
// whitespace, collapses whitespace runs and trims the ends.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonAlnumSpace.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize returns the set of whitespace separated tokens of the normalized text.
func Tokenize(text string) map[string]struct{} {
	fields := strings.Fields(Normalize(text))
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

// JaccardSimilarity returns |A∩B| / |A∪B| of the token sets of a and b,
// or 0 when either set is empty.
func JaccardSimilarity(a, b string) float64 {
	ta, tb := Tokenize(a), Tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	small, large := ta, tb
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			intersection++
		}
	}
	union := len(ta) + len(tb) - intersection

	return float64(intersection) / float64(union)
}

// IsTooSimilar reports whether candidate scores at or above the threshold
// against any entry of recent.
func (c *Checker) IsTooSimilar(candidate string, recent []string) bool {
	for _, output := range recent {
		if JaccardSimilarity(candidate, output) >= c.threshold {
			return true
		}
	}
	return false
}
