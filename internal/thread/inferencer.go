// Package thread surfaces recurring topic keywords from the primary speaker's history.
package thread

import (
	"regexp"
	"sort"
	"strings"
)

var nonAlphaSpace = regexp.MustCompile(`[^a-z\s]`)

var stopwords = func() map[string]struct{} {
	words := strings.Fields(stopwordList)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// Inferencer recomputes topic threads periodically from the whole primary history.
// It keeps no per-call state.
type Inferencer struct {
	updateInterval int
	maxThreads     int
}

// New creates an Inferencer, filling non-positive settings with defaults.
func New(cfg Config) *Inferencer {
	if cfg.UpdateInterval <= 0 {
		cfg.UpdateInterval = DefaultUpdateInterval
	}
	if cfg.MaxThreads <= 0 {
		cfg.MaxThreads = DefaultMaxThreads
	}
	return &Inferencer{
		updateInterval: cfg.UpdateInterval,
		maxThreads:     cfg.MaxThreads,
	}
}

// IsStopword reports whether word is in the fixed stopword set.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// ExtractKeywords returns the candidate keywords of a single utterance, duplicates included.
func ExtractKeywords(text string) []string {
	text = nonAlphaSpace.ReplaceAllString(strings.ToLower(text), "")

	keywords := make([]string, 0)
	for _, word := range strings.Fields(text) {
		if len(word) <= maxIgnoredWordLength || IsStopword(word) {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// ShouldUpdate reports whether the primary turn count sits on an update boundary.
func (inf *Inferencer) ShouldUpdate(h History) bool {
	count := h.PrimaryTurnCount()
	return count > 0 && count%inf.updateInterval == 0
}

// InferThreads counts keywords across every primary turn and returns the most
// frequent ones. Equal counts keep first-seen order.
//
// The whole history is rescanned on every call.
func (inf *Inferencer) InferThreads(h History) []string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, text := range h.PrimaryTexts() {
		for _, kw := range ExtractKeywords(text) {
			if _, seen := counts[kw]; !seen {
				order = append(order, kw)
			}
			counts[kw]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > inf.maxThreads {
		order = order[:inf.maxThreads]
	}
	return order
}

// UpdateIfNeeded recomputes and stores the threads when ShouldUpdate holds.
func (inf *Inferencer) UpdateIfNeeded(h History) ([]string, bool) {
	if !inf.ShouldUpdate(h) {
		return nil, false
	}
	threads := inf.InferThreads(h)
	h.UpdateThreads(threads)
	return threads, true
}
