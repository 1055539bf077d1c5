package session

import "time"

const (
	// MinUtteranceLength is the shortest utterance worth answering.
	MinUtteranceLength = 3

	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 1000
)

// fillerWords are utterances that never trigger an agent turn.
var fillerWords = map[string]struct{}{
	"um":   {},
	"uh":   {},
	"hmm":  {},
	"hm":   {},
	"ah":   {},
	"oh":   {},
	"okay": {},
	"ok":   {},
}
