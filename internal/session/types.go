package session

import (
	"strings"
	"time"

	"adaptive-response-engine/internal/agent"
	"adaptive-response-engine/internal/conversation"
	"adaptive-response-engine/internal/model"
)

// Config holds the settings applied to every new session.
type Config struct {
	NumAgents               int
	AgentNames              []string // optional, Agent_1..N when shorter than NumAgents
	Voices                  []string // assigned to agents cyclically
	MaxContextTurns         int
	SimilarityThreshold     float64
	SimilarityWindow        int
	ThreadUpdateInterval    int
	MaxThreads              int
	UseIntentClassification bool
	ContinuityProbability   float64
	MaxDedupRetries         int
	DefaultLanguage         string
	Seed                    uint64 // non-zero makes every session's speaker draws reproducible

	TTL         time.Duration
	MaxSessions int
}

// AgentInfo describes one agent of a session.
type AgentInfo struct {
	Name  string
	Voice string
}

// --- UseCase Inputs ---

type ProcessTurnInput struct {
	SessionID string
	Text      string
	Language  string // name or tag; empty uses the configured default
	Speak     bool   // synthesize the reply when a synthesizer is configured
}

type ProcessSpeechInput struct {
	SessionID    string
	Audio        []byte
	LanguageHint string
	Speak        bool
}

type ContextInput struct {
	SessionID string
	MaxTurns  int // negative selects the session's prompt window
}

// --- UseCase Outputs ---

type CreateOutput struct {
	SessionID string
	Agents    []AgentInfo
}

type ProcessTurnOutput struct {
	SessionID  string
	Transcript string // set when the turn came from audio
	Language   string
	Speaker    string
	Voice      string
	Strategy   model.Strategy
	Intent     model.Intent
	Text       string
	Attempts   int
	Fallback   agent.FallbackReason
	Repeated   bool

	Audio         []byte
	AudioMIMEType string
}

type ContextOutput struct {
	SessionID string
	Snapshot  conversation.Snapshot
	Rendered  string
}

// IsTrivial reports whether text is too short or a bare filler word.
func IsTrivial(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if len(t) < MinUtteranceLength {
		return true
	}
	_, filler := fillerWords[strings.Trim(t, ".,!?")]
	return filler
}
