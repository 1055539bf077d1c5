// Package conversation holds the turn log of one session and the state derived from it.
package conversation

import (
	"adaptive-response-engine/internal/model"
)

// Store is the append-only turn log of a single conversation.
// It is not safe for concurrent use; the owning orchestrator serializes access.
type Store struct {
	turns              []Turn
	activeThreads      []string
	lastAgent          string
	lastPrimaryIntent  model.Intent
	recentAgentOutputs []string
	similarityWindow   int
	primaryCount       int
}

// New creates an empty Store whose rolling output window holds similarityWindow entries.
func New(similarityWindow int) *Store {
	if similarityWindow <= 0 {
		similarityWindow = DefaultSimilarityWindow
	}
	return &Store{
		turns:              make([]Turn, 0),
		activeThreads:      make([]string, 0),
		recentAgentOutputs: make([]string, 0, similarityWindow+1),
		similarityWindow:   similarityWindow,
	}
}

// AddPrimaryTurn appends a primary speaker turn and records its intent.
func (s *Store) AddPrimaryTurn(text string, intent model.Intent) {
	s.turns = append(s.turns, Turn{
		Speaker: model.PrimarySpeaker,
		Text:    text,
		Role:    model.RolePrimary,
		Intent:  intent,
	})
	s.lastPrimaryIntent = intent
	s.primaryCount++
}

// AddAgentTurn appends an agent turn and pushes its text onto the output window,
// evicting the oldest entry once the window is full.
func (s *Store) AddAgentTurn(agentName, text string, strategy model.Strategy) {
	s.turns = append(s.turns, Turn{
		Speaker:  agentName,
		Text:     text,
		Role:     model.RoleAgent,
		Strategy: strategy,
	})
	s.lastAgent = agentName

	s.recentAgentOutputs = append(s.recentAgentOutputs, text)
	if over := len(s.recentAgentOutputs) - s.similarityWindow; over > 0 {
		s.recentAgentOutputs = append(s.recentAgentOutputs[:0], s.recentAgentOutputs[over:]...)
	}
}

// UpdateThreads replaces the active threads wholesale.
func (s *Store) UpdateThreads(threads []string) {
	s.activeThreads = append(make([]string, 0, len(threads)), threads...)
}

// RecentAgentOutputs returns a copy of the rolling output window, oldest first.
func (s *Store) RecentAgentOutputs() []string {
	return append(make([]string, 0, len(s.recentAgentOutputs)), s.recentAgentOutputs...)
}

// ActiveThreads returns a copy of the current topic threads.
func (s *Store) ActiveThreads() []string {
	return append(make([]string, 0, len(s.activeThreads)), s.activeThreads...)
}

// LastAgent returns the speaker of the most recent agent turn, or "".
func (s *Store) LastAgent() string {
	return s.lastAgent
}

// LastPrimaryIntent returns the intent of the most recent primary turn, or "".
func (s *Store) LastPrimaryIntent() model.Intent {
	return s.lastPrimaryIntent
}

// TurnCount returns the number of turns in the log.
func (s *Store) TurnCount() int {
	return len(s.turns)
}

// PrimaryTurnCount returns the number of primary turns in the log.
func (s *Store) PrimaryTurnCount() int {
	return s.primaryCount
}

// PrimaryTexts returns the text of every primary turn in chronological order.
func (s *Store) PrimaryTexts() []string {
	texts := make([]string, 0, s.primaryCount)
	for _, t := range s.turns {
		if t.Role == model.RolePrimary {
			texts = append(texts, t.Text)
		}
	}
	return texts
}

// BuildContext returns a snapshot holding at most the last maxTurns turns
// (oldest first) plus the derived state.
func (s *Store) BuildContext(maxTurns int) Snapshot {
	if maxTurns < 0 {
		maxTurns = 0
	}
	start := len(s.turns) - maxTurns
	if start < 0 {
		start = 0
	}

	return Snapshot{
		Turns:             append(make([]Turn, 0, len(s.turns)-start), s.turns[start:]...),
		ActiveThreads:     s.ActiveThreads(),
		LastAgent:         s.lastAgent,
		LastPrimaryIntent: s.lastPrimaryIntent,
	}
}
