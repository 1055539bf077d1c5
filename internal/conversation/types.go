package conversation

import "adaptive-response-engine/internal/model"

// Turn is one utterance in the log. Turns are never mutated after being appended.
type Turn struct {
	Speaker  string         `json:"speaker"`
	Text     string         `json:"text"`
	Role     model.Role     `json:"role"`
	Intent   model.Intent   `json:"intent,omitempty"`
	Strategy model.Strategy `json:"strategy,omitempty"`
}

// Snapshot is a point-in-time copy of the conversation state handed to prompts.
// It shares no memory with the Store it was built from.
type Snapshot struct {
	Turns             []Turn       `json:"turns"`
	ActiveThreads     []string     `json:"active_threads"`
	LastAgent         string       `json:"last_agent,omitempty"`
	LastPrimaryIntent model.Intent `json:"last_primary_intent,omitempty"`
}
