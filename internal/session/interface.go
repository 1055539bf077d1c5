package session

import "context"

// UseCase manages isolated conversation sessions, each driven by its own
// turn pipeline.
type UseCase interface {
	// Create opens a new session and returns its id and agent roster.
	Create(ctx context.Context) (CreateOutput, error)

	// ProcessTurn runs one primary utterance through the session's pipeline.
	ProcessTurn(ctx context.Context, input ProcessTurnInput) (ProcessTurnOutput, error)

	// ProcessSpeech transcribes recorded audio and processes the transcript as a turn.
	ProcessSpeech(ctx context.Context, input ProcessSpeechInput) (ProcessTurnOutput, error)

	// Context returns a snapshot of the session's conversation.
	Context(ctx context.Context, input ContextInput) (ContextOutput, error)

	// Close ends a session and drops its state.
	Close(ctx context.Context, id string) error

	// ActiveSessions reports the number of open sessions.
	ActiveSessions() int
}
