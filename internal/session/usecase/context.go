package usecase

import (
	"context"

	"adaptive-response-engine/internal/session"
)

// Context returns the session snapshot. A negative MaxTurns uses the prompt window.
func (uc *implUseCase) Context(ctx context.Context, input session.ContextInput) (session.ContextOutput, error) {
	orc, err := uc.lookup(input.SessionID)
	if err != nil {
		return session.ContextOutput{}, err
	}

	maxTurns := input.MaxTurns
	if maxTurns < 0 {
		maxTurns = orc.MaxContextTurns()
	}

	snap := orc.Snapshot(maxTurns)
	return session.ContextOutput{
		SessionID: input.SessionID,
		Snapshot:  snap,
		Rendered:  snap.String(),
	}, nil
}
