package usecase

import (
	"context"

	"github.com/google/uuid"

	"adaptive-response-engine/internal/agent/orchestrator"
	"adaptive-response-engine/internal/conversation"
	"adaptive-response-engine/internal/session"
	pkgLog "adaptive-response-engine/pkg/log"
)

// Create opens a session with a fresh store and rotation index.
func (uc *implUseCase) Create(ctx context.Context) (session.CreateOutput, error) {
	id := uuid.NewString()
	ctx = pkgLog.WithSessionID(ctx, id)

	var rng orchestrator.RandomSource
	if uc.cfg.Seed != 0 {
		rng = orchestrator.NewRandomSource(uc.cfg.Seed)
	}

	orc, err := orchestrator.New(orchestrator.Options{
		Agents:     uc.agents,
		Store:      conversation.New(uc.cfg.SimilarityWindow),
		Inferencer: uc.inferencer,
		Checker:    uc.checker,
		Classifier: uc.classifier,
		Random:     rng,
		Metrics:    uc.metrics,
		Logger:     uc.l,
		Config: orchestrator.Config{
			MaxContextTurns:         uc.cfg.MaxContextTurns,
			UseIntentClassification: uc.cfg.UseIntentClassification,
			ContinuityProbability:   uc.cfg.ContinuityProbability,
			MaxDedupRetries:         uc.cfg.MaxDedupRetries,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.session.usecase.Create: orchestrator.New: %v", err)
		return session.CreateOutput{}, err
	}

	uc.sessions.Add(id, orc)
	uc.metrics.SetActiveSessions(uc.sessions.Len())
	uc.l.Infof(ctx, "internal.session.usecase.Create: session opened with %d agents", len(uc.agents))

	agents := make([]session.AgentInfo, len(uc.agents))
	for i, a := range uc.agents {
		agents[i] = session.AgentInfo{Name: a.Name(), Voice: a.Voice()}
	}

	return session.CreateOutput{SessionID: id, Agents: agents}, nil
}

// Close drops the session. Closing an unknown or expired session is an error.
func (uc *implUseCase) Close(ctx context.Context, id string) error {
	uc.mu.Lock()
	removed := uc.sessions.Remove(id)
	uc.mu.Unlock()
	if !removed {
		return session.ErrSessionNotFound
	}
	uc.metrics.SetActiveSessions(uc.sessions.Len())
	uc.l.Infof(pkgLog.WithSessionID(ctx, id), "internal.session.usecase.Close: session closed")
	return nil
}

// ActiveSessions reports the number of unexpired sessions.
func (uc *implUseCase) ActiveSessions() int {
	return uc.sessions.Len()
}

func (uc *implUseCase) lookup(id string) (*orchestrator.Orchestrator, error) {
	orc, ok := uc.sessions.Get(id)
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return orc, nil
}

// refresh restarts the idle timer of a session that is still registered.
// A session closed or expired while its turn ran stays gone.
func (uc *implUseCase) refresh(id string, orc *orchestrator.Orchestrator) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if cur, ok := uc.sessions.Peek(id); ok && cur == orc {
		uc.sessions.Add(id, orc)
	}
}
