package usecase

import (
	"context"
	"strings"

	"adaptive-response-engine/internal/agent/orchestrator"
	"adaptive-response-engine/internal/session"
	pkgLog "adaptive-response-engine/pkg/log"
	"adaptive-response-engine/pkg/speech"
)

// ProcessTurn validates the utterance, runs the pipeline and optionally
// synthesizes the reply. Synthesis failures never fail the turn.
func (uc *implUseCase) ProcessTurn(ctx context.Context, input session.ProcessTurnInput) (session.ProcessTurnOutput, error) {
	ctx = pkgLog.WithSessionID(ctx, input.SessionID)

	orc, err := uc.lookup(input.SessionID)
	if err != nil {
		return session.ProcessTurnOutput{}, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return session.ProcessTurnOutput{}, session.ErrEmptyText
	}
	if session.IsTrivial(text) {
		uc.l.Debugf(ctx, "internal.session.usecase.ProcessTurn: skipping trivial utterance %q", text)
		return session.ProcessTurnOutput{}, session.ErrTrivialUtterance
	}

	return uc.runTurn(ctx, input.SessionID, orc, text, input.Language, input.Speak), nil
}

func (uc *implUseCase) runTurn(ctx context.Context, id string, orc *orchestrator.Orchestrator, text, language string, speak bool) session.ProcessTurnOutput {
	language = uc.resolveLanguage(language)

	res := orc.ProcessTurn(ctx, orchestrator.TurnInput{Text: text, Language: language})

	uc.refresh(id, orc)
	uc.metrics.SetActiveSessions(uc.sessions.Len())

	out := session.ProcessTurnOutput{
		SessionID: id,
		Language:  language,
		Speaker:   res.Speaker,
		Voice:     res.Voice,
		Strategy:  res.Strategy,
		Intent:    res.Intent,
		Text:      res.Text,
		Attempts:  res.Attempts,
		Fallback:  res.Fallback,
		Repeated:  res.Repeated,
	}

	if speak && uc.synthesizer != nil {
		audio, err := uc.synthesizer.Synthesize(ctx, res.Text, res.Voice, language)
		if err != nil {
			uc.l.Warnf(ctx, "internal.session.usecase.ProcessTurn: %s synthesis failed: %v", uc.synthesizer.Name(), err)
		} else {
			out.Audio = audio
			out.AudioMIMEType = uc.synthesizer.MIMEType()
		}
	}

	return out
}

// resolveLanguage maps tags such as "es-ES" to the prompt name "Spanish".
func (uc *implUseCase) resolveLanguage(language string) string {
	if name := speech.LanguageName(language); name != "" {
		return name
	}
	return uc.cfg.DefaultLanguage
}
