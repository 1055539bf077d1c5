package usecase

import (
	"context"
	"fmt"
	"strings"

	"adaptive-response-engine/internal/session"
	pkgLog "adaptive-response-engine/pkg/log"
)

// ProcessSpeech transcribes audio and feeds the transcript through ProcessTurn's pipeline.
func (uc *implUseCase) ProcessSpeech(ctx context.Context, input session.ProcessSpeechInput) (session.ProcessTurnOutput, error) {
	ctx = pkgLog.WithSessionID(ctx, input.SessionID)

	if uc.transcriber == nil {
		return session.ProcessTurnOutput{}, session.ErrNoTranscriber
	}

	orc, err := uc.lookup(input.SessionID)
	if err != nil {
		return session.ProcessTurnOutput{}, err
	}
	if len(input.Audio) == 0 {
		return session.ProcessTurnOutput{}, session.ErrEmptyAudio
	}

	hint := input.LanguageHint
	if hint == "" {
		hint = uc.cfg.DefaultLanguage
	}

	transcript, err := uc.transcriber.Transcribe(ctx, input.Audio, hint)
	if err != nil {
		uc.l.Errorf(ctx, "internal.session.usecase.ProcessSpeech: Transcribe: %v", err)
		return session.ProcessTurnOutput{}, fmt.Errorf("%w: %v", session.ErrTranscribeFailed, err)
	}

	text := strings.TrimSpace(transcript.Text)
	if text == "" {
		return session.ProcessTurnOutput{}, session.ErrEmptyText
	}
	if session.IsTrivial(text) {
		uc.l.Debugf(ctx, "internal.session.usecase.ProcessSpeech: skipping trivial transcript %q", text)
		return session.ProcessTurnOutput{}, session.ErrTrivialUtterance
	}

	language := transcript.Language
	if language == "" {
		language = hint
	}

	out := uc.runTurn(ctx, input.SessionID, orc, text, language, input.Speak)
	out.Transcript = text
	return out, nil
}
