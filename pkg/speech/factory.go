package speech

import (
	"context"
	"fmt"

	"adaptive-response-engine/config"
)

// Provider names accepted in speech.tts_provider.
const (
	ProviderElevenLabs = "elevenlabs"
	ProviderGoogle     = "google"
)

// InitializeSynthesizer builds the configured synthesizer. It returns nil
// without error when synthesis is disabled.
func InitializeSynthesizer(ctx context.Context, cfg *config.SpeechConfig) (Synthesizer, error) {
	switch cfg.TTSProvider {
	case "":
		return nil, nil
	case ProviderElevenLabs:
		synth, err := NewElevenLabs(ElevenLabsConfig{
			APIKey:  cfg.ElevenLabs.APIKey,
			BaseURL: cfg.ElevenLabs.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return synth, nil
	case ProviderGoogle:
		synth, err := NewGoogleSynthesizer(ctx, cfg.Google.CredentialsPath)
		if err != nil {
			return nil, err
		}
		return synth, nil
	default:
		return nil, fmt.Errorf("unknown tts provider: %s", cfg.TTSProvider)
	}
}

// InitializeTranscriber builds the recognizer, or nil when recognition is disabled.
func InitializeTranscriber(ctx context.Context, cfg *config.SpeechConfig) (Transcriber, error) {
	if !cfg.STTEnabled {
		return nil, nil
	}
	stt, err := NewGoogleTranscriber(ctx, cfg.Google.CredentialsPath)
	if err != nil {
		return nil, err
	}
	return stt, nil
}

// Voices returns the agent voices for the configured provider. ElevenLabs
// falls back to StudentVoices; Google voices are only used when configured.
func Voices(cfg *config.SpeechConfig) []string {
	if len(cfg.Voices) > 0 {
		return cfg.Voices
	}
	if cfg.TTSProvider == ProviderElevenLabs {
		out := make([]string, len(StudentVoices))
		copy(out, StudentVoices)
		return out
	}
	return nil
}
