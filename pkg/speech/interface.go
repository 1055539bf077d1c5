package speech

import "context"

// Transcriber converts recorded speech to text.
type Transcriber interface {
	// Transcribe returns the transcript and the detected language tag.
	// languageHint may be a language name or tag; empty means English.
	Transcribe(ctx context.Context, audio []byte, languageHint string) (Transcript, error)
}

// Synthesizer converts text to audio bytes.
type Synthesizer interface {
	// Synthesize renders text with the given voice. An empty voice selects the
	// provider default.
	Synthesize(ctx context.Context, text, voice, language string) ([]byte, error)

	// MIMEType describes the bytes returned by Synthesize.
	MIMEType() string

	// Name returns the provider name (e.g., "elevenlabs", "google")
	Name() string
}
