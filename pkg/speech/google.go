package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	speechv1 "google.golang.org/api/speech/v1"
	"google.golang.org/api/texttospeech/v1"
)

// GoogleTranscriber recognizes speech with Google Cloud Speech-to-Text.
type GoogleTranscriber struct {
	service *speechv1.Service
}

// GoogleSynthesizer renders speech with Google Cloud Text-to-Speech.
type GoogleSynthesizer struct {
	service *texttospeech.Service
}

var (
	_ Transcriber = (*GoogleTranscriber)(nil)
	_ Synthesizer = (*GoogleSynthesizer)(nil)
)

// googleClientOptions builds service options from a service account JSON file.
// An empty path uses Application Default Credentials.
func googleClientOptions(ctx context.Context, credentialsPath string) ([]option.ClientOption, error) {
	if credentialsPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	config, err := google.JWTConfigFromJSON(data, speechv1.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	return []option.ClientOption{option.WithTokenSource(config.TokenSource(ctx))}, nil
}

// NewGoogleTranscriber creates a transcriber from a service account credentials file.
func NewGoogleTranscriber(ctx context.Context, credentialsPath string) (*GoogleTranscriber, error) {
	opts, err := googleClientOptions(ctx, credentialsPath)
	if err != nil {
		return nil, err
	}
	svc, err := speechv1.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}
	return &GoogleTranscriber{service: svc}, nil
}

// NewGoogleTranscriberFromHTTP creates a transcriber from a pre-configured HTTP client.
func NewGoogleTranscriberFromHTTP(ctx context.Context, httpClient *http.Client) (*GoogleTranscriber, error) {
	svc, err := speechv1.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}
	return &GoogleTranscriber{service: svc}, nil
}

// Transcribe implements Transcriber. The audio container (WAV, FLAC) is
// detected by the service from the file header.
func (g *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, languageHint string) (Transcript, error) {
	if len(audio) == 0 {
		return Transcript{}, fmt.Errorf("speech: empty audio")
	}

	req := &speechv1.RecognizeRequest{
		Config: &speechv1.RecognitionConfig{
			LanguageCode:               LanguageCode(languageHint),
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechv1.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	resp, err := g.service.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return Transcript{}, fmt.Errorf("speech: recognize failed: %w", err)
	}

	out := Transcript{Language: req.Config.LanguageCode}
	parts := make([]string, 0, len(resp.Results))
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		best := result.Alternatives[0]
		if t := strings.TrimSpace(best.Transcript); t != "" {
			parts = append(parts, t)
		}
		if best.Confidence > out.Confidence {
			out.Confidence = best.Confidence
		}
		if result.LanguageCode != "" {
			out.Language = result.LanguageCode
		}
	}
	out.Text = strings.Join(parts, " ")
	return out, nil
}

// NewGoogleSynthesizer creates a synthesizer from a service account credentials file.
func NewGoogleSynthesizer(ctx context.Context, credentialsPath string) (*GoogleSynthesizer, error) {
	opts, err := googleClientOptions(ctx, credentialsPath)
	if err != nil {
		return nil, err
	}
	svc, err := texttospeech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech service: %w", err)
	}
	return &GoogleSynthesizer{service: svc}, nil
}

// NewGoogleSynthesizerFromHTTP creates a synthesizer from a pre-configured HTTP client.
func NewGoogleSynthesizerFromHTTP(ctx context.Context, httpClient *http.Client) (*GoogleSynthesizer, error) {
	svc, err := texttospeech.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech service: %w", err)
	}
	return &GoogleSynthesizer{service: svc}, nil
}

// Name returns provider name
func (g *GoogleSynthesizer) Name() string { return "google" }

// MIMEType of the synthesized audio
func (g *GoogleSynthesizer) MIMEType() string { return MIMETypeMP3 }

// Synthesize implements Synthesizer. voice is a Google voice name such as
// "en-US-Neural2-C"; empty lets the service choose by language.
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text, voice, language string) ([]byte, error) {
	req := &texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: LanguageCode(language),
			Name:         voice,
		},
		AudioConfig: &texttospeech.AudioConfig{AudioEncoding: GoogleAudioEncodingMP3},
	}

	resp, err := g.service.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("texttospeech: synthesize failed: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("texttospeech: failed to decode audio: %w", err)
	}
	return audio, nil
}
