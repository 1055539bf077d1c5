package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ElevenLabs synthesizes speech through the ElevenLabs REST API.
type ElevenLabs struct {
	apiKey       string
	baseURL      string
	defaultVoice string
	client       *http.Client
}

var _ Synthesizer = (*ElevenLabs)(nil)

// NewElevenLabs creates an ElevenLabs synthesizer.
func NewElevenLabs(cfg ElevenLabsConfig) (*ElevenLabs, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("elevenlabs: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = ElevenLabsBaseURL
	}
	if cfg.DefaultVoice == "" {
		cfg.DefaultVoice = ElevenLabsDefaultVoice
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: ElevenLabsDefaultTimeout}
	}
	return &ElevenLabs{
		apiKey:       cfg.APIKey,
		baseURL:      cfg.BaseURL,
		defaultVoice: cfg.DefaultVoice,
		client:       cfg.HTTPClient,
	}, nil
}

// Name returns provider name
func (e *ElevenLabs) Name() string { return "elevenlabs" }

// MIMEType of the synthesized audio
func (e *ElevenLabs) MIMEType() string { return MIMETypeMP3 }

// ModelFor picks the low-latency English model or the multilingual one.
func ModelFor(language string) string {
	if language == "" || IsEnglish(language) {
		return ElevenLabsEnglishModel
	}
	return ElevenLabsMultilingual
}

// Synthesize implements Synthesizer.
func (e *ElevenLabs) Synthesize(ctx context.Context, text, voice, language string) ([]byte, error) {
	if voice == "" {
		voice = e.defaultVoice
	}

	body, err := json.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: ModelFor(language),
		VoiceSettings: elevenLabsVoiceSettings{
			Stability:       ElevenLabsDefaultStable,
			SimilarityBoost: ElevenLabsDefaultSimBoost,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/text-to-speech/%s?output_format=%s",
		e.baseURL, url.PathEscape(voice), ElevenLabsOutputFormat)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: failed to create request: %w", err)
	}
	req.Header.Set("xi-api-key", e.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", MIMETypeMP3)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: API call failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr elevenLabsError
		if jsonErr := json.Unmarshal(data, &apiErr); jsonErr == nil && apiErr.Detail.Message != "" {
			return nil, fmt.Errorf("elevenlabs: API error %d: %s", resp.StatusCode, apiErr.Detail.Message)
		}
		return nil, fmt.Errorf("elevenlabs: API error %d: %s", resp.StatusCode, string(data))
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("elevenlabs: empty audio")
	}
	return data, nil
}
