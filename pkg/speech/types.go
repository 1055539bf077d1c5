package speech

import "net/http"

// Transcript is the outcome of speech recognition.
type Transcript struct {
	Text       string
	Language   string // BCP-47 tag reported by the recognizer
	Confidence float64
}

// ElevenLabsConfig configures the ElevenLabs synthesizer.
type ElevenLabsConfig struct {
	APIKey       string
	BaseURL      string
	DefaultVoice string
	HTTPClient   *http.Client
}

type elevenLabsRequest struct {
	Text          string                   `json:"text"`
	ModelID       string                   `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsError struct {
	Detail struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"detail"`
}
