package openrouter

import "time"

const (
	// DefaultBaseURL is the default OpenRouter API endpoint
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the default model to use
	DefaultModel = "openai/gpt-3.5-turbo"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
