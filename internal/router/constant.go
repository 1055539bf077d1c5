package router

import "adaptive-response-engine/internal/model"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts. Arguments: utterance, comma separated label list.
const (
	PromptClassifyIntent = `Classify this statement:
%s

Choose one: %s

Answer:`
)

// Router configuration
const (
	RouterMaxTokens      = 16
	RouterTemperature    = 0.1
	RouterFallbackIntent = model.DefaultIntent
)

// Error messages
const (
	ErrMsgLLMCallFailed = "LLM call failed"
	ErrMsgNoLabel       = "no known label in response, falling back to INFORMATION"
)
