package agent

// Log prefixes
const (
	LogPrefixGenerateResponse = "internal.agent.GenerateResponse"
)

// Generation settings
const (
	GenerationMaxTokens   = 40
	GenerationTemperature = 0.9

	// Trimmed output shorter than this is treated as empty.
	MinResponseLength = 3

	DefaultLanguage = "English"
)

// Canned fallback questions
const (
	FallbackEmptyText = "Can you tell me more about that?"
	FallbackErrorText = "How does that make you feel?"
)

// Response generation prompt. Arguments: context, strategy description, language.
const (
	PromptGenerateResponse = `Conversation:
%s

Strategy: %s

Reply in %s. Generate one short question based on what the primary speaker just said:

Question:`
)

const defaultStrategyDescription = "Ask a thoughtful question"
