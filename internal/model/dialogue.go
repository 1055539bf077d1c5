package model

// Role tags who produced a turn.
type Role string

const (
	RolePrimary Role = "primary"
	RoleAgent   Role = "agent"
)

// PrimarySpeaker is the speaker tag of every primary turn.
const PrimarySpeaker = "PRIMARY"

// Intent is the coarse classification of a primary utterance.
type Intent string

const (
	IntentInformation          Intent = "INFORMATION"
	IntentEmotionalExpression  Intent = "EMOTIONAL_EXPRESSION"
	IntentRequestRepeat        Intent = "REQUEST_REPEAT"
	IntentRequestClarification Intent = "REQUEST_CLARIFICATION"
	IntentDefensive            Intent = "DEFENSIVE"
	IntentElaboration          Intent = "ELABORATION"
	IntentQuestion             Intent = "QUESTION"
)

// DefaultIntent is used when classification is disabled, fails or is ambiguous.
const DefaultIntent = IntentInformation

// Intents lists every known intent in matching order.
// Classification output is matched against these labels front to back.
var Intents = []Intent{
	IntentInformation,
	IntentEmotionalExpression,
	IntentRequestRepeat,
	IntentRequestClarification,
	IntentDefensive,
	IntentElaboration,
	IntentQuestion,
}

// Strategy is the conversational tactic an agent uses for its turn.
type Strategy string

const (
	StrategyClarify             Strategy = "CLARIFY"
	StrategyProbeDetails        Strategy = "PROBE_DETAILS"
	StrategyProbeEmotion        Strategy = "PROBE_EMOTION"
	StrategyChallengeAssumption Strategy = "CHALLENGE_ASSUMPTION"
	StrategyRequestExample      Strategy = "REQUEST_EXAMPLE"
	StrategySummarizeConfirm    Strategy = "SUMMARIZE_CONFIRM"
	StrategyFollowUpQuestion    Strategy = "FOLLOW_UP_QUESTION"
)

// DefaultStrategy is used for unknown or missing intents.
const DefaultStrategy = StrategyProbeDetails
