package orchestrator

// Log prefixes
const (
	LogPrefixProcessTurn = "internal.agent.orchestrator.ProcessTurn"
)

// Configuration defaults
const (
	DefaultMaxContextTurns       = 20
	DefaultContinuityProbability = 0.5
	DefaultMaxDedupRetries       = 2
)

// Log messages
const (
	LogMsgClassifyFailed = "%s: intent classification failed, using %s: %v"
	LogMsgThreadsUpdated = "%s: active threads updated: %v"
	LogMsgDuplicate      = "%s: %s attempt %d too similar to recent output"
	LogMsgRepeated       = "%s: %s kept a near-duplicate after %d attempts"
	LogMsgTurnEmitted    = "%s: %s spoke (intent=%s strategy=%s attempts=%d fallback=%q)"
)
