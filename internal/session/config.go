package session

import "adaptive-response-engine/config"

// NewConfig assembles session settings from the engine and session sections.
func NewConfig(engine config.EngineConfig, sess config.SessionConfig, voices []string) Config {
	return Config{
		NumAgents:               engine.NumAgents,
		AgentNames:              engine.AgentNames,
		Voices:                  voices,
		MaxContextTurns:         engine.MaxContextTurns,
		SimilarityThreshold:     engine.SimilarityThreshold,
		SimilarityWindow:        engine.SimilarityWindow,
		ThreadUpdateInterval:    engine.ThreadUpdateInterval,
		MaxThreads:              engine.MaxThreads,
		UseIntentClassification: engine.UseIntentClassification,
		ContinuityProbability:   engine.ContinuityProbability,
		MaxDedupRetries:         engine.MaxDedupRetries,
		DefaultLanguage:         engine.DefaultLanguage,
		Seed:                    engine.Seed,
		TTL:                     sess.TTL,
		MaxSessions:             sess.MaxSessions,
	}
}
