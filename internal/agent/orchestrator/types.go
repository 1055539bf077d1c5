package orchestrator

import (
	"sync"

	"adaptive-response-engine/internal/agent"
	"adaptive-response-engine/internal/conversation"
	"adaptive-response-engine/internal/metrics"
	"adaptive-response-engine/internal/model"
	"adaptive-response-engine/internal/router"
	"adaptive-response-engine/internal/thread"
	"adaptive-response-engine/pkg/log"
	"adaptive-response-engine/pkg/similarity"
)

// RandomSource supplies the continuity draw. *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Config holds the per-session pipeline settings.
type Config struct {
	MaxContextTurns         int
	UseIntentClassification bool
	ContinuityProbability   float64 // chance the last speaker goes again, in [0,1]
	MaxDedupRetries         int     // regenerations after the first attempt
}

// Options wires an Orchestrator. Classifier is only consulted when
// Config.UseIntentClassification is set. Random and Metrics may be nil.
type Options struct {
	Agents     []*agent.Agent
	Store      *conversation.Store
	Inferencer *thread.Inferencer
	Checker    *similarity.Checker
	Classifier router.Router
	Random     RandomSource
	Metrics    *metrics.Collector
	Logger     log.Logger
	Config     Config
}

// TurnInput is one primary utterance.
type TurnInput struct {
	Text     string
	Language string
}

// TurnResult is what the session emits for one primary utterance.
type TurnResult struct {
	Speaker  string
	Voice    string
	Strategy model.Strategy
	Text     string
	Intent   model.Intent
	Attempts int
	Fallback agent.FallbackReason
	Repeated bool // accepted although still too similar to recent output
}

// Orchestrator runs the turn pipeline for exactly one session.
type Orchestrator struct {
	mu sync.Mutex

	agents     []*agent.Agent
	byName     map[string]*agent.Agent
	store      *conversation.Store
	inferencer *thread.Inferencer
	checker    *similarity.Checker
	classifier router.Router
	rng        RandomSource
	metrics    *metrics.Collector
	l          log.Logger
	cfg        Config

	roundRobinIndex int
}
