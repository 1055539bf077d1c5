package usecase

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"adaptive-response-engine/internal/agent"
	"adaptive-response-engine/internal/agent/orchestrator"
	"adaptive-response-engine/internal/metrics"
	"adaptive-response-engine/internal/router"
	"adaptive-response-engine/internal/session"
	"adaptive-response-engine/internal/thread"
	"adaptive-response-engine/pkg/llmprovider"
	pkgLog "adaptive-response-engine/pkg/log"
	"adaptive-response-engine/pkg/similarity"
	"adaptive-response-engine/pkg/speech"
)

type implUseCase struct {
	l           pkgLog.Logger
	gen         llmprovider.Generator
	classifier  router.Router
	transcriber speech.Transcriber
	synthesizer speech.Synthesizer
	metrics     *metrics.Collector

	agents     []*agent.Agent
	inferencer *thread.Inferencer
	checker    *similarity.Checker
	cfg        session.Config

	// mu orders Close against the post-turn refresh.
	mu       sync.Mutex
	sessions *expirable.LRU[string, *orchestrator.Orchestrator]
}

// Deps are the collaborators shared by every session. Transcriber,
// Synthesizer and Metrics are optional.
type Deps struct {
	Logger      pkgLog.Logger
	Generator   llmprovider.Generator
	Transcriber speech.Transcriber
	Synthesizer speech.Synthesizer
	Metrics     *metrics.Collector
}

// New creates a new session UseCase instance.
func New(deps Deps, cfg session.Config) (*implUseCase, error) {
	if cfg.NumAgents < 1 {
		return nil, session.ErrInvalidAgentCount
	}
	if deps.Generator == nil {
		return nil, session.ErrNoGenerator
	}
	if deps.Logger == nil {
		deps.Logger = pkgLog.NewNop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = session.DefaultTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = session.DefaultMaxSessions
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = agent.DefaultLanguage
	}

	uc := &implUseCase{
		l:           deps.Logger,
		gen:         deps.Generator,
		classifier:  router.New(deps.Generator, deps.Logger),
		transcriber: deps.Transcriber,
		synthesizer: deps.Synthesizer,
		metrics:     deps.Metrics,
		agents:      buildAgents(cfg, deps.Generator, deps.Logger),
		inferencer: thread.New(thread.Config{
			UpdateInterval: cfg.ThreadUpdateInterval,
			MaxThreads:     cfg.MaxThreads,
		}),
		checker: similarity.New(cfg.SimilarityThreshold),
		cfg:     cfg,
	}

	uc.sessions = expirable.NewLRU[string, *orchestrator.Orchestrator](cfg.MaxSessions, uc.onEvict, cfg.TTL)

	return uc, nil
}

// buildAgents names agents from the config, Agent_1..N otherwise.
// Agents hold no conversation state, so every session shares them.
func buildAgents(cfg session.Config, gen llmprovider.Generator, l pkgLog.Logger) []*agent.Agent {
	agents := make([]*agent.Agent, cfg.NumAgents)
	for i := range agents {
		name := agent.DefaultName(i)
		if i < len(cfg.AgentNames) && cfg.AgentNames[i] != "" {
			name = cfg.AgentNames[i]
		}
		var voice string
		if len(cfg.Voices) > 0 {
			voice = cfg.Voices[i%len(cfg.Voices)]
		}
		agents[i] = agent.New(name, voice, gen, l)
	}
	return agents
}

// onEvict runs under the LRU lock and must not call back into the cache.
func (uc *implUseCase) onEvict(id string, _ *orchestrator.Orchestrator) {
	uc.l.Debugf(context.Background(), "internal.session.usecase.onEvict: session %s released", id)
}
