package orchestrator

import (
	"errors"
	"math/rand/v2"

	"adaptive-response-engine/internal/agent"
	"adaptive-response-engine/internal/thread"
	"adaptive-response-engine/pkg/log"
	"adaptive-response-engine/pkg/similarity"
)

var (
	ErrNoAgents = errors.New("orchestrator: at least one agent is required")
	ErrNoStore  = errors.New("orchestrator: conversation store is required")
)

// DefaultConfig returns the stock pipeline settings.
func DefaultConfig() Config {
	return Config{
		MaxContextTurns:       DefaultMaxContextTurns,
		ContinuityProbability: DefaultContinuityProbability,
		MaxDedupRetries:       DefaultMaxDedupRetries,
	}
}

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New creates an Orchestrator owning the given store.
func New(opts Options) (*Orchestrator, error) {
	if len(opts.Agents) == 0 {
		return nil, ErrNoAgents
	}
	if opts.Store == nil {
		return nil, ErrNoStore
	}

	cfg := opts.Config
	if cfg.MaxContextTurns <= 0 {
		cfg.MaxContextTurns = DefaultMaxContextTurns
	}
	cfg.ContinuityProbability = min(max(cfg.ContinuityProbability, 0), 1)
	cfg.MaxDedupRetries = max(cfg.MaxDedupRetries, 0)
	if opts.Classifier == nil {
		cfg.UseIntentClassification = false
	}

	if opts.Inferencer == nil {
		opts.Inferencer = thread.New(thread.Config{})
	}
	if opts.Checker == nil {
		opts.Checker = similarity.New(similarity.DefaultThreshold)
	}
	if opts.Random == nil {
		opts.Random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNop()
	}

	o := &Orchestrator{
		agents:     opts.Agents,
		byName:     make(map[string]*agent.Agent, len(opts.Agents)),
		store:      opts.Store,
		inferencer: opts.Inferencer,
		checker:    opts.Checker,
		classifier: opts.Classifier,
		rng:        opts.Random,
		metrics:    opts.Metrics,
		l:          opts.Logger,
		cfg:        cfg,
	}
	for _, a := range opts.Agents {
		o.byName[a.Name()] = a
	}
	return o, nil
}
