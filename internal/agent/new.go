package agent

import (
	"fmt"

	"adaptive-response-engine/pkg/llmprovider"
	"adaptive-response-engine/pkg/log"
)

// New creates an Agent. voice may be empty when speech output is not used.
func New(name, voice string, gen llmprovider.Generator, l log.Logger) *Agent {
	return &Agent{
		name:  name,
		voice: voice,
		gen:   gen,
		l:     l,
	}
}

// NewGroup creates n agents named Agent_1..Agent_n sharing one generator.
// Voices are assigned cyclically when any are given.
func NewGroup(n int, voices []string, gen llmprovider.Generator, l log.Logger) []*Agent {
	agents := make([]*Agent, 0, n)
	for i := 0; i < n; i++ {
		var voice string
		if len(voices) > 0 {
			voice = voices[i%len(voices)]
		}
		agents = append(agents, New(DefaultName(i), voice, gen, l))
	}
	return agents
}

// DefaultName returns the conventional name of the agent at index i.
func DefaultName(i int) string {
	return fmt.Sprintf("Agent_%d", i+1)
}

// Name returns the agent's speaker tag.
func (a *Agent) Name() string { return a.name }

// Voice returns the TTS voice id, possibly empty.
func (a *Agent) Voice() string { return a.voice }
