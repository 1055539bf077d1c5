// Package orchestrator runs the per-utterance pipeline of one conversation:
// classify, record, infer threads, pick a speaker, generate, dedup, commit.
package orchestrator

import (
	"context"
	"time"

	"adaptive-response-engine/internal/agent"
	"adaptive-response-engine/internal/conversation"
	"adaptive-response-engine/internal/model"
)

// ProcessTurn handles one primary utterance through commit. It never fails;
// downstream errors degrade to default intent and canned text.
// Calls on the same Orchestrator are serialized.
func (o *Orchestrator) ProcessTurn(ctx context.Context, in TurnInput) TurnResult {
	o.mu.Lock()
	defer o.mu.Unlock()

	start := time.Now()

	intent := o.classify(ctx, in.Text)
	o.store.AddPrimaryTurn(in.Text, intent)

	if threads, updated := o.inferencer.UpdateIfNeeded(o.store); updated {
		o.metrics.RecordThreadUpdate()
		o.l.Debugf(ctx, LogMsgThreadsUpdated, LogPrefixProcessTurn, threads)
	}

	snap := o.store.BuildContext(o.cfg.MaxContextTurns)

	speaker := o.selectAgent()
	strategy := speaker.SelectStrategy(intent)

	resp, attempts, repeated := o.generateDistinct(ctx, speaker, snap, intent, strategy, in.Language)

	o.store.AddAgentTurn(speaker.Name(), resp.Text, strategy)

	if resp.Fallback != agent.FallbackNone {
		o.metrics.RecordFallback(string(resp.Fallback))
	}
	o.metrics.RecordTurn(speaker.Name(), string(strategy), time.Since(start))
	o.l.Infof(ctx, LogMsgTurnEmitted, LogPrefixProcessTurn, speaker.Name(), intent, strategy, attempts, resp.Fallback)

	return TurnResult{
		Speaker:  speaker.Name(),
		Voice:    speaker.Voice(),
		Strategy: strategy,
		Text:     resp.Text,
		Intent:   intent,
		Attempts: attempts,
		Fallback: resp.Fallback,
		Repeated: repeated,
	}
}

// Snapshot returns the current context under the session lock.
func (o *Orchestrator) Snapshot(maxTurns int) conversation.Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.store.BuildContext(maxTurns)
}

// MaxContextTurns is the snapshot size used for prompts.
func (o *Orchestrator) MaxContextTurns() int {
	return o.cfg.MaxContextTurns
}

// Agents returns the session's agents in rotation order.
func (o *Orchestrator) Agents() []*agent.Agent {
	out := make([]*agent.Agent, len(o.agents))
	copy(out, o.agents)
	return out
}

func (o *Orchestrator) classify(ctx context.Context, text string) model.Intent {
	if !o.cfg.UseIntentClassification {
		return model.DefaultIntent
	}
	intent, err := o.classifier.Classify(ctx, text)
	if err != nil {
		o.l.Warnf(ctx, LogMsgClassifyFailed, LogPrefixProcessTurn, model.DefaultIntent, err)
		return model.DefaultIntent
	}
	return intent
}

// selectAgent applies the continuity draw when someone spoke before, and
// otherwise takes the agent at the rotation index and advances it once.
func (o *Orchestrator) selectAgent() *agent.Agent {
	if last := o.store.LastAgent(); last != "" {
		if o.rng.Float64() < o.cfg.ContinuityProbability {
			if a, ok := o.byName[last]; ok {
				return a
			}
		}
	}

	a := o.agents[o.roundRobinIndex]
	o.roundRobinIndex = (o.roundRobinIndex + 1) % len(o.agents)
	return a
}

// generateDistinct regenerates while the text is too similar to the recent
// window, up to MaxDedupRetries extra attempts. The last attempt is kept even
// when it is still too similar.
//
// Canned fallback text enters the window like any reply, so while the backend
// keeps failing every turn after the first spends all MaxDedupRetries extra
// generator calls, each with the manager's own retries and timeout.
func (o *Orchestrator) generateDistinct(ctx context.Context, speaker *agent.Agent, snap conversation.Snapshot, intent model.Intent, strategy model.Strategy, language string) (agent.Response, int, bool) {
	recent := o.store.RecentAgentOutputs()

	resp := speaker.GenerateResponse(ctx, snap, intent, strategy, language)
	attempts := 1

	for o.checker.IsTooSimilar(resp.Text, recent) {
		if attempts > o.cfg.MaxDedupRetries {
			o.metrics.RecordRepeated()
			o.l.Warnf(ctx, LogMsgRepeated, LogPrefixProcessTurn, speaker.Name(), attempts)
			return resp, attempts, true
		}
		o.l.Debugf(ctx, LogMsgDuplicate, LogPrefixProcessTurn, speaker.Name(), attempts)
		o.metrics.RecordDedupRetry()

		resp = speaker.GenerateResponse(ctx, snap, intent, strategy, language)
		attempts++
	}

	return resp, attempts, false
}
