package router

import (
	"context"
	"fmt"
	"strings"

	"adaptive-response-engine/internal/model"
)

// Classify determines the intent of an utterance.
// A response naming no known label yields INFORMATION without error; a
// generator failure is returned so the caller can decide how to degrade.
func (r *IntentRouter) Classify(ctx context.Context, text string) (model.Intent, error) {
	prompt := fmt.Sprintf(PromptClassifyIntent, text, labelList())

	resp, err := r.gen.Generate(ctx, prompt, RouterMaxTokens, RouterTemperature)
	if err != nil {
		return RouterFallbackIntent, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	intent, ok := ParseIntent(resp)
	if !ok {
		r.l.Debugf(ctx, "%s: %s (response=%q)", LogPrefixClassify, ErrMsgNoLabel, resp)
		return RouterFallbackIntent, nil
	}

	r.l.Debugf(ctx, "%s: classified as %s", LogPrefixClassify, intent)
	return intent, nil
}

// ParseIntent returns the first label of model.Intents contained in the
// upper-cased response. Label order decides overlaps.
func ParseIntent(resp string) (model.Intent, bool) {
	upper := strings.ToUpper(resp)
	for _, intent := range model.Intents {
		if strings.Contains(upper, string(intent)) {
			return intent, true
		}
	}
	return RouterFallbackIntent, false
}

func labelList() string {
	labels := make([]string, len(model.Intents))
	for i, intent := range model.Intents {
		labels[i] = string(intent)
	}
	return strings.Join(labels, ", ")
}
