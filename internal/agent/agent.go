// Package agent turns a conversation snapshot into one short probing question.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"adaptive-response-engine/internal/conversation"
	"adaptive-response-engine/internal/model"
	"adaptive-response-engine/pkg/llmprovider"
)

var strategyByIntent = map[model.Intent]model.Strategy{
	model.IntentInformation:          model.StrategyProbeDetails,
	model.IntentEmotionalExpression:  model.StrategyProbeEmotion,
	model.IntentRequestRepeat:        model.StrategyClarify,
	model.IntentRequestClarification: model.StrategyClarify,
	model.IntentDefensive:            model.StrategyProbeEmotion,
	model.IntentElaboration:          model.StrategyRequestExample,
	model.IntentQuestion:             model.StrategyClarify,
}

var strategyDescriptions = map[model.Strategy]string{
	model.StrategyClarify:             "Ask for clarification to understand better",
	model.StrategyProbeDetails:        "Ask about specific details they mentioned",
	model.StrategyProbeEmotion:        "Explore their feelings and emotions",
	model.StrategyChallengeAssumption: "Gently question their assumptions",
	model.StrategyRequestExample:      "Ask for a concrete example",
	model.StrategySummarizeConfirm:    "Confirm your understanding",
	model.StrategyFollowUpQuestion:    "Follow up on what was just said",
}

var interrogatives = map[string]struct{}{
	"what": {}, "how": {}, "why": {}, "when": {}, "where": {}, "who": {},
	"can": {}, "could": {}, "would": {},
	"do": {}, "does": {}, "did": {},
	"is": {}, "are": {}, "was": {}, "were": {},
}

// SelectStrategy maps an intent to a strategy. Unknown intents get the default.
func SelectStrategy(intent model.Intent) model.Strategy {
	if s, ok := strategyByIntent[intent]; ok {
		return s
	}
	return model.DefaultStrategy
}

// StrategyDescription returns the prompt wording for a strategy.
func StrategyDescription(s model.Strategy) string {
	if d, ok := strategyDescriptions[s]; ok {
		return d
	}
	return defaultStrategyDescription
}

// SelectStrategy is the per-agent form of the package function.
func (a *Agent) SelectStrategy(intent model.Intent) model.Strategy {
	return SelectStrategy(intent)
}

// GenerateResponse asks the generator for one question. It never fails: generator
// errors and degenerate output are replaced by canned questions and reported
// through Response.Fallback.
func (a *Agent) GenerateResponse(ctx context.Context, snap conversation.Snapshot, intent model.Intent, strategy model.Strategy, language string) Response {
	if language == "" {
		language = DefaultLanguage
	}
	prompt := fmt.Sprintf(PromptGenerateResponse, snap.String(), StrategyDescription(strategy), language)

	text, err := a.gen.Generate(ctx, prompt, GenerationMaxTokens, GenerationTemperature)
	if errors.Is(err, llmprovider.ErrEmptyResponse) {
		text, err = "", nil
	}
	if err != nil {
		a.l.Warnf(ctx, "%s: %s generation failed (intent=%s strategy=%s): %v",
			LogPrefixGenerateResponse, a.name, intent, strategy, err)
		return Response{Text: FallbackErrorText, Fallback: FallbackError, Err: err}
	}

	text = strings.TrimSpace(text)
	if len(text) < MinResponseLength {
		a.l.Debugf(ctx, "%s: %s produced degenerate output %q", LogPrefixGenerateResponse, a.name, text)
		return Response{Text: FallbackEmptyText, Fallback: FallbackEmpty}
	}

	return Response{Text: EnsureQuestion(text)}
}

// EnsureQuestion appends '?' when the text opens with an interrogative word and
// does not already end with one. Only the first word is inspected.
func EnsureQuestion(text string) string {
	if strings.HasSuffix(text, "?") {
		return text
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return text
	}
	if _, ok := interrogatives[strings.ToLower(fields[0])]; ok {
		return text + "?"
	}
	return text
}
