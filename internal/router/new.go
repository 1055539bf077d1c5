package router

import (
	"context"

	"adaptive-response-engine/internal/model"
	"adaptive-response-engine/pkg/llmprovider"
	"adaptive-response-engine/pkg/log"
)

// Router is the interface for intent classification
type Router interface {
	Classify(ctx context.Context, text string) (model.Intent, error)
}

// IntentRouter classifies primary utterances with a text generator
type IntentRouter struct {
	gen llmprovider.Generator
	l   log.Logger
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter
func New(gen llmprovider.Generator, l log.Logger) *IntentRouter {
	return &IntentRouter{
		gen: gen,
		l:   l,
	}
}
