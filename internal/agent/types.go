package agent

import (
	"adaptive-response-engine/pkg/llmprovider"
	"adaptive-response-engine/pkg/log"
)

// Agent is one named responder. It holds no conversation state; every
// per-session fact arrives through the snapshot passed to GenerateResponse.
type Agent struct {
	name  string
	voice string
	gen   llmprovider.Generator
	l     log.Logger
}

// FallbackReason tells why a canned question replaced generated text.
type FallbackReason string

const (
	FallbackNone  FallbackReason = ""
	FallbackEmpty FallbackReason = "empty"
	FallbackError FallbackReason = "error"
)

// Response is the outcome of one generation attempt. Text is always usable.
type Response struct {
	Text     string
	Fallback FallbackReason
	Err      error // generator error behind a FallbackError
}
