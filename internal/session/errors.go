package session

import "errors"

// Domain-specific errors for the session package.
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrEmptyText         = errors.New("utterance text is empty")
	ErrTrivialUtterance  = errors.New("utterance is too short or a filler word")
	ErrNoTranscriber     = errors.New("speech recognition is not configured")
	ErrEmptyAudio        = errors.New("audio is empty")
	ErrTranscribeFailed  = errors.New("speech recognition failed")
	ErrInvalidAgentCount = errors.New("number of agents must be at least 1")
	ErrNoGenerator       = errors.New("text generator is required")
)
