package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adaptive-response-engine/pkg/log"
)

// Request outcome labels reported to an Observer.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Observer receives one notification per provider attempt chain.
type Observer interface {
	ObserveLLMRequest(provider, status string, duration time.Duration)
}

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	observer  Observer
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
	SystemPrompt    string        // Sent as the system instruction by Generate
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// SetObserver registers an Observer for request outcomes.
func (m *Manager) SetObserver(o Observer) {
	m.observer = o
}

// Generate implements Generator: one user prompt under the configured system prompt,
// returning the trimmed text of the first successful provider.
func (m *Manager) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	req := &Request{
		Messages:    []Message{TextMessage(RoleUser, prompt)},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	if m.config.SystemPrompt != "" {
		sys := TextMessage(RoleSystem, m.config.SystemPrompt)
		req.SystemInstruction = &sys
	}

	resp, err := m.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Content.Text())
	if text == "" {
		return "", fmt.Errorf("%s: %w", resp.ProviderName, ErrEmptyResponse)
	}
	return text, nil
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	// Global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		start := time.Now()
		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.observe(provider, StatusSuccess, time.Since(start))
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.observe(provider, StatusFailure, time.Since(start))
		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries a single provider with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) observe(provider Provider, status string, d time.Duration) {
	if m.observer != nil {
		m.observer.ObserveLLMRequest(provider.Name(), status, d)
	}
}

// logSuccess logs successful LLM generation with token usage
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", in,
		"output_tokens", out,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
