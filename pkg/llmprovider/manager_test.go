package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
	lastReq    *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type recordingObserver struct {
	calls []string
}

func (o *recordingObserver) ObserveLLMRequest(provider, status string, _ time.Duration) {
	o.calls = append(o.calls, provider+":"+status)
}

func textResponse(provider, text string) *Response {
	return &Response{
		Content:      TextMessage(RoleAssistant, text),
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage: &Usage{
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
		},
	}
}

func helloRequest() *Request {
	return &Request{Messages: []Message{TextMessage(RoleUser, "Hello")}}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: textResponse("primary", "Hello from primary provider"),
	}

	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "secondary-model",
		response: textResponse("secondary", "Hello from secondary provider"),
	}

	logger := &mockLogger{}
	observer := &recordingObserver{}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)
	manager.SetObserver(observer)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	// Primary is retried RetryAttempts times before falling back
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
	if len(observer.calls) != 2 || observer.calls[0] != "primary:failure" || observer.calls[1] != "secondary:success" {
		t.Errorf("Unexpected observer calls: %v", observer.calls)
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", shouldFail: true}

	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err == nil {
		t.Fatal("Expected error when all providers fail, got nil")
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 2 {
		t.Errorf("Expected secondary provider to be called 2 times, got: %d", secondary.callCount)
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "secondary-model",
		response: textResponse("secondary", "unused"),
	}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager([]Provider{}, &Config{FallbackEnabled: true, RetryAttempts: 3}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
}

func TestGenerateContent_EmptyRequest(t *testing.T) {
	primary := &mockProvider{name: "primary", response: textResponse("primary", "x")}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("Expected provider not to be called, got: %d", primary.callCount)
	}
}

func TestGenerate_SendsPromptUnderSystemInstruction(t *testing.T) {
	primary := &mockProvider{name: "primary", response: textResponse("primary", "  What happened next?  ")}
	manager := NewManager([]Provider{primary}, &Config{
		RetryAttempts: 1,
		SystemPrompt:  "Keep responses brief.",
	}, &mockLogger{})

	text, err := manager.Generate(context.Background(), "the prompt", 40, 0.9)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if text != "What happened next?" {
		t.Errorf("Expected trimmed text, got: %q", text)
	}

	req := primary.lastReq
	if req.SystemInstruction == nil || req.SystemInstruction.Text() != "Keep responses brief." {
		t.Errorf("Expected system instruction to be set, got: %+v", req.SystemInstruction)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != RoleUser || req.Messages[0].Text() != "the prompt" {
		t.Errorf("Unexpected messages: %+v", req.Messages)
	}
	if req.MaxTokens != 40 || req.Temperature != 0.9 {
		t.Errorf("Expected max_tokens=40 temperature=0.9, got %d %v", req.MaxTokens, req.Temperature)
	}
}

func TestGenerate_EmptyText(t *testing.T) {
	primary := &mockProvider{name: "primary", response: textResponse("primary", "   ")}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.Generate(context.Background(), "prompt", 16, 0.1)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("Expected ErrEmptyResponse, got: %v", err)
	}
	if primary.lastReq.SystemInstruction != nil {
		t.Errorf("Expected no system instruction without a system prompt")
	}
}

func TestGenerate_GlobalTimeout(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	manager := NewManager([]Provider{primary}, &Config{
		RetryAttempts:   5,
		RetryDelay:      time.Second,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	_, err := manager.Generate(context.Background(), "prompt", 16, 0.1)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("Expected the global timeout to cut retries short, took %v", time.Since(start))
	}
	if primary.callCount != 1 {
		t.Errorf("Expected a single attempt before the timeout, got: %d", primary.callCount)
	}
}
