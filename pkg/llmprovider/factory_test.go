package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adaptive-response-engine/config"
)

func TestInitializeProviders_SortsByPriorityAndSkipsDisabled(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 2, APIKey: "k2"},
			{Name: "openrouter", Enabled: true, Priority: 1, APIKey: "k1", Timeout: "5s"},
			{Name: "openrouter", Enabled: false, Priority: 3, APIKey: "k3"},
			{Name: "gemini", Enabled: true, Priority: 4, APIKey: "k4"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 3 {
		t.Fatalf("expected 3 providers, got %d", len(providers))
	}
	if providers[0].Name() != "openrouter" || providers[1].Name() != "qwen" || providers[2].Name() != "gemini" {
		t.Errorf("unexpected order: %s, %s, %s", providers[0].Name(), providers[1].Name(), providers[2].Name())
	}
	if providers[0].Model() != "openai/gpt-3.5-turbo" {
		t.Errorf("expected default openrouter model, got %s", providers[0].Model())
	}
}

func TestInitializeProviders_SkipsBrokenProvider(t *testing.T) {
	logger := &mockLogger{}
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "openrouter", Enabled: true, Priority: 1},
			{Name: "qwen", Enabled: true, Priority: 2, APIKey: "k"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "qwen" {
		t.Fatalf("expected only qwen to survive, got %d providers", len(providers))
	}
	if len(logger.warnMessages) == 0 {
		t.Error("expected a warning for the provider without API key")
	}
}

func TestInitializeProviders_Errors(t *testing.T) {
	if _, err := InitializeProviders(context.Background(), nil, &mockLogger{}); err == nil {
		t.Error("expected error for nil config")
	}

	_, err := InitializeProviders(context.Background(), &config.LLMConfig{}, &mockLogger{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}

	_, err = InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "unknown", Enabled: true, Priority: 1, APIKey: "k"}},
	}, &mockLogger{})
	if err == nil {
		t.Error("expected error when no provider initializes")
	}
}

func TestManagerConfig(t *testing.T) {
	out, err := ManagerConfig(&config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "250ms",
		MaxTotalTimeout: "30s",
		SystemPrompt:    "be brief",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RetryDelay != 250*time.Millisecond || out.MaxTotalTimeout != 30*time.Second {
		t.Errorf("unexpected durations: %v %v", out.RetryDelay, out.MaxTotalTimeout)
	}
	if !out.FallbackEnabled || out.RetryAttempts != 2 || out.SystemPrompt != "be brief" {
		t.Errorf("unexpected config: %+v", out)
	}

	if _, err := ManagerConfig(&config.LLMConfig{RetryDelay: "soon"}); err == nil {
		t.Error("expected error for invalid retry delay")
	}
}

func TestGeminiAdapter_ThroughManager(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":" Why now? "}]}}],"usageMetadata":{"totalTokenCount":7}}`))
	}))
	defer srv.Close()

	providers, err := InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", BaseURL: srv.URL}},
	}, &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := NewManager(providers, &Config{RetryAttempts: 1}, &mockLogger{})
	text, err := m.Generate(context.Background(), "hello", 40, 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Why now?" {
		t.Errorf("expected trimmed text, got %q", text)
	}
}
