package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Turn engine
	Engine  EngineConfig
	Session SessionConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Speech collaborators
	Speech SpeechConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EngineConfig holds the per-session turn pipeline settings.
type EngineConfig struct {
	NumAgents               int
	AgentNames              []string
	MaxContextTurns         int
	SimilarityThreshold     float64
	SimilarityWindow        int
	ThreadUpdateInterval    int
	MaxThreads              int
	UseIntentClassification bool
	ContinuityProbability   float64
	MaxDedupRetries         int
	DefaultLanguage         string
	Seed                    uint64 // 0 seeds each session randomly
}

// SessionConfig bounds the in-memory session registry.
type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
	SystemPrompt    string           `yaml:"system_prompt"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// SpeechConfig selects the speech-to-text and text-to-speech backends.
// An empty TTSProvider disables synthesis.
type SpeechConfig struct {
	TTSProvider string // "elevenlabs", "google" or ""
	STTEnabled  bool
	Voices      []string
	ElevenLabs  ElevenLabsConfig
	Google      GoogleSpeechConfig
}

type ElevenLabsConfig struct {
	APIKey  string
	BaseURL string
}

type GoogleSpeechConfig struct {
	CredentialsPath string // empty uses Application Default Credentials
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.Reset()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	return load()
}

// LoadFile loads configuration from an explicit YAML file.
func LoadFile(path string) (*Config, error) {
	viper.Reset()
	viper.SetConfigFile(path)

	return load()
}

func load() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Turn engine
	cfg.Engine.NumAgents = viper.GetInt("engine.num_agents")
	cfg.Engine.AgentNames = getStringList("engine.agent_names")
	cfg.Engine.MaxContextTurns = viper.GetInt("engine.max_context_turns")
	cfg.Engine.SimilarityThreshold = viper.GetFloat64("engine.similarity_threshold")
	cfg.Engine.SimilarityWindow = viper.GetInt("engine.similarity_window")
	cfg.Engine.ThreadUpdateInterval = viper.GetInt("engine.thread_update_interval")
	cfg.Engine.MaxThreads = viper.GetInt("engine.max_threads")
	cfg.Engine.UseIntentClassification = viper.GetBool("engine.use_intent_classification")
	cfg.Engine.ContinuityProbability = viper.GetFloat64("engine.continuity_probability")
	cfg.Engine.MaxDedupRetries = viper.GetInt("engine.max_dedup_retries")
	cfg.Engine.DefaultLanguage = viper.GetString("engine.default_language")
	cfg.Engine.Seed = viper.GetUint64("engine.seed")

	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.SystemPrompt = viper.GetString("llm.system_prompt")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Fallback: a bare OPENROUTER_API_KEY enables the default provider
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("openrouter_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "openrouter",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("openrouter_model"),
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Speech
	cfg.Speech.TTSProvider = strings.ToLower(viper.GetString("speech.tts_provider"))
	cfg.Speech.STTEnabled = viper.GetBool("speech.stt_enabled")
	cfg.Speech.Voices = getStringList("speech.voices")
	cfg.Speech.ElevenLabs.APIKey = viper.GetString("speech.elevenlabs.api_key")
	cfg.Speech.ElevenLabs.BaseURL = viper.GetString("speech.elevenlabs.base_url")
	if key := viper.GetString("elevenlabs_api_key"); key != "" {
		cfg.Speech.ElevenLabs.APIKey = key
	}
	cfg.Speech.Google.CredentialsPath = viper.GetString("speech.google.credentials_path")
	if creds := viper.GetString("google_application_credentials"); creds != "" && cfg.Speech.Google.CredentialsPath == "" {
		cfg.Speech.Google.CredentialsPath = creds
	}

	if err := validateEngineConfig(&cfg.Engine); err != nil {
		return nil, err
	}
	if err := validateSpeechConfig(&cfg.Speech); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Engine defaults
	viper.SetDefault("engine.num_agents", 3)
	viper.SetDefault("engine.max_context_turns", 20)
	viper.SetDefault("engine.similarity_threshold", 0.6)
	viper.SetDefault("engine.similarity_window", 5)
	viper.SetDefault("engine.thread_update_interval", 3)
	viper.SetDefault("engine.max_threads", 5)
	viper.SetDefault("engine.use_intent_classification", false)
	viper.SetDefault("engine.continuity_probability", 0.5)
	viper.SetDefault("engine.max_dedup_retries", 2)
	viper.SetDefault("engine.default_language", "English")
	viper.SetDefault("engine.seed", 0)

	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_sessions", 1000)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.system_prompt", "You are a student therapist learning to ask therapeutic questions. Keep responses brief and always ask questions.")

	viper.SetDefault("speech.tts_provider", "")
	viper.SetDefault("speech.stt_enabled", false)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set OPENROUTER_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// validateEngineConfig rejects settings the turn pipeline cannot run with
func validateEngineConfig(cfg *EngineConfig) error {
	if cfg.NumAgents < 1 {
		return fmt.Errorf("engine.num_agents must be at least 1")
	}
	if cfg.SimilarityThreshold <= 0 || cfg.SimilarityThreshold > 1 {
		return fmt.Errorf("engine.similarity_threshold must be in (0, 1]")
	}
	if cfg.SimilarityWindow < 1 {
		return fmt.Errorf("engine.similarity_window must be at least 1")
	}
	if cfg.ThreadUpdateInterval < 1 {
		return fmt.Errorf("engine.thread_update_interval must be at least 1")
	}
	if cfg.MaxThreads < 1 {
		return fmt.Errorf("engine.max_threads must be at least 1")
	}
	if cfg.ContinuityProbability < 0 || cfg.ContinuityProbability > 1 {
		return fmt.Errorf("engine.continuity_probability must be in [0, 1]")
	}
	if cfg.MaxDedupRetries < 0 {
		return fmt.Errorf("engine.max_dedup_retries must not be negative")
	}
	return nil
}

func validateSpeechConfig(cfg *SpeechConfig) error {
	switch cfg.TTSProvider {
	case "":
	case "elevenlabs":
		if cfg.ElevenLabs.APIKey == "" {
			return fmt.Errorf("speech.elevenlabs.api_key is required for the elevenlabs provider")
		}
	case "google":
	default:
		return fmt.Errorf("unknown speech.tts_provider: %s", cfg.TTSProvider)
	}
	return nil
}

// getStringList reads a list given either as a YAML sequence or a comma separated env value
func getStringList(key string) []string {
	var out []string
	if raw := viper.GetStringSlice(key); len(raw) > 0 {
		for _, item := range raw {
			for _, part := range strings.Split(item, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
