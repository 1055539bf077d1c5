package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"adaptive-response-engine/config"
	_ "adaptive-response-engine/docs" // Swagger docs
	"adaptive-response-engine/internal/httpserver"
	"adaptive-response-engine/internal/metrics"
	"adaptive-response-engine/internal/session"
	sessionUC "adaptive-response-engine/internal/session/usecase"
	"adaptive-response-engine/pkg/llmprovider"
	"adaptive-response-engine/pkg/log"
	"adaptive-response-engine/pkg/speech"
)

// @title       Adaptive Response Engine API
// @description Multi-agent turn orchestration: speaker selection, strategy choice and near-duplicate suppression per session.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Adaptive Response Engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	collector := metrics.NewCollector(metrics.DefaultNamespace)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM config: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, managerCfg, logger)
	manager.SetObserver(collector)
	logger.Infof(ctx, "LLM manager ready with %d provider(s)", len(providers))

	// 5. Speech (optional)
	synthesizer, err := speech.InitializeSynthesizer(ctx, &cfg.Speech)
	if err != nil {
		logger.Warnf(ctx, "Speech synthesis not available (optional): %v", err)
	} else if synthesizer != nil {
		logger.Infof(ctx, "Speech synthesis initialized (%s)", synthesizer.Name())
	}

	transcriber, err := speech.InitializeTranscriber(ctx, &cfg.Speech)
	if err != nil {
		logger.Warnf(ctx, "Speech recognition not available (optional): %v", err)
	} else if transcriber != nil {
		logger.Info(ctx, "Speech recognition initialized")
	}

	// 6. Session domain
	uc, err := sessionUC.New(sessionUC.Deps{
		Logger:      logger,
		Generator:   manager,
		Transcriber: transcriber,
		Synthesizer: synthesizer,
		Metrics:     collector,
	}, session.NewConfig(cfg.Engine, cfg.Session, speech.Voices(&cfg.Speech)))
	if err != nil {
		logger.Error(ctx, "Failed to initialize session use case: ", err)
		return
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Metrics:         collector,
		SessionUseCase:  uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
