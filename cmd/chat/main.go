package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"adaptive-response-engine/config"
	"adaptive-response-engine/internal/session"
	sessionUC "adaptive-response-engine/internal/session/usecase"
	"adaptive-response-engine/pkg/llmprovider"
	"adaptive-response-engine/pkg/log"
	"adaptive-response-engine/pkg/speech"
)

var (
	configPath string
	speakDir   string
	language   string
	seed       uint64
)

var rootCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the agent panel from the terminal",
	Long: `chat reads one utterance per line from stdin, runs it through the turn
pipeline and prints the selected agent's reply as [AGENT]: text.`,
	SilenceUsage: true,
	RunE:         runChat,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default: search ./config, ., /etc/app/)")
	rootCmd.Flags().StringVar(&speakDir, "speak-dir", "", "write synthesized replies into this directory")
	rootCmd.Flags().StringVarP(&language, "language", "l", "", "reply language name or tag (default: engine.default_language)")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible speaker selection")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runChat(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if seed != 0 {
		cfg.Engine.Seed = seed
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return err
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		return err
	}
	manager := llmprovider.NewManager(providers, managerCfg, logger)

	var synthesizer speech.Synthesizer
	if speakDir != "" {
		synthesizer, err = speech.InitializeSynthesizer(ctx, &cfg.Speech)
		if err != nil {
			return fmt.Errorf("speech synthesis: %w", err)
		}
		if synthesizer == nil {
			return fmt.Errorf("--speak-dir needs speech.tts_provider to be set")
		}
		if err := os.MkdirAll(speakDir, 0o755); err != nil {
			return err
		}
	}

	uc, err := sessionUC.New(sessionUC.Deps{
		Logger:      logger,
		Generator:   manager,
		Synthesizer: synthesizer,
	}, session.NewConfig(cfg.Engine, cfg.Session, speech.Voices(&cfg.Speech)))
	if err != nil {
		return err
	}

	return newConsole(uc, cmd.OutOrStdout(), consoleOptions{
		Language: language,
		SpeakDir: speakDir,
	}).Run(ctx, cmd.InOrStdin())
}
