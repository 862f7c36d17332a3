package main

import (
	"fmt"

	"quizforge/internal/ai"
	"quizforge/internal/config"
	"quizforge/internal/logger"
	"quizforge/internal/orchestrator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "quizctl",
	Short:        "Generate quiz questions and answer explanations from the command line",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("provider", "", "AI provider to try first (overrides AI_PROVIDER)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(tokenCmd)
}

// pipeline bundles what the subcommands share.
type pipeline struct {
	cfg       *config.Config
	logger    *zap.Logger
	providers ai.PriorityList
	orch      *orchestrator.FallbackOrchestrator
}

func loadPipeline(cmd *cobra.Command) (*pipeline, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.AI.Provider = p
	}

	cfg.Logger.Env = logger.EnvCLI
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	l := logger.Get()

	providers := ai.NewPriorityList(ai.NewClients(cmd.Context(), cfg.AI, l), cfg.AI.Provider, l)
	return &pipeline{
		cfg:       cfg,
		logger:    l,
		providers: providers,
		orch:      orchestrator.New(providers, l),
	}, nil
}
