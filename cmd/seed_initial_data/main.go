// Command seed_initial_data loads quizzes from a JSON file into the database.
// The file holds an array of quiz objects in the same shape as the create
// quiz request body.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"quizforge/internal/config"
	"quizforge/internal/database"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/repository"
	"quizforge/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultSeedFile = "config/seed_data/quizzes.json"

func main() {
	cmd := &cobra.Command{
		Use:          "seed_initial_data",
		Short:        "Insert the quizzes listed in a seed file",
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().String("file", defaultSeedFile, "path to the seed file")
	cmd.Flags().String("owner", "seed", "user id recorded as the quiz author")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSeedFile(path string) ([]dto.CreateQuizRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var quizzes []dto.CreateQuizRequest
	if err := json.Unmarshal(raw, &quizzes); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return quizzes, nil
}

func run(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	owner, _ := cmd.Flags().GetString("owner")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	seeds, err := loadSeedFile(path)
	if err != nil {
		return err
	}
	log.Info("Loaded seed data", zap.String("path", path), zap.Int("quizzes", len(seeds)))

	ctx := cmd.Context()
	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN(), log)
	if err != nil {
		return err
	}
	defer db.Close()

	// Seeding never asks for explanations, so the fanout has no explainer.
	quizzes := service.NewQuizService(
		repository.NewSQLXQuizRepository(db),
		repository.NewTransactionManagerAdapter(db, log),
		nil,
		log,
	)

	for i := range seeds {
		quiz, err := quizzes.CreateQuiz(ctx, owner, &seeds[i])
		if err != nil {
			return fmt.Errorf("seed quiz %q: %w", seeds[i].Title, err)
		}
		log.Info("Seeded quiz", zap.String("quiz_id", quiz.ID), zap.String("title", quiz.Title))
	}

	log.Info("Seeding completed", zap.Int("quizzes", len(seeds)))
	return nil
}
