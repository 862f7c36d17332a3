// Command batch_add_questions generates a quiz per topic with the AI providers
// and stores it. Topics whose generation fell back to placeholder questions
// are skipped.
package main

import (
	"fmt"
	"os"
	"strings"

	"quizforge/internal/ai"
	"quizforge/internal/config"
	"quizforge/internal/database"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/orchestrator"
	"quizforge/internal/repository"
	"quizforge/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cmd := &cobra.Command{
		Use:          "batch_add_questions --topic <topic> [--topic <topic>...]",
		Short:        "Generate and store one quiz per topic",
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().StringSlice("topic", nil, "topic to generate a quiz for (repeatable)")
	cmd.Flags().IntP("count", "n", 10, "questions per quiz")
	cmd.Flags().String("owner", "batch", "user id recorded as the quiz author")
	_ = cmd.MarkFlagRequired("topic")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	topics, _ := cmd.Flags().GetStringSlice("topic")
	count, _ := cmd.Flags().GetInt("count")
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

	ctx := cmd.Context()
	log.Info("Batch process starting up...", zap.Strings("topics", topics))

	providers := ai.NewPriorityList(ai.NewClients(ctx, cfg.AI, log), cfg.AI.Provider, log)
	if len(providers.Eligible()) == 0 {
		return fmt.Errorf("no AI provider configured")
	}
	orch := orchestrator.New(providers, log)

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN(), log)
	if err != nil {
		return err
	}
	defer db.Close()

	generator := service.NewQuizGenerationService(orch, cfg.AI.MaxQuestions, log)
	fanout := service.NewExplanationFanout(service.NewAnswerExplanationService(orch), cfg.AI.ExplainConcurrency, log)
	quizzes := service.NewQuizService(
		repository.NewSQLXQuizRepository(db),
		repository.NewTransactionManagerAdapter(db, log),
		fanout,
		log,
	)

	created, skipped := 0, 0
	for _, topic := range topics {
		topic = strings.TrimSpace(topic)
		draft, err := generator.GenerateQuestions(ctx, topic, count)
		if err != nil {
			log.Error("Generation rejected", zap.String("topic", topic), zap.Error(err))
			skipped++
			continue
		}
		if draft.Source == orchestrator.SourceSynthetic {
			log.Warn("All providers failed, not storing placeholder questions", zap.String("topic", topic))
			skipped++
			continue
		}

		req := &dto.CreateQuizRequest{
			Title:     topic,
			Topic:     topic,
			Questions: make([]dto.QuestionPayload, len(draft.Questions)),
		}
		for i, q := range draft.Questions {
			req.Questions[i] = dto.QuestionPayload{QuestionText: q.QuestionText, Options: q.Options, CorrectAnswer: q.CorrectAnswer}
		}

		quiz, err := quizzes.CreateQuiz(ctx, owner, req)
		if err != nil {
			log.Error("Failed to store quiz", zap.String("topic", topic), zap.Error(err))
			skipped++
			continue
		}
		log.Info("Quiz stored",
			zap.String("quiz_id", quiz.ID),
			zap.String("topic", topic),
			zap.String("source", draft.Source),
			zap.Int("questions", len(quiz.Questions)),
		)
		created++
	}

	log.Info("Batch process completed", zap.Int("created", created), zap.Int("skipped", skipped))
	if created == 0 {
		return fmt.Errorf("no quiz was stored")
	}
	return nil
}
