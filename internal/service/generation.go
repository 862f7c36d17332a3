package service

import (
	"context"
	"fmt"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/extract"
	"quizforge/internal/orchestrator"

	"go.uber.org/zap"
)

// DefaultMaxQuestions caps a single generation request when no limit is configured.
const DefaultMaxQuestions = 50

// QuizGenerationService produces multiple-choice questions for a topic.
type QuizGenerationService interface {
	// GenerateQuestions fails only on invalid input. Provider failures end in
	// synthetic questions.
	GenerateQuestions(ctx context.Context, topic string, numQuestions int) (*domain.QuizDraft, error)
}

type quizGenerationService struct {
	orch         *orchestrator.FallbackOrchestrator
	maxQuestions int
	logger       *zap.Logger
}

// NewQuizGenerationService creates a QuizGenerationService. maxQuestions <= 0
// selects DefaultMaxQuestions.
func NewQuizGenerationService(orch *orchestrator.FallbackOrchestrator, maxQuestions int, logger *zap.Logger) QuizGenerationService {
	if maxQuestions <= 0 {
		maxQuestions = DefaultMaxQuestions
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &quizGenerationService{orch: orch, maxQuestions: maxQuestions, logger: logger}
}

func (s *quizGenerationService) GenerateQuestions(ctx context.Context, topic string, numQuestions int) (*domain.QuizDraft, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, domain.NewInvalidInputError("topic is required")
	}
	if numQuestions < 1 {
		return nil, domain.NewInvalidInputError("numQuestions must be at least 1")
	}
	if numQuestions > s.maxQuestions {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("numQuestions must be at most %d", s.maxQuestions))
	}

	questions, outcome := orchestrator.ResolveWithOutcome(ctx, s.orch, questionPrompt(topic, numQuestions), extract.Questions,
		func() []domain.QuestionRecord {
			return orchestrator.SyntheticQuestions(topic, numQuestions)
		})

	// Providers may return more than asked for; fewer is kept as is.
	if len(questions) > numQuestions {
		questions = questions[:numQuestions]
	}

	s.logger.Info("Generated quiz questions",
		zap.String("topic", topic),
		zap.Int("requested", numQuestions),
		zap.Int("returned", len(questions)),
		zap.String("source", outcome.Source),
	)

	return &domain.QuizDraft{
		Topic:     topic,
		Questions: questions,
		Source:    outcome.Source,
	}, nil
}
