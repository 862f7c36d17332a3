package service

import (
	"context"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/extract"
	"quizforge/internal/orchestrator"
)

// AnswerExplanationService explains why an answer is correct.
type AnswerExplanationService interface {
	// Explain returns a non-empty explanation for valid input.
	Explain(ctx context.Context, questionText, correctAnswer string) (string, error)
}

type answerExplanationService struct {
	orch *orchestrator.FallbackOrchestrator
}

// NewAnswerExplanationService creates an AnswerExplanationService.
func NewAnswerExplanationService(orch *orchestrator.FallbackOrchestrator) AnswerExplanationService {
	return &answerExplanationService{orch: orch}
}

func (s *answerExplanationService) Explain(ctx context.Context, questionText, correctAnswer string) (string, error) {
	if strings.TrimSpace(questionText) == "" {
		return "", domain.NewInvalidInputError("questionText is required")
	}
	if strings.TrimSpace(correctAnswer) == "" {
		return "", domain.NewInvalidInputError("correctAnswer is required")
	}

	return orchestrator.Resolve(ctx, s.orch, explanationPrompt(questionText, correctAnswer), extract.Explanation,
		func() string {
			return orchestrator.SyntheticExplanation(correctAnswer)
		}), nil
}
