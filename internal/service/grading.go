package service

import (
	"context"
	"fmt"

	"quizforge/internal/domain"
	"quizforge/internal/orchestrator"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultExplainConcurrency bounds concurrent explanation calls when no
// limit is configured.
const DefaultExplainConcurrency = 4

// ExplanationFanout grades submissions and attaches an explanation to every
// question. A failing explanation never fails the whole pass.
type ExplanationFanout struct {
	explainer   AnswerExplanationService
	concurrency int
	logger      *zap.Logger
}

// NewExplanationFanout creates an ExplanationFanout. concurrency <= 0 selects
// DefaultExplainConcurrency.
func NewExplanationFanout(explainer AnswerExplanationService, concurrency int, logger *zap.Logger) *ExplanationFanout {
	if concurrency <= 0 {
		concurrency = DefaultExplainConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExplanationFanout{explainer: explainer, concurrency: concurrency, logger: logger}
}

// Grade scores answers against questions. Details follow question order;
// unanswered questions are recorded with domain.NoAnswer.
func (f *ExplanationFanout) Grade(ctx context.Context, questions []domain.Question, answers []domain.SubmittedAnswer) domain.GradeReport {
	submitted := make(map[string]string, len(answers))
	for _, a := range answers {
		// First answer for a question wins.
		if _, seen := submitted[a.QuestionID]; !seen {
			submitted[a.QuestionID] = a.Answer
		}
	}

	explanations := f.Explanations(ctx, questions)

	report := domain.GradeReport{
		Total:   len(questions),
		Details: make([]domain.GradeDetail, len(questions)),
	}
	for i, q := range questions {
		answer, ok := submitted[q.ID]
		if !ok {
			answer = domain.NoAnswer
		}
		correct := ok && answer == q.CorrectAnswer
		if correct {
			report.Score++
		}
		report.Details[i] = domain.GradeDetail{
			QuestionID:    q.ID,
			QuestionText:  q.QuestionText,
			CorrectAnswer: q.CorrectAnswer,
			StudentAnswer: answer,
			IsCorrect:     correct,
			Explanation:   explanations[i],
		}
	}
	return report
}

// Explanations returns one explanation per question, in question order.
func (f *ExplanationFanout) Explanations(ctx context.Context, questions []domain.Question) []string {
	out := make([]string, len(questions))

	var g errgroup.Group
	g.SetLimit(f.concurrency)
	for i, q := range questions {
		g.Go(func() error {
			out[i] = f.explainOne(ctx, q)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (f *ExplanationFanout) explainOne(ctx context.Context, q domain.Question) (explanation string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("Explanation panicked",
				zap.String("question_id", q.ID),
				zap.Any("panic", r),
			)
			explanation = orchestrator.FallbackExplanation(q.CorrectAnswer)
		}
	}()

	text, err := f.explainer.Explain(ctx, q.QuestionText, q.CorrectAnswer)
	if err != nil || text == "" {
		if err == nil {
			err = fmt.Errorf("empty explanation")
		}
		f.logger.Warn("Explanation failed, using template",
			zap.String("question_id", q.ID),
			zap.Error(err),
		)
		return orchestrator.FallbackExplanation(q.CorrectAnswer)
	}
	return text
}
