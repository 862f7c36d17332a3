package service

import (
	"context"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/util"

	"go.uber.org/zap"
)

// ResultService grades submissions and reads stored results.
type ResultService interface {
	Submit(ctx context.Context, studentID, quizID string, answers []domain.SubmittedAnswer) (*dto.SubmitAnswersResponse, error)
	MyResults(ctx context.Context, studentID string) ([]dto.ResultResponse, error)
	QuizResults(ctx context.Context, quizID string) ([]dto.ResultResponse, error)
}

type resultService struct {
	quizzes domain.QuizRepository
	results domain.ResultRepository
	fanout  *ExplanationFanout
	logger  *zap.Logger
	nowFunc func() time.Time
}

// NewResultService creates a new instance of resultService
func NewResultService(quizzes domain.QuizRepository, results domain.ResultRepository, fanout *ExplanationFanout, logger *zap.Logger) ResultService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &resultService{quizzes: quizzes, results: results, fanout: fanout, logger: logger, nowFunc: time.Now}
}

// Submit grades answers, stores the score and returns the full report.
// Explanations are returned but not stored.
func (s *resultService) Submit(ctx context.Context, studentID, quizID string, answers []domain.SubmittedAnswer) (*dto.SubmitAnswersResponse, error) {
	quiz, err := s.quizzes.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	report := s.fanout.Grade(ctx, quiz.Questions, answers)

	result := &domain.Result{
		ID:        util.NewULID(),
		QuizID:    quiz.ID,
		StudentID: studentID,
		Score:     report.Score,
		Total:     report.Total,
		CreatedAt: s.nowFunc().UTC(),
	}
	if err := s.results.SaveResult(ctx, result); err != nil {
		return nil, domain.NewInternalError("Failed to save result", err)
	}

	s.logger.Info("Submission graded",
		zap.String("quiz_id", quiz.ID),
		zap.String("student_id", studentID),
		zap.Int("score", report.Score),
		zap.Int("total", report.Total),
	)

	return &dto.SubmitAnswersResponse{
		QuizID:   quiz.ID,
		ResultID: result.ID,
		Score:    report.Score,
		Total:    report.Total,
		Details:  report.Details,
	}, nil
}

func (s *resultService) MyResults(ctx context.Context, studentID string) ([]dto.ResultResponse, error) {
	results, err := s.results.GetResultsByStudent(ctx, studentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get results", err)
	}
	return toResultResponses(results), nil
}

func (s *resultService) QuizResults(ctx context.Context, quizID string) ([]dto.ResultResponse, error) {
	quiz, err := s.quizzes.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	results, err := s.results.GetResultsByQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get results", err)
	}
	return toResultResponses(results), nil
}

func toResultResponses(results []*domain.Result) []dto.ResultResponse {
	out := make([]dto.ResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.ResultResponse{
			ID:        r.ID,
			QuizID:    r.QuizID,
			QuizTitle: r.QuizTitle,
			StudentID: r.StudentID,
			Score:     r.Score,
			Total:     r.Total,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}
