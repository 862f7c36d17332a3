package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/util"

	"go.uber.org/zap"
)

// QuizService manages stored quizzes.
type QuizService interface {
	CreateQuiz(ctx context.Context, ownerID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	ListQuizzes(ctx context.Context) ([]dto.QuizSummaryResponse, error)
	// GetQuiz attaches an explanation to every question when explain is set.
	GetQuiz(ctx context.Context, id string, explain bool) (*dto.QuizResponse, error)
	UpdateQuiz(ctx context.Context, ownerID, id string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, ownerID, id string) error
}

type quizService struct {
	repo    domain.QuizRepository
	txm     domain.TransactionManager
	fanout  *ExplanationFanout
	logger  *zap.Logger
	nowFunc func() time.Time
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuizRepository, txm domain.TransactionManager, fanout *ExplanationFanout, logger *zap.Logger) QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &quizService{repo: repo, txm: txm, fanout: fanout, logger: logger, nowFunc: time.Now}
}

func (s *quizService) CreateQuiz(ctx context.Context, ownerID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.NewInvalidInputError("title is required")
	}
	questions, err := toQuestions(req.Questions, nil)
	if err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	quiz := &domain.Quiz{
		ID:          util.NewULID(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Topic:       strings.TrimSpace(req.Topic),
		Questions:   questions,
		CreatedBy:   ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.SaveQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	s.logger.Info("Quiz created",
		zap.String("quiz_id", quiz.ID),
		zap.String("owner_id", ownerID),
		zap.Int("questions", len(quiz.Questions)),
	)
	return toQuizResponse(quiz, nil), nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]dto.QuizSummaryResponse, error) {
	quizzes, err := s.repo.ListQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	out := make([]dto.QuizSummaryResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, dto.QuizSummaryResponse{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			Topic:         q.Topic,
			CreatedBy:     q.CreatedBy,
			QuestionCount: len(q.Questions),
			CreatedAt:     q.CreatedAt,
		})
	}
	return out, nil
}

func (s *quizService) GetQuiz(ctx context.Context, id string, explain bool) (*dto.QuizResponse, error) {
	quiz, err := s.loadQuiz(ctx, id)
	if err != nil {
		return nil, err
	}

	var explanations []string
	if explain {
		explanations = s.fanout.Explanations(ctx, quiz.Questions)
	}
	return toQuizResponse(quiz, explanations), nil
}

func (s *quizService) UpdateQuiz(ctx context.Context, ownerID, id string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}

	var updated *domain.Quiz
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		quiz, err := s.loadOwnedQuiz(ctx, ownerID, id)
		if err != nil {
			return err
		}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return domain.NewInvalidInputError("title cannot be empty")
			}
			quiz.Title = title
		}
		if req.Description != nil {
			quiz.Description = strings.TrimSpace(*req.Description)
		}
		if req.Questions != nil {
			questions, err := toQuestions(*req.Questions, quiz.Questions)
			if err != nil {
				return err
			}
			quiz.Questions = questions
		}
		quiz.UpdatedAt = s.nowFunc().UTC()

		if err := s.repo.UpdateQuiz(ctx, quiz); err != nil {
			return domain.NewInternalError("Failed to update quiz", err)
		}
		updated = quiz
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toQuizResponse(updated, nil), nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, ownerID, id string) error {
	return s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.loadOwnedQuiz(ctx, ownerID, id); err != nil {
			return err
		}
		if err := s.repo.DeleteQuiz(ctx, id); err != nil {
			return domain.NewInternalError("Failed to delete quiz", err)
		}
		s.logger.Info("Quiz deleted", zap.String("quiz_id", id), zap.String("owner_id", ownerID))
		return nil
	})
}

func (s *quizService) loadQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}
	return quiz, nil
}

func (s *quizService) loadOwnedQuiz(ctx context.Context, ownerID, id string) (*domain.Quiz, error) {
	quiz, err := s.loadQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz.CreatedBy != ownerID {
		return nil, domain.NewForbiddenError("only the quiz owner can modify this quiz")
	}
	return quiz, nil
}

// toQuestions validates payloads and assigns IDs. A payload ID is kept only
// when it names one of the existing questions and was not used earlier in
// the same request.
func toQuestions(payloads []dto.QuestionPayload, existing []domain.Question) ([]domain.Question, error) {
	if len(payloads) == 0 {
		return nil, domain.NewInvalidInputError("at least one question is required")
	}

	known := make(map[string]bool, len(existing))
	for _, q := range existing {
		known[q.ID] = true
	}

	out := make([]domain.Question, 0, len(payloads))
	for i, p := range payloads {
		record := domain.QuestionRecord{
			QuestionText:  strings.TrimSpace(p.QuestionText),
			Options:       p.Options,
			CorrectAnswer: p.CorrectAnswer,
		}
		if record.QuestionText == "" {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("question %d: questionText is required", i+1))
		}
		if !record.Valid() {
			return nil, domain.NewInvalidInputError(fmt.Sprintf(
				"question %d: must have exactly %d options and a correctAnswer equal to one of them", i+1, domain.OptionCount))
		}

		id := p.ID
		if !known[id] {
			id = util.NewULID()
		}
		delete(known, id)
		out = append(out, domain.Question{ID: id, QuestionRecord: record})
	}
	return out, nil
}

func toQuizResponse(quiz *domain.Quiz, explanations []string) *dto.QuizResponse {
	resp := &dto.QuizResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Topic:       quiz.Topic,
		CreatedBy:   quiz.CreatedBy,
		Questions:   make([]dto.QuestionResponse, len(quiz.Questions)),
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
	}
	for i, q := range quiz.Questions {
		resp.Questions[i] = dto.QuestionResponse{
			ID:            q.ID,
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
		if i < len(explanations) {
			resp.Questions[i].Explanation = explanations[i]
		}
	}
	return resp
}
