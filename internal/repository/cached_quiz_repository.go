package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quizforge/internal/cache"
	"quizforge/internal/domain"

	"go.uber.org/zap"
)

// CachedQuizRepository is a read-through cache in front of another
// QuizRepository. Cache failures are logged and fall back to the wrapped
// repository; they never fail a call.
type CachedQuizRepository struct {
	next   domain.QuizRepository
	cache  domain.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedQuizRepository wraps next. A ttl of 0 keeps entries until they are
// invalidated.
func NewCachedQuizRepository(next domain.QuizRepository, c domain.Cache, ttl time.Duration, logger *zap.Logger) *CachedQuizRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedQuizRepository{next: next, cache: c, ttl: ttl, logger: logger}
}

func (r *CachedQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	key := cache.QuizKey(id)

	raw, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var quiz domain.Quiz
		jsonErr := json.Unmarshal([]byte(raw), &quiz)
		if jsonErr == nil {
			return &quiz, nil
		}
		r.logger.Warn("Discarding undecodable cached quiz", zap.String("key", key), zap.Error(jsonErr))
	case errors.Is(err, domain.ErrCacheMiss):
	default:
		r.logger.Warn("Quiz cache read failed", zap.String("key", key), zap.Error(err))
	}

	quiz, err := r.next.GetQuizByID(ctx, id)
	if err != nil || quiz == nil {
		return quiz, err
	}

	data, err := json.Marshal(quiz)
	if err != nil {
		r.logger.Warn("Failed to encode quiz for cache", zap.String("quiz_id", id), zap.Error(err))
		return quiz, nil
	}
	if err := r.cache.Set(ctx, key, string(data), r.ttl); err != nil {
		r.logger.Warn("Quiz cache write failed", zap.String("key", key), zap.Error(err))
	}
	return quiz, nil
}

func (r *CachedQuizRepository) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	return r.next.ListQuizzes(ctx)
}

func (r *CachedQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	return r.next.SaveQuiz(ctx, quiz)
}

func (r *CachedQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if err := r.next.UpdateQuiz(ctx, quiz); err != nil {
		return err
	}
	r.invalidate(ctx, quiz.ID)
	return nil
}

func (r *CachedQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	if err := r.next.DeleteQuiz(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedQuizRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, cache.QuizKey(id)); err != nil {
		r.logger.Warn("Quiz cache invalidation failed", zap.String("quiz_id", id), zap.Error(err))
	}
}
