package repository

import (
	"context"
	"fmt"

	"quizforge/internal/domain"
	"quizforge/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const resultSelect = `SELECT
		r.id "id",
		r.quiz_id "quiz_id",
		q.title "quiz_title",
		r.student_id "student_id",
		r.score "score",
		r.total "total",
		r.created_at "created_at"
	FROM quiz_results r
	LEFT JOIN quizzes q ON q.id = r.quiz_id`

// sqlxResultRepository implements domain.ResultRepository using sqlx.
type sqlxResultRepository struct {
	db *sqlx.DB
}

// NewSQLXResultRepository creates a new instance of sqlxResultRepository
func NewSQLXResultRepository(db *sqlx.DB) domain.ResultRepository {
	return &sqlxResultRepository{db: db}
}

func (r *sqlxResultRepository) SaveResult(ctx context.Context, result *domain.Result) error {
	query := `INSERT INTO quiz_results (id, quiz_id, student_id, score, total, created_at)
	VALUES (:1, :2, :3, :4, :5, :6)`

	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		result.ID, result.QuizID, result.StudentID, result.Score, result.Total, result.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

func (r *sqlxResultRepository) GetResultsByStudent(ctx context.Context, studentID string) ([]*domain.Result, error) {
	return r.selectResults(ctx, resultSelect+`
	WHERE r.student_id = :1
	ORDER BY r.created_at DESC`, studentID)
}

func (r *sqlxResultRepository) GetResultsByQuiz(ctx context.Context, quizID string) ([]*domain.Result, error) {
	return r.selectResults(ctx, resultSelect+`
	WHERE r.quiz_id = :1
	ORDER BY r.score DESC, r.created_at ASC`, quizID)
}

func (r *sqlxResultRepository) selectResults(ctx context.Context, query string, arg string) ([]*domain.Result, error) {
	var rows []models.QuizResult
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, arg); err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	out := make([]*domain.Result, 0, len(rows))
	for _, m := range rows {
		out = append(out, &domain.Result{
			ID:        m.ID,
			QuizID:    m.QuizID,
			QuizTitle: m.QuizTitle.String,
			StudentID: m.StudentID,
			Score:     m.Score,
			Total:     m.Total,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
