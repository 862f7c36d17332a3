package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/repository/models"
	"quizforge/internal/util"

	"github.com/jmoiron/sqlx"
)

// Oracle upper-cases unquoted identifiers, so every selected column carries
// a quoted lower-case alias matching the db tags.
const quizColumns = `id "id",
		title "title",
		description "description",
		topic "topic",
		questions "questions",
		created_by "created_by",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"`

// sqlxQuizRepository implements domain.QuizRepository using sqlx.
type sqlxQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository
func NewSQLXQuizRepository(db *sqlx.DB) domain.QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	query := `SELECT ` + quizColumns + `
	FROM quizzes
	WHERE id = :1
	AND deleted_at IS NULL`

	var m models.Quiz
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz %s: %w", id, err)
	}
	return toDomainQuiz(&m), nil
}

func (r *sqlxQuizRepository) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	query := `SELECT ` + quizColumns + `
	FROM quizzes
	WHERE deleted_at IS NULL
	ORDER BY created_at DESC`

	var rows []models.Quiz
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	out := make([]*domain.Quiz, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainQuiz(&rows[i]))
	}
	return out, nil
}

func (r *sqlxQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	m := toModelQuiz(quiz)
	questions, err := m.Questions.Value()
	if err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}

	query := `INSERT INTO quizzes (id, title, description, topic, questions, created_by, created_at, updated_at)
	VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`

	_, err = GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.ID, m.Title, m.Description, m.Topic, questions, m.CreatedBy, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}
	return nil
}

func (r *sqlxQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	m := toModelQuiz(quiz)
	questions, err := m.Questions.Value()
	if err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}

	query := `UPDATE quizzes
	SET title = :1, description = :2, topic = :3, questions = :4, updated_at = :5
	WHERE id = :6 AND deleted_at IS NULL`

	_, err = GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.Title, m.Description, m.Topic, questions, m.UpdatedAt, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update quiz %s: %w", quiz.ID, err)
	}
	return nil
}

// DeleteQuiz soft-deletes the quiz. Its results are kept.
func (r *sqlxQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	query := `UPDATE quizzes SET deleted_at = :1 WHERE id = :2 AND deleted_at IS NULL`

	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("failed to delete quiz %s: %w", id, err)
	}
	return nil
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	questions := make([]domain.Question, len(m.Questions))
	for i, q := range m.Questions {
		questions[i] = domain.Question{
			ID: q.ID,
			QuestionRecord: domain.QuestionRecord{
				QuestionText:  q.QuestionText,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
			},
		}
	}
	return &domain.Quiz{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description.String,
		Topic:       m.Topic.String,
		Questions:   questions,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toModelQuiz(d *domain.Quiz) *models.Quiz {
	questions := make(models.QuestionList, len(d.Questions))
	for i, q := range d.Questions {
		questions[i] = models.StoredQuestion{
			ID:            q.ID,
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return &models.Quiz{
		ID:          d.ID,
		Title:       d.Title,
		Description: util.StringToNullString(d.Description),
		Topic:       util.StringToNullString(d.Topic),
		Questions:   questions,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
