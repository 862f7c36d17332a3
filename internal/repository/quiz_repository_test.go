package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"quizforge/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var quizRowColumns = []string{"id", "title", "description", "topic", "questions", "created_by", "created_at", "updated_at", "deleted_at"}

const storedQuestionsJSON = `[{"id":"Q1","questionText":"What is 2+2?","options":["3","4","5","6"],"correctAnswer":"4"}]`

func sampleQuiz(now time.Time) *domain.Quiz {
	return &domain.Quiz{
		ID:          "QUIZ1",
		Title:       "Arithmetic",
		Description: "",
		Topic:       "Math",
		CreatedBy:   "teacher-1",
		CreatedAt:   now,
		UpdatedAt:   now,
		Questions: []domain.Question{{
			ID: "Q1",
			QuestionRecord: domain.QuestionRecord{
				QuestionText:  "What is 2+2?",
				Options:       []string{"3", "4", "5", "6"},
				CorrectAnswer: "4",
			},
		}},
	}
}

func TestQuizRepository_GetQuizByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizRepository(db)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(quizRowColumns).
			AddRow("QUIZ1", "Arithmetic", nil, "Math", storedQuestionsJSON, "teacher-1", now, now, nil)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM quizzes`) + `.*` + regexp.QuoteMeta(`WHERE id = :1`)).
			WithArgs("QUIZ1").
			WillReturnRows(rows)

		quiz, err := repo.GetQuizByID(context.Background(), "QUIZ1")

		require.NoError(t, err)
		assert.Equal(t, sampleQuiz(now), quiz)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM quizzes`)).
			WithArgs("NOPE").
			WillReturnRows(sqlmock.NewRows(quizRowColumns))

		quiz, err := repo.GetQuizByID(context.Background(), "NOPE")

		assert.NoError(t, err)
		assert.Nil(t, quiz)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM quizzes`)).
			WithArgs("QUIZ1").
			WillReturnError(errors.New("ORA-12541: TNS:no listener"))

		quiz, err := repo.GetQuizByID(context.Background(), "QUIZ1")

		assert.Error(t, err)
		assert.Nil(t, quiz)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuizRepository_ListQuizzes(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizRepository(db)
	now := time.Now().UTC().Truncate(time.Second)

	rows := sqlmock.NewRows(quizRowColumns).
		AddRow("QUIZ2", "Newer", "desc", nil, "[]", "teacher-1", now, now, nil).
		AddRow("QUIZ1", "Arithmetic", nil, "Math", storedQuestionsJSON, "teacher-1", now, now, nil)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).WillReturnRows(rows)

	quizzes, err := repo.ListQuizzes(context.Background())

	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, "Newer", quizzes[0].Title)
	assert.Equal(t, "desc", quizzes[0].Description)
	assert.Empty(t, quizzes[0].Questions)
	assert.Len(t, quizzes[1].Questions, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_SaveQuiz(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizRepository(db)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quizzes`)).
		WithArgs("QUIZ1", "Arithmetic", nil, "Math", storedQuestionsJSON, "teacher-1", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveQuiz(context.Background(), sampleQuiz(now))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_UpdateQuiz(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizRepository(db)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE quizzes`)).
		WithArgs("Arithmetic", nil, "Math", storedQuestionsJSON, now, "QUIZ1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateQuiz(context.Background(), sampleQuiz(now)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_DeleteQuizIsSoft(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE quizzes SET deleted_at = :1 WHERE id = :2`)).
		WithArgs(sqlmock.AnyArg(), "QUIZ1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteQuiz(context.Background(), "QUIZ1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_UsesTransactionFromContext(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizRepository(db)
	txm := NewTransactionManagerAdapter(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE quizzes SET deleted_at`)).
		WithArgs(sqlmock.AnyArg(), "QUIZ1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := txm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return repo.DeleteQuiz(ctx, "QUIZ1")
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
