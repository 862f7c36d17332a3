package domain

import (
	"context"
	"time"
)

// OptionCount is the number of options every question must carry.
const OptionCount = 4

// NoAnswer is recorded as the student answer when a question was not answered.
const NoAnswer = "No answer"

// QuestionRecord is a single multiple-choice question as produced by generation.
type QuestionRecord struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Valid reports whether the record has exactly four options and the correct
// answer equals one of them. Comparison is exact: no case folding or trimming.
func (q QuestionRecord) Valid() bool {
	if len(q.Options) != OptionCount {
		return false
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return true
		}
	}
	return false
}

// QuizDraft is the result of one generation call. It may hold fewer questions
// than requested; it is never padded.
type QuizDraft struct {
	Topic     string           `json:"topic"`
	Questions []QuestionRecord `json:"questions"`
	// Source names the provider that produced the questions, or "synthetic".
	Source string `json:"source"`
}

// Question is a persisted question with an identifier.
type Question struct {
	ID string `json:"id"`
	QuestionRecord
}

// Quiz is a teacher-owned set of questions.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Topic       string     `json:"topic"`
	Questions   []Question `json:"questions"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SubmittedAnswer is one answer in a student's submission.
type SubmittedAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// GradeDetail is the graded outcome of one question.
type GradeDetail struct {
	QuestionID    string `json:"questionId"`
	QuestionText  string `json:"questionText"`
	CorrectAnswer string `json:"correctAnswer"`
	StudentAnswer string `json:"studentAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}

// GradeReport is the outcome of one grading pass. Details follow quiz order.
type GradeReport struct {
	Score   int           `json:"score"`
	Total   int           `json:"total"`
	Details []GradeDetail `json:"details"`
}

// Result is the persisted summary of a submission. Explanations are not stored.
type Result struct {
	ID        string    `json:"id"`
	QuizID    string    `json:"quizId"`
	QuizTitle string    `json:"quizTitle,omitempty"`
	StudentID string    `json:"studentId"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuizRepository defines the interface for quiz persistence.
type QuizRepository interface {
	// GetQuizByID returns nil, nil when the quiz does not exist.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]*Quiz, error)
	SaveQuiz(ctx context.Context, quiz *Quiz) error
	UpdateQuiz(ctx context.Context, quiz *Quiz) error
	DeleteQuiz(ctx context.Context, id string) error
}

// ResultRepository defines the interface for result persistence.
type ResultRepository interface {
	SaveResult(ctx context.Context, result *Result) error
	GetResultsByStudent(ctx context.Context, studentID string) ([]*Result, error)
	GetResultsByQuiz(ctx context.Context, quizID string) ([]*Result, error)
}

// TransactionManager runs fn inside a database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
