package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StoredQuestion is the JSON form of one question inside the questions CLOB.
type StoredQuestion struct {
	ID            string   `json:"id"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// QuestionList is stored as a JSON array in a CLOB column.
type QuestionList []StoredQuestion

// Value implements the driver.Valuer interface
func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	// go-ora binds string, not []byte, to CLOB.
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (l *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*l = QuestionList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("QuestionList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(data) == 0 || string(data) == "null" {
		*l = QuestionList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Quiz is a row of the quizzes table.
type Quiz struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Topic       sql.NullString `db:"topic"`
	Questions   QuestionList   `db:"questions"`
	CreatedBy   string         `db:"created_by"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   sql.NullTime   `db:"deleted_at"`
}

// QuizResult is a row of the quiz_results table, joined with the quiz title
// when read.
type QuizResult struct {
	ID        string         `db:"id"`
	QuizID    string         `db:"quiz_id"`
	QuizTitle sql.NullString `db:"quiz_title"`
	StudentID string         `db:"student_id"`
	Score     int            `db:"score"`
	Total     int            `db:"total"`
	CreatedAt time.Time      `db:"created_at"`
}
