package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionRecord_Valid(t *testing.T) {
	tests := []struct {
		name   string
		record QuestionRecord
		want   bool
	}{
		{
			name:   "correct answer among four options",
			record: QuestionRecord{QuestionText: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4"},
			want:   true,
		},
		{
			name:   "correct answer not an option",
			record: QuestionRecord{QuestionText: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "7"},
			want:   false,
		},
		{
			name:   "three options",
			record: QuestionRecord{QuestionText: "2+2?", Options: []string{"3", "4", "5"}, CorrectAnswer: "4"},
			want:   false,
		},
		{
			name:   "five options",
			record: QuestionRecord{QuestionText: "2+2?", Options: []string{"3", "4", "5", "6", "7"}, CorrectAnswer: "4"},
			want:   false,
		},
		{
			name:   "case differs",
			record: QuestionRecord{QuestionText: "Capital?", Options: []string{"Paris", "Rome", "Oslo", "Bern"}, CorrectAnswer: "paris"},
			want:   false,
		},
		{
			name:   "surrounding whitespace differs",
			record: QuestionRecord{QuestionText: "Capital?", Options: []string{"Paris", "Rome", "Oslo", "Bern"}, CorrectAnswer: " Paris"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Valid())
		})
	}
}

func TestIsCode(t *testing.T) {
	err := NewInvalidInputError("topic is required")
	assert.True(t, IsCode(err, ErrInvalidInput))
	assert.False(t, IsCode(err, ErrNotFound))
	assert.False(t, IsCode(nil, ErrInvalidInput))
}
