package dto

import (
	"time"

	"quizforge/internal/domain"
)

// SubmitAnswersRequest carries a student's answers.
// @Description Request body for submitting answers
type SubmitAnswersRequest struct {
	Answers []domain.SubmittedAnswer `json:"answers"`
}

// SubmitAnswersResponse is the graded submission.
// @Description Score and per-question details, in quiz order
type SubmitAnswersResponse struct {
	QuizID   string               `json:"quizId"`
	ResultID string               `json:"resultId"`
	Score    int                  `json:"score"`
	Total    int                  `json:"total"`
	Details  []domain.GradeDetail `json:"details"`
}

// ResultResponse is a stored result.
type ResultResponse struct {
	ID        string    `json:"id"`
	QuizID    string    `json:"quizId"`
	QuizTitle string    `json:"quizTitle,omitempty"`
	StudentID string    `json:"studentId"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// HealthResponse reports liveness and provider configuration.
type HealthResponse struct {
	Status    string           `json:"status"`
	Preferred string           `json:"preferred,omitempty"`
	Providers []ProviderHealth `json:"providers"`
}

// ProviderHealth is one provider entry of HealthResponse.
type ProviderHealth struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}
