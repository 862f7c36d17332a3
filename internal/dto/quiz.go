package dto

import "time"

// DefaultNumQuestions is used when a generation request omits numQuestions.
const DefaultNumQuestions = 5

// GenerateQuizRequest asks for AI generated questions on a topic.
// @Description Request body for question generation
type GenerateQuizRequest struct {
	Topic        string `json:"topic" example:"Algebra"`
	NumQuestions *int   `json:"numQuestions,omitempty" example:"5"`
}

// Count returns the requested number of questions. An explicit value,
// zero included, is passed through for validation.
func (r GenerateQuizRequest) Count() int {
	if r.NumQuestions == nil {
		return DefaultNumQuestions
	}
	return *r.NumQuestions
}

// QuestionPayload is a question as sent by clients.
type QuestionPayload struct {
	ID            string   `json:"id,omitempty"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// GenerateQuizResponse carries a draft that has not been saved.
// @Description Generated questions and the provider that produced them
type GenerateQuizResponse struct {
	Topic     string            `json:"topic"`
	Questions []QuestionPayload `json:"questions"`
	Source    string            `json:"source"`
}

// CreateQuizRequest creates a quiz owned by the caller.
// @Description Request body for creating a quiz
type CreateQuizRequest struct {
	Title       string            `json:"title" example:"Algebra basics"`
	Description string            `json:"description"`
	Topic       string            `json:"topic" example:"Algebra"`
	Questions   []QuestionPayload `json:"questions"`
}

// UpdateQuizRequest is a partial update. Nil fields are left unchanged.
// @Description Request body for updating a quiz
type UpdateQuizRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Questions   *[]QuestionPayload `json:"questions,omitempty"`
}

// QuestionResponse is a stored question, optionally with an explanation.
type QuestionResponse struct {
	ID            string   `json:"id"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuizResponse represents a quiz in the API response
// @Description Quiz information
type QuizResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Topic       string             `json:"topic"`
	CreatedBy   string             `json:"createdBy"`
	Questions   []QuestionResponse `json:"questions"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// QuizSummaryResponse is a list entry without questions.
type QuizSummaryResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Topic         string    `json:"topic"`
	CreatedBy     string    `json:"createdBy"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ExplainRequest asks why an answer is correct.
// @Description Request body for a single explanation
type ExplainRequest struct {
	QuestionText  string `json:"questionText"`
	CorrectAnswer string `json:"correctAnswer"`
}

// ExplainResponse carries one explanation.
type ExplainResponse struct {
	Explanation string `json:"explanation"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
