package orchestrator

import (
	"fmt"

	"quizforge/internal/domain"
)

// SyntheticCorrectAnswer is the correct option of every synthetic question.
const SyntheticCorrectAnswer = "Option A"

var syntheticOptions = [domain.OptionCount]string{"Option A", "Option B", "Option C", "Option D"}

// SyntheticQuestions returns n placeholder questions derived only from topic
// and the question index.
func SyntheticQuestions(topic string, n int) []domain.QuestionRecord {
	out := make([]domain.QuestionRecord, n)
	for i := range out {
		out[i] = domain.QuestionRecord{
			QuestionText:  fmt.Sprintf("%s sample question %d?", topic, i+1),
			Options:       append([]string(nil), syntheticOptions[:]...),
			CorrectAnswer: SyntheticCorrectAnswer,
		}
	}
	return out
}

// SyntheticExplanation is used when no provider explained the answer.
func SyntheticExplanation(correctAnswer string) string {
	return fmt.Sprintf("The correct answer is %q because it best matches the concept in the question.", correctAnswer)
}

// FallbackExplanation replaces an explanation whose generation failed outright.
func FallbackExplanation(correctAnswer string) string {
	return fmt.Sprintf("The correct answer is %q.", correctAnswer)
}
