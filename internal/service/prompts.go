package service

import "fmt"

func questionPrompt(topic string, n int) string {
	return fmt.Sprintf(`Generate %d multiple-choice quiz questions on %s.
Each question must have exactly 4 options and a correctAnswer that matches one of the options.
Return ONLY valid JSON (no markdown, no commentary). Format:
[
  {"questionText":"...","options":["A","B","C","D"],"correctAnswer":"B"}
]`, n, topic)
}

func explanationPrompt(questionText, correctAnswer string) string {
	return fmt.Sprintf(`Explain briefly and clearly why %q is the correct answer to: %q.
Keep it under 2 sentences. Avoid code fences, return plain text.`, correctAnswer, questionText)
}
