package service

import (
	"context"
	"testing"

	"quizforge/internal/ai"
	"quizforge/internal/domain"
	"quizforge/internal/orchestrator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestOrchestrator(clients ...ai.Client) *orchestrator.FallbackOrchestrator {
	return orchestrator.New(ai.NewPriorityList(clients, "auto", zap.NewNop()), zap.NewNop())
}

func allUnconfigured() *orchestrator.FallbackOrchestrator {
	return newTestOrchestrator(
		ai.NewUnconfiguredMockClient(ai.ProviderOpenAI),
		ai.NewUnconfiguredMockClient(ai.ProviderGemini),
		ai.NewUnconfiguredMockClient(ai.ProviderHuggingFace),
	)
}

func TestGenerateQuestions_AllUnconfiguredReturnsSynthetic(t *testing.T) {
	svc := NewQuizGenerationService(allUnconfigured(), 0, zap.NewNop())

	draft, err := svc.GenerateQuestions(context.Background(), "Algebra", 3)

	require.NoError(t, err)
	assert.Equal(t, "Algebra", draft.Topic)
	assert.Equal(t, orchestrator.SourceSynthetic, draft.Source)
	require.Len(t, draft.Questions, 3)
	for i, q := range draft.Questions {
		assert.Len(t, q.Options, 4)
		assert.Equal(t, "Option A", q.CorrectAnswer)
		assert.Contains(t, q.Options, q.CorrectAnswer)
		assert.Contains(t, q.QuestionText, "Algebra sample question")
		assert.Contains(t, q.QuestionText, []string{"1", "2", "3"}[i])
	}
}

func TestGenerateQuestions_EveryQuestionValid(t *testing.T) {
	raw := `Here:
[
  {"questionText":"Q1","options":["a","b","c","d"],"correctAnswer":"a"},
  {"questionText":"Q2","options":["a","b","c","d"],"correctAnswer":"nope"},
  {"questionText":"Q3","options":["a","b","c"],"correctAnswer":"a"},
  {"questionText":"Q4","options":["w","x","y","z"],"correctAnswer":"z"}
]`
	p := ai.NewMockClient(ai.ProviderOpenAI, ai.MockReply{Text: raw})
	svc := NewQuizGenerationService(newTestOrchestrator(p), 0, zap.NewNop())

	draft, err := svc.GenerateQuestions(context.Background(), "Letters", 4)

	require.NoError(t, err)
	assert.Equal(t, "openai", draft.Source)
	require.Len(t, draft.Questions, 2, "invalid elements are dropped, never padded")
	for _, q := range draft.Questions {
		assert.True(t, q.Valid())
	}
}

func TestGenerateQuestions_TruncatesExtraQuestions(t *testing.T) {
	raw := `[
  {"questionText":"Q1","options":["a","b","c","d"],"correctAnswer":"a"},
  {"questionText":"Q2","options":["a","b","c","d"],"correctAnswer":"b"},
  {"questionText":"Q3","options":["a","b","c","d"],"correctAnswer":"c"}
]`
	p := ai.NewMockClient(ai.ProviderGemini, ai.MockReply{Text: raw})
	svc := NewQuizGenerationService(newTestOrchestrator(p), 0, zap.NewNop())

	draft, err := svc.GenerateQuestions(context.Background(), "Letters", 2)

	require.NoError(t, err)
	require.Len(t, draft.Questions, 2)
	assert.Equal(t, "Q1", draft.Questions[0].QuestionText)
	assert.Equal(t, "Q2", draft.Questions[1].QuestionText)
}

func TestGenerateQuestions_PromptMentionsTopicAndCount(t *testing.T) {
	p := ai.NewMockClient(ai.ProviderOpenAI)
	svc := NewQuizGenerationService(newTestOrchestrator(p), 0, zap.NewNop())

	_, err := svc.GenerateQuestions(context.Background(), "  Photosynthesis ", 7)

	require.NoError(t, err)
	require.Len(t, p.Prompts, 1)
	assert.Contains(t, p.Prompts[0], "Generate 7 multiple-choice quiz questions on Photosynthesis.")
	assert.Contains(t, p.Prompts[0], "exactly 4 options")
}

func TestGenerateQuestions_InvalidInput(t *testing.T) {
	svc := NewQuizGenerationService(allUnconfigured(), 10, zap.NewNop())

	tests := []struct {
		name  string
		topic string
		n     int
	}{
		{"blank topic", "   ", 3},
		{"zero questions", "Go", 0},
		{"negative questions", "Go", -1},
		{"over the cap", "Go", 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := svc.GenerateQuestions(context.Background(), tt.topic, tt.n)
			assert.Nil(t, draft)
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))
		})
	}
}

func TestExplain_ProviderAnswer(t *testing.T) {
	p := ai.NewMockClient(ai.ProviderOpenAI, ai.MockReply{Text: "  Paris has been the capital since 508 AD.  "})
	svc := NewAnswerExplanationService(newTestOrchestrator(p))

	got, err := svc.Explain(context.Background(), "What is the capital of France?", "Paris")

	require.NoError(t, err)
	assert.Equal(t, "Paris has been the capital since 508 AD.", got)
	assert.Contains(t, p.Prompts[0], `"Paris" is the correct answer to: "What is the capital of France?"`)
}

func TestExplain_AllUnconfiguredReturnsSynthetic(t *testing.T) {
	svc := NewAnswerExplanationService(allUnconfigured())

	got, err := svc.Explain(context.Background(), "2+2?", "4")

	require.NoError(t, err)
	assert.Equal(t, `The correct answer is "4" because it best matches the concept in the question.`, got)
}

func TestExplain_InvalidInput(t *testing.T) {
	svc := NewAnswerExplanationService(allUnconfigured())

	_, err := svc.Explain(context.Background(), "", "4")
	assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))

	_, err = svc.Explain(context.Background(), "2+2?", " ")
	assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))
}
