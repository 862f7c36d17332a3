package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"quizforge/internal/auth"
	"quizforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offline clears every provider credential so the pipeline falls back.
func offline(t *testing.T) {
	t.Helper()
	for _, env := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "HF_API_KEY", "ANTHROPIC_API_KEY", "OLLAMA_SERVER_URL", "AI_PROVIDER"} {
		t.Setenv(env, "")
	}
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerate_Offline(t *testing.T) {
	offline(t)

	out, err := run(t, "generate", "Photosynthesis", "-n", "3")
	require.NoError(t, err)

	var draft domain.QuizDraft
	require.NoError(t, json.Unmarshal([]byte(out), &draft))
	assert.Equal(t, "synthetic", draft.Source)
	assert.Len(t, draft.Questions, 3)
	for _, q := range draft.Questions {
		assert.True(t, q.Valid())
	}
}

func TestGenerate_InvalidCount(t *testing.T) {
	offline(t)

	_, err := run(t, "generate", "Photosynthesis", "-n", "0")
	assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))
}

func TestExplain_Offline(t *testing.T) {
	offline(t)

	out, err := run(t, "explain", "What is 2+2?", "4")
	require.NoError(t, err)
	assert.Contains(t, out, `"4"`)
}

func TestToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, err := run(t, "token", "teacher-1", "--role", auth.RoleTeacher)
	require.NoError(t, err)

	claims, err := auth.NewTokenVerifier("cli-secret").Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "teacher-1", claims.Principal())
	assert.Equal(t, auth.RoleTeacher, claims.Role)
}

func TestToken_RejectsUnknownRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	_, err := run(t, "token", "u1", "--role", "admin")
	assert.Error(t, err)
}
