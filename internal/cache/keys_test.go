package cache

import (
	"context"
	"testing"

	"quizforge/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		objectType string
		identifier string
		params     []string
		want       string
	}{
		{"without params", "quiz", "item", "01ABC", nil, "quizforge:quiz:item:01ABC"},
		{"with empty params", "quiz", "item", "01ABC", []string{}, "quizforge:quiz:item:01ABC"},
		{"with one param", "quiz", "list", "all", []string{"page1"}, "quizforge:quiz:list:all:page1"},
		{"with several params", "result", "by_student", "s1", []string{"desc", "10"}, "quizforge:result:by_student:s1:desc_10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateCacheKey(tt.service, tt.objectType, tt.identifier, tt.params...))
		})
	}
}

func TestQuizKey(t *testing.T) {
	assert.Equal(t, "quizforge:quiz:item:01HZX", QuizKey("01HZX"))
}

func TestNewRedisClient_EmptyAddress(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{})

	require.Error(t, err)
	assert.Nil(t, client)
}
