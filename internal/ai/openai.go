package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"quizforge/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client using the OpenAI chat completions API.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewOpenAIClient returns an unconfigured client when the API key is empty.
func NewOpenAIClient(cfg config.OpenAIConfig, timeout time.Duration) *OpenAIClient {
	c := &OpenAIClient{
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   timeout,
	}
	if cfg.APIKey == "" {
		return c
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	c.client = openai.NewClientWithConfig(clientCfg)
	return c
}

func (c *OpenAIClient) Name() ProviderName { return ProviderOpenAI }

func (c *OpenAIClient) Configured() bool { return c.client != nil }

func (c *OpenAIClient) Send(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", ErrUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", mapOpenAIError(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func mapOpenAIError(ctx context.Context, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ErrRejected{StatusCode: apiErr.HTTPStatusCode, Details: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &ErrRejected{StatusCode: reqErr.HTTPStatusCode, Details: reqErr.Error(), Err: err}
	}
	return transportError(ctx, err)
}
