package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quizforge/internal/config"

	"google.golang.org/genai"
)

// GeminiClient implements Client using the Google Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient returns an unconfigured client when the API key is empty.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, timeout time.Duration) (*GeminiClient, error) {
	c := &GeminiClient{model: cfg.Model, timeout: timeout}
	if cfg.APIKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *GeminiClient) Name() ProviderName { return ProviderGemini }

func (c *GeminiClient) Configured() bool { return c.client != nil }

func (c *GeminiClient) Send(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", ErrUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", mapGeminiError(ctx, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func mapGeminiError(ctx context.Context, err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return &ErrRejected{StatusCode: apiErr.Code, Details: apiErr.Message, Err: err}
	}
	return transportError(ctx, err)
}
