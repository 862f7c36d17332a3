package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"quizforge/internal/config"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient implements Client using the Anthropic Messages API.
type AnthropicClient struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

// NewAnthropicClient returns an unconfigured client when the API key is empty.
// Extra request options are appended after the API key.
func NewAnthropicClient(cfg config.AnthropicConfig, timeout time.Duration, opts ...option.RequestOption) *AnthropicClient {
	c := &AnthropicClient{
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		timeout:   timeout,
	}
	if cfg.APIKey == "" {
		return c
	}

	opts = append([]option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0)}, opts...)
	client := anthropic.NewClient(opts...)
	c.client = &client
	return c
}

func (c *AnthropicClient) Name() ProviderName { return ProviderAnthropic }

func (c *AnthropicClient) Configured() bool { return c.client != nil }

func (c *AnthropicClient) Send(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", ErrUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", mapAnthropicError(ctx, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func mapAnthropicError(ctx context.Context, err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &ErrRejected{StatusCode: apiErr.StatusCode, Details: apiErr.Error(), Err: err}
	}
	return transportError(ctx, err)
}
