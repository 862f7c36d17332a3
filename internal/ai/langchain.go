package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quizforge/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/huggingface"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// LangChainClient implements Client on top of a langchaingo model.
//
// When models is non-empty each model is tried in order until one answers;
// the last failure is reported if none does.
type LangChainClient struct {
	name    ProviderName
	llm     llms.Model
	models  []string
	timeout time.Duration
	logger  *zap.Logger
}

// NewLangChainClient wraps an existing langchaingo model. A nil model yields
// an unconfigured client.
func NewLangChainClient(name ProviderName, llm llms.Model, models []string, timeout time.Duration, logger *zap.Logger) *LangChainClient {
	return &LangChainClient{
		name:    name,
		llm:     llm,
		models:  models,
		timeout: timeout,
		logger:  logger,
	}
}

// NewHuggingFaceClient builds the Hugging Face inference client.
func NewHuggingFaceClient(cfg config.HuggingFaceConfig, timeout time.Duration, logger *zap.Logger) (*LangChainClient, error) {
	if cfg.APIKey == "" {
		return NewLangChainClient(ProviderHuggingFace, nil, cfg.Models, timeout, logger), nil
	}

	opts := []huggingface.Option{huggingface.WithToken(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, huggingface.WithURL(cfg.BaseURL))
	}
	llm, err := huggingface.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create Hugging Face client: %w", err)
	}
	return NewLangChainClient(ProviderHuggingFace, llm, cfg.Models, timeout, logger), nil
}

// NewOllamaClient builds a client for a local Ollama server.
func NewOllamaClient(cfg config.OllamaConfig, timeout time.Duration, logger *zap.Logger) (*LangChainClient, error) {
	if cfg.ServerURL == "" {
		return NewLangChainClient(ProviderOllama, nil, nil, timeout, logger), nil
	}

	llm, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("create Ollama client: %w", err)
	}
	return NewLangChainClient(ProviderOllama, llm, nil, timeout, logger), nil
}

func (c *LangChainClient) Name() ProviderName { return c.name }

func (c *LangChainClient) Configured() bool { return c.llm != nil }

func (c *LangChainClient) Send(ctx context.Context, prompt string) (string, error) {
	if c.llm == nil {
		return "", ErrUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if len(c.models) == 0 {
		return c.call(ctx, prompt, "")
	}

	var lastErr error
	for _, model := range c.models {
		text, err := c.call(ctx, prompt, model)
		if err == nil {
			return text, nil
		}
		lastErr = err
		c.logger.Debug("model failed, trying next",
			zap.String("provider", string(c.name)),
			zap.String("model", model),
			zap.Error(err),
		)
		if ctx.Err() != nil {
			return "", &ErrUnreachable{Err: ctx.Err()}
		}
	}
	return "", &ErrRejected{
		Details: fmt.Sprintf("all %s models failed. %v", c.name, lastErr),
		Err:     lastErr,
	}
}

func (c *LangChainClient) call(ctx context.Context, prompt, model string) (string, error) {
	var opts []llms.CallOption
	if model != "" {
		opts = append(opts, llms.WithModel(model))
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, opts...)
	if err != nil {
		return "", transportError(ctx, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
