package ai

import (
	"context"

	"quizforge/internal/config"

	"go.uber.org/zap"
)

// PriorityList is the ordered set of provider clients. It is built once at
// startup and never modified afterwards.
type PriorityList struct {
	clients   []Client
	preferred ProviderName
}

// NewPriorityList keeps clients in the given order. hint is "auto", empty, or
// a provider name; a configured provider named by hint is tried first and the
// rest keep their order. Unknown or unconfigured hints are ignored.
func NewPriorityList(clients []Client, hint string, logger *zap.Logger) PriorityList {
	list := PriorityList{clients: append([]Client(nil), clients...)}

	if hint == "" || hint == "auto" {
		return list
	}
	name, ok := ParseProviderName(hint)
	if !ok {
		logger.Warn("Ignoring unknown AI provider preference", zap.String("provider", hint))
		return list
	}
	for _, c := range list.clients {
		if c.Name() == name && c.Configured() {
			list.preferred = name
			return list
		}
	}
	logger.Warn("Preferred AI provider is not configured, using default order", zap.String("provider", hint))
	return list
}

// Eligible returns the configured clients in the order they must be tried.
func (l PriorityList) Eligible() []Client {
	out := make([]Client, 0, len(l.clients))
	for _, c := range l.clients {
		if c.Configured() && c.Name() == l.preferred {
			out = append(out, c)
		}
	}
	for _, c := range l.clients {
		if c.Configured() && c.Name() != l.preferred {
			out = append(out, c)
		}
	}
	return out
}

// ProviderStatus describes one entry of the priority list.
type ProviderStatus struct {
	Name       ProviderName `json:"name"`
	Configured bool         `json:"configured"`
}

// Status reports each provider in fixed order with whether it is configured.
func (l PriorityList) Status() []ProviderStatus {
	out := make([]ProviderStatus, 0, len(l.clients))
	for _, c := range l.clients {
		out = append(out, ProviderStatus{Name: c.Name(), Configured: c.Configured()})
	}
	return out
}

// Preferred returns the provider moved to the front, if any.
func (l PriorityList) Preferred() ProviderName {
	return l.preferred
}

// NewClients builds one client per known provider in PriorityOrder.
// A provider whose SDK client fails to build is logged and left unconfigured.
func NewClients(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) []Client {
	timeout := cfg.Timeout

	gemini, err := NewGeminiClient(ctx, cfg.Gemini, timeout)
	var geminiClient Client = gemini
	if err != nil {
		logger.Warn("Gemini client disabled", zap.Error(err))
		geminiClient = disabledClient{name: ProviderGemini}
	}

	hf, err := NewHuggingFaceClient(cfg.HuggingFace, timeout, logger)
	var hfClient Client = hf
	if err != nil {
		logger.Warn("Hugging Face client disabled", zap.Error(err))
		hfClient = disabledClient{name: ProviderHuggingFace}
	}

	ollamaLLM, err := NewOllamaClient(cfg.Ollama, timeout, logger)
	var ollamaClient Client = ollamaLLM
	if err != nil {
		logger.Warn("Ollama client disabled", zap.Error(err))
		ollamaClient = disabledClient{name: ProviderOllama}
	}

	clients := []Client{
		NewOpenAIClient(cfg.OpenAI, timeout),
		geminiClient,
		hfClient,
		NewAnthropicClient(cfg.Anthropic, timeout),
		ollamaClient,
	}

	for _, c := range clients {
		logger.Info("AI provider",
			zap.String("provider", string(c.Name())),
			zap.Bool("configured", c.Configured()),
		)
	}
	return clients
}
