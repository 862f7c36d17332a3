// Package ai holds the clients for the external text-generation providers.
//
// A client sends one prompt and returns plain text. It never interprets the
// content; callers run the text through the extract package.
package ai

import (
	"context"
	"strings"
)

// ProviderName identifies a backing text-generation service.
type ProviderName string

const (
	ProviderOpenAI      ProviderName = "openai"
	ProviderGemini      ProviderName = "gemini"
	ProviderHuggingFace ProviderName = "huggingface"
	ProviderAnthropic   ProviderName = "anthropic"
	ProviderOllama      ProviderName = "ollama"
)

// PriorityOrder is the fixed order in which providers are tried.
var PriorityOrder = []ProviderName{
	ProviderOpenAI,
	ProviderGemini,
	ProviderHuggingFace,
	ProviderAnthropic,
	ProviderOllama,
}

// ParseProviderName maps a case-insensitive name onto a known provider.
func ParseProviderName(s string) (ProviderName, bool) {
	name := ProviderName(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range PriorityOrder {
		if p == name {
			return p, true
		}
	}
	return "", false
}

// Client sends a prompt to one provider.
//
// Send fails with ErrUnconfigured, *ErrUnreachable, *ErrRejected or
// ErrEmptyResponse. Each implementation bounds the call with its own timeout.
type Client interface {
	Name() ProviderName
	Configured() bool
	Send(ctx context.Context, prompt string) (string, error)
}

// disabledClient stands in for a provider whose SDK client could not be built.
type disabledClient struct {
	name ProviderName
}

func (d disabledClient) Name() ProviderName { return d.name }

func (d disabledClient) Configured() bool { return false }

func (d disabledClient) Send(context.Context, string) (string, error) {
	return "", ErrUnconfigured
}
