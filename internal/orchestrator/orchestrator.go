// Package orchestrator turns unreliable provider output into usable values.
package orchestrator

import (
	"context"
	"time"

	"quizforge/internal/ai"
	"quizforge/internal/extract"

	"go.uber.org/zap"
)

// SourceSynthetic is reported when no provider produced a usable value.
const SourceSynthetic = "synthetic"

// FallbackOrchestrator tries providers in priority order until one returns
// text that extracts into the expected shape.
type FallbackOrchestrator struct {
	providers ai.PriorityList
	logger    *zap.Logger
}

// New creates a FallbackOrchestrator. The priority list is read-only.
func New(providers ai.PriorityList, logger *zap.Logger) *FallbackOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackOrchestrator{providers: providers, logger: logger}
}

// Providers returns the priority list the orchestrator walks.
func (o *FallbackOrchestrator) Providers() ai.PriorityList {
	return o.providers
}

// Outcome describes how a value was obtained.
type Outcome struct {
	// Source is the provider name that answered, or SourceSynthetic.
	Source string
	// Attempts counts provider calls made, including failed ones.
	Attempts int
}

// Resolve never fails: it returns the first value extracted from a provider
// response, or fallback() when every eligible provider failed or answered
// with unparseable text.
func Resolve[T any](ctx context.Context, o *FallbackOrchestrator, prompt string, shape extract.Shape[T], fallback func() T) T {
	v, _ := ResolveWithOutcome(ctx, o, prompt, shape, fallback)
	return v
}

// ResolveWithOutcome is Resolve that also reports which provider answered.
func ResolveWithOutcome[T any](ctx context.Context, o *FallbackOrchestrator, prompt string, shape extract.Shape[T], fallback func() T) (T, Outcome) {
	var outcome Outcome

	for _, p := range o.providers.Eligible() {
		outcome.Attempts++
		start := time.Now()

		text, err := p.Send(ctx, prompt)
		if err != nil {
			o.logger.Warn("Provider call failed",
				zap.String("provider", string(p.Name())),
				zap.String("reason", ai.Reason(err)),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			continue
		}

		v, ok := extract.Extract(text, shape)
		if !ok {
			o.logger.Warn("Provider response could not be parsed",
				zap.String("provider", string(p.Name())),
				zap.Int("response_length", len(text)),
				zap.Duration("duration", time.Since(start)),
			)
			continue
		}

		o.logger.Debug("Provider response accepted",
			zap.String("provider", string(p.Name())),
			zap.Duration("duration", time.Since(start)),
		)
		outcome.Source = string(p.Name())
		return v, outcome
	}

	o.logger.Info("All providers exhausted, using synthetic fallback", zap.Int("attempts", outcome.Attempts))
	outcome.Source = SourceSynthetic
	return fallback(), outcome
}
