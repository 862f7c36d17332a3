// Package extract recovers structured values from free text returned by
// text-generation providers.
//
// Extraction runs in two phases: the fence-stripped text is parsed directly,
// and if that fails the span between the first opening bracket or brace and
// the last closing one is parsed instead. Anything else is unparseable.
package extract

import (
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?i)```[a-z0-9_+-]*")

// Shape decodes cleaned text into a value of type T.
type Shape[T any] interface {
	// Decode reports false when text does not parse or does not type-check.
	Decode(text string) (T, bool)
}

// Extract returns the value found in raw, or false when raw is unparseable.
// It is deterministic and keeps no state between calls.
func Extract[T any](raw string, shape Shape[T]) (T, bool) {
	var zero T

	cleaned := Clean(raw)
	if cleaned == "" {
		return zero, false
	}
	if v, ok := shape.Decode(cleaned); ok {
		return v, true
	}
	if span, ok := Span(cleaned); ok {
		if v, ok := shape.Decode(span); ok {
			return v, true
		}
	}
	return zero, false
}

// Clean removes code fence markers, with or without a language tag, and
// trims surrounding whitespace.
func Clean(raw string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(raw, ""))
}

// Span returns the substring from the first '[' or '{' through the last ']'
// or '}', inclusive.
func Span(text string) (string, bool) {
	start := strings.IndexAny(text, "[{")
	end := strings.LastIndexAny(text, "]}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
