package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrUnconfigured is returned by a client whose credentials are absent.
var ErrUnconfigured = errors.New("provider not configured")

// ErrEmptyResponse is returned when a provider answers with no text.
var ErrEmptyResponse = errors.New("provider returned an empty response")

// ErrUnreachable indicates a transport failure or an exceeded call timeout.
type ErrUnreachable struct {
	Err error
}

func (e *ErrUnreachable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unreachable: %v", e.Err)
	}
	return "provider unreachable"
}

func (e *ErrUnreachable) Unwrap() error { return e.Err }

// ErrRejected indicates the provider answered but refused the request.
type ErrRejected struct {
	StatusCode int
	Details    string
	Err        error
}

func (e *ErrRejected) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider rejected request (status %d): %s", e.StatusCode, e.Details)
	}
	return fmt.Sprintf("provider rejected request: %s", e.Details)
}

func (e *ErrRejected) Unwrap() error { return e.Err }

// Reason returns a short label for err, used as a log field.
func Reason(err error) string {
	var unreachable *ErrUnreachable
	var rejected *ErrRejected
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnconfigured):
		return "unconfigured"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.As(err, &unreachable):
		return "unreachable"
	case errors.As(err, &rejected):
		return "rejected"
	default:
		return "unknown"
	}
}

// transportError classifies an error that carries no provider status code.
// Deadline and network failures are unreachable; anything else is a rejection.
func transportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return &ErrUnreachable{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &ErrUnreachable{Err: err}
	}
	return &ErrRejected{Details: err.Error(), Err: err}
}
