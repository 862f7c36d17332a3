package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string from the package's default entropy,
// which is crypto-backed and monotonic within a millisecond.
func NewULID() string {
	return ulid.Make().String()
}
