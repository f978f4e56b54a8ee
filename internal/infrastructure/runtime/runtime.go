// Package runtime holds the process-level implementations of the clock and
// id generator ports.
package runtime

import (
	"time"

	"github.com/google/uuid"
)

type SystemClock struct{}

// Now returns the current time in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
