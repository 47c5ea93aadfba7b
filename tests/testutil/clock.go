package testutil

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// NewFixedClock creates a mock clock fixed at the given time.
func NewFixedClock(t time.Time) clock.Clock {
	return clock.NewMockClock(t)
}

// NewMockClock creates a mock clock starting now, truncated to Spanner's microsecond precision.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(time.Now().UTC().Truncate(time.Microsecond))
}
