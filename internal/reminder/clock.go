package reminder

import "time"

// Clock supplies the current time to urgency checks and entry timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reports the wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
