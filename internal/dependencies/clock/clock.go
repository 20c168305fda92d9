package clock

import "time"

// Clock provides the current time so round timestamps can be fixed in tests
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the wall clock, in UTC
type SystemClock struct{}

// New creates a new SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current UTC time
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}
