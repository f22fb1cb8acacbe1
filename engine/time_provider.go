package engine

import "time"

// TimeProvider supplies the current time
// Game systems take it as a dependency so tests can inject MockTimeProvider
type TimeProvider interface {
	Now() time.Time
}

// Pauser is implemented by time sources that can freeze game time
type Pauser interface {
	Pause()
	Resume()
	IsPaused() bool
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
// Used for real-time operations that should not pause
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
