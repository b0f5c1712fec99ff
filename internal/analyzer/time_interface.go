package analyzer

import "time"

// FixedTimeProvider always returns the same instant. Used to make results reproducible.
type FixedTimeProvider struct {
	Time time.Time
}

// Now returns the fixed time.
func (f FixedTimeProvider) Now() time.Time {
	return f.Time
}

// RealTimeProvider implements TimeProvider using real time functions.
type RealTimeProvider struct{}

// Now returns the current time.
func (r RealTimeProvider) Now() time.Time {
	return time.Now()
}

// TimeProvider provides the analysis timestamp for dependency injection.
type TimeProvider interface {
	Now() time.Time
}
