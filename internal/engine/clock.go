package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It supplies the "as of" instant for live computations and feed generation.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time. Its location is the frame in which
// user-entered start dates are interpreted.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. It backs the --as-of flag
// and the asOf query parameter.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}
