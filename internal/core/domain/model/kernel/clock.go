package kernel

import "time"

// Clock supplies the current instant. Aggregates never call time.Now
// themselves; handlers pass dates derived from an injected Clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// Today returns the calendar day of the clock's current instant.
func Today(c Clock) Date {
	return DateOf(c.Now())
}
