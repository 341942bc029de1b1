// Package timeutils wraps the system clock behind a function value so
// tests can swap in a fixed or simulated time source.
package timeutils

import "time"

// Now returns the current wall-clock time.
func Now() time.Time {
	return time.Now()
}

// Since returns the duration elapsed since t.
func Since(t time.Time) time.Duration {
	return Now().Sub(t)
}

// Until returns the duration until t.
func Until(t time.Time) time.Duration {
	return t.Sub(Now())
}
