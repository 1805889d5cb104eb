package client

import "time"

// Backoff maps a 1-based retry attempt to the delay taken before it. The
// submission workflow treats it as an interchangeable strategy value, so
// fixed, linear and exponential policies need no branching in the loop.
type Backoff func(attempt int) time.Duration

// Fixed waits the same duration before every retry.
func Fixed(d time.Duration) Backoff {
	return func(int) time.Duration { return d }
}

// Linear waits base, 2*base, 3*base, ...
func Linear(base time.Duration) Backoff {
	return func(attempt int) time.Duration { return time.Duration(attempt) * base }
}

// Exponential waits base, 2*base, 4*base, ... capped at max.
func Exponential(base, max time.Duration) Backoff {
	return func(attempt int) time.Duration {
		d := base
		for i := 1; i < attempt; i++ {
			d *= 2
			if d >= max {
				return max
			}
		}
		if d > max {
			return max
		}
		return d
	}
}

// DefaultBackoff matches the production form: 1s doubling up to 10s.
var DefaultBackoff = Exponential(time.Second, 10*time.Second)
