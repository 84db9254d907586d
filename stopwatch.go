package hashbench

import "time"

// Time runs fn once and returns how long it took on the monotonic clock.
func Time(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
