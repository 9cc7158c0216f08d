package bubblepop

import "time"

// intervalTimer is a fixed-period timer polled once per frame, so its
// resolution is bounded by the frame rate.
type intervalTimer struct {
	interval time.Duration
	next     time.Time
}

func newIntervalTimer(interval time.Duration, start time.Time) intervalTimer {
	return intervalTimer{interval: interval, next: start.Add(interval)}
}

// Poll returns how many periods elapsed since the last poll.
func (t *intervalTimer) Poll(now time.Time) int {
	if now.Before(t.next) {
		return 0
	}
	n := int(now.Sub(t.next)/t.interval) + 1
	t.next = t.next.Add(time.Duration(n) * t.interval)
	return n
}

// Skip drops any due periods without reporting them.
func (t *intervalTimer) Skip(now time.Time) {
	t.Poll(now)
}
