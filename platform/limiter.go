package platform

import "time"

// SleepLimiter paces a loop by sleeping off the rest of each frame.
type SleepLimiter struct {
	last time.Time
	now  func() time.Time
	wait func(time.Duration)
}

// NewSleepLimiter creates a limiter on the wall clock.
func NewSleepLimiter() *SleepLimiter {
	return &SleepLimiter{now: time.Now, wait: time.Sleep}
}

// Sync blocks until 1/fps has elapsed since the previous Sync.
func (l *SleepLimiter) Sync(fps int) {
	if fps <= 0 {
		return
	}
	frame := time.Second / time.Duration(fps)
	now := l.now()
	if !l.last.IsZero() {
		if remaining := frame - now.Sub(l.last); remaining > 0 {
			l.wait(remaining)
			now = now.Add(remaining)
		}
	}
	l.last = now
}
