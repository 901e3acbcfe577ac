package core

import "time"

// Clock measures the wall time between consecutive frames.
// Frame pacing itself is the platform's job; the clock only reports how much
// time passed, so a slow frame yields a proportionally larger delta.
type Clock struct {
	fps  int
	last time.Time
}

// NewClock creates a clock for the given frame rate cap.
// Panics if fps is not positive.
func NewClock(fps int) *Clock {
	if fps <= 0 {
		panic("core: clock fps must be positive")
	}
	return &Clock{fps: fps}
}

// Interval returns the minimum time between frames.
func (c *Clock) Interval() time.Duration {
	return time.Second / time.Duration(c.fps)
}

// Tick records a frame at now and returns the seconds elapsed since the
// previous frame. The first tick returns 0. Time going backwards yields 0.
func (c *Clock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset forgets the previous frame so the next Tick returns 0.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
