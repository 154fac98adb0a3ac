package app

import "time"

// fpsCounter counts frames over one second windows.
type fpsCounter struct {
	frames int
	start  time.Time
}

func newFPSCounter(now time.Time) *fpsCounter {
	return &fpsCounter{start: now}
}

// tick records a frame. Once a second has passed it returns the frame
// count for that window and starts a new one.
func (c *fpsCounter) tick(now time.Time) (int, bool) {
	c.frames++
	if now.Sub(c.start) < time.Second {
		return 0, false
	}
	fps := c.frames
	c.frames = 0
	c.start = now
	return fps, true
}
