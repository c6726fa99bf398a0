package easel

import "time"

// PlatformEventType identifies a discrete platform event.
type PlatformEventType uint8

const (
	PlatformQuit  PlatformEventType = iota // the window was asked to close
	PlatformWheel                          // the mouse wheel moved by Delta
)

// PlatformEvent is one discrete event drained from the platform each tick.
type PlatformEvent struct {
	Type  PlatformEventType
	Delta Vec2 // wheel delta for PlatformWheel
}

// Source is the input side of a platform: discrete events plus a
// level-triggered device sample, polled once per tick.
type Source interface {
	// PollEvents appends every pending event to buf and returns it.
	PollEvents(buf []PlatformEvent) []PlatformEvent
	// Sample fills the pressed sets, cursor position and motion of s,
	// reusing its slices. Wheel fields are owned by the loop.
	Sample(s *Snapshot)
	// Viewport returns the current drawing surface size.
	Viewport() Viewport
}

// Platform is a Source that can also present a finished frame.
type Platform interface {
	Source
	// Present shows the frame recorded on c.
	Present(c *Canvas) error
}

// Clock abstracts wall time so the loop can be driven deterministically.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the wall clock backed by package time.
var SystemClock Clock = systemClock{}
