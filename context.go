package easel

import "time"

// Context is the runtime state handed to setup and update callbacks. It is
// owned by a [Loop] and only touched from the loop's goroutine, so callbacks
// may read and modify it freely.
type Context struct {
	// Input holds this frame's keyboard and mouse state.
	Input *Input
	// Canvas records world-space draw calls for the current frame.
	Canvas *Canvas

	viewport Viewport
	delta    time.Duration
	frame    uint64
	loop     *Loop
}

func newContext(l *Loop) *Context {
	return &Context{
		Input:  NewInput(),
		Canvas: NewCanvas(),
		loop:   l,
	}
}

// Viewport returns the size of the drawing surface.
func (c *Context) Viewport() Viewport { return c.viewport }

// Delta returns the elapsed time published for this frame. See
// [LoopConfig.LegacyDeltaTiming] for what the interval covers.
func (c *Context) Delta() time.Duration { return c.delta }

// DeltaTime returns [Context.Delta] in seconds.
func (c *Context) DeltaTime() float64 { return c.delta.Seconds() }

// Frame returns the number of the current tick, starting at 1. It is 0
// during setup.
func (c *Context) Frame() uint64 { return c.frame }

// Quit asks the loop to stop once the current tick has finished. Called
// during setup, it stops the loop before the first tick.
func (c *Context) Quit() {
	if c.loop != nil {
		c.loop.stopping = true
	}
}

// ToPixel converts a world-space point using the current viewport.
func (c *Context) ToPixel(p Vec2) Vec2 { return ToPixel(p, c.viewport) }

// ToWorld converts a pixel-space point using the current viewport.
func (c *Context) ToWorld(p Vec2) Vec2 { return ToWorld(p, c.viewport) }
