package easel

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Key    *int    `json:"key,omitempty"`
	Button *int    `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	QuitOnEnd bool         `json:"quit_on_end"`
	Steps     []scriptStep `json:"steps"`
}

// ScriptPlatform is a headless Platform that replays an input script. It
// lets a Loop run without a window, which makes frame-exact input sequences
// reproducible in tests and automated runs.
//
// Each tick applies steps in order until a "wait" step (or the end of the
// script) is reached. Supported actions:
//
//	press    {"key": n} or {"button": n}   start holding a code
//	release  {"key": n} or {"button": n}   stop holding a code
//	tap      {"key": n} or {"button": n}   press and release within one tick
//	move     {"x": px, "y": py}            move the cursor (pixel space)
//	wheel    {"x": dx, "y": dy}            deliver a wheel event
//	wait     {"frames": n}                 end this tick; idle n-1 more
//	quit                                   deliver a quit event
//
// A tap is never observable: the loop samples once per tick, so the shortest
// press it can detect lasts one frame.
type ScriptPlatform struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	quitOnEnd bool
	done      bool

	vp      Viewport
	keys    codeSet
	buttons codeSet
	mouse   Vec2
	motion  Vec2
	pending []PlatformEvent

	frames    int
	lastDraws int
}

// LoadInputScript parses a JSON input script and returns a ScriptPlatform
// ready to drive a Loop.
func LoadInputScript(jsonData []byte) (*ScriptPlatform, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
		}
	}
	if script.Width <= 0 {
		script.Width = DefaultWidth
	}
	if script.Height <= 0 {
		script.Height = DefaultHeight
	}
	return &ScriptPlatform{
		steps:     script.Steps,
		quitOnEnd: script.QuitOnEnd,
		vp:        Viewport{Width: script.Width, Height: script.Height},
	}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "press", "release", "tap":
		if (st.Key == nil) == (st.Button == nil) {
			return fmt.Errorf("%s needs exactly one of key or button", st.Action)
		}
	case "move", "wheel", "wait", "quit":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether every step has been applied.
func (p *ScriptPlatform) Done() bool { return p.done }

// Frames returns the number of frames presented so far.
func (p *ScriptPlatform) Frames() int { return p.frames }

// LastDrawCount returns the number of draw commands in the last presented
// frame.
func (p *ScriptPlatform) LastDrawCount() int { return p.lastDraws }

// PollEvents advances the script by one tick and returns the events it
// produced.
func (p *ScriptPlatform) PollEvents(buf []PlatformEvent) []PlatformEvent {
	p.pending = p.pending[:0]
	p.motion = Vec2{}
	p.advance()
	return append(buf, p.pending...)
}

func (p *ScriptPlatform) advance() {
	if p.waitCount > 0 {
		p.waitCount--
		return
	}
	for p.cursor < len(p.steps) {
		st := p.steps[p.cursor]
		p.cursor++
		if st.Action == "wait" {
			if st.Frames > 1 {
				p.waitCount = st.Frames - 1 // this tick counts as one
			}
			break
		}
		p.apply(st)
	}
	if p.cursor >= len(p.steps) && p.waitCount == 0 && !p.done {
		p.done = true
		if p.quitOnEnd {
			p.pending = append(p.pending, PlatformEvent{Type: PlatformQuit})
		}
	}
}

func (p *ScriptPlatform) apply(st scriptStep) {
	switch st.Action {
	case "press":
		p.target(st).add(st.code())
	case "release":
		p.target(st).remove(st.code())
	case "tap":
		// Pressed and released before the next sample.
	case "move":
		next := Vec2{st.X, st.Y}
		p.motion = p.motion.Add(next.Sub(p.mouse))
		p.mouse = next
	case "wheel":
		p.pending = append(p.pending, PlatformEvent{Type: PlatformWheel, Delta: Vec2{st.X, st.Y}})
	case "quit":
		p.pending = append(p.pending, PlatformEvent{Type: PlatformQuit})
	}
}

func (p *ScriptPlatform) target(st scriptStep) *codeSet {
	if st.Key != nil {
		return &p.keys
	}
	return &p.buttons
}

func (st scriptStep) code() DeviceCode {
	if st.Key != nil {
		return DeviceCode(*st.Key)
	}
	return DeviceCode(*st.Button)
}

// Sample reports the script's current device state.
func (p *ScriptPlatform) Sample(s *Snapshot) {
	s.Keys = p.keys.appendTo(s.Keys[:0])
	s.Buttons = p.buttons.appendTo(s.Buttons[:0])
	s.Cursor = p.mouse
	s.Motion = p.motion
}

// Viewport returns the script's viewport.
func (p *ScriptPlatform) Viewport() Viewport { return p.vp }

// Present counts the frame. Nothing is rendered.
func (p *ScriptPlatform) Present(c *Canvas) error {
	p.frames++
	p.lastDraws = c.Len()
	return nil
}
