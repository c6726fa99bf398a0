package easel

import (
	"math/bits"
	"slices"
)

// DeviceCode identifies a key or mouse button. Values come from the platform
// (for the Ebitengine backend, ebiten.Key and ebiten.MouseButton) and are
// treated as opaque: any int value, including negative ones, is a valid code.
type DeviceCode int

// --- Code sets ---

// denseCodes bounds the bitset part of a codeSet. Every Ebitengine key and
// mouse button falls below it.
const denseCodes = 1024

func isDense(c DeviceCode) bool { return c >= 0 && c < denseCodes }

// codeSet is a set of device codes. Codes in [0, denseCodes) live in a
// bitset; anything else goes to a map, so memory stays proportional to the
// number of members rather than the largest code.
type codeSet struct {
	words  []uint64
	sparse map[DeviceCode]struct{}
}

func (s *codeSet) has(c DeviceCode) bool {
	if !isDense(c) {
		_, ok := s.sparse[c]
		return ok
	}
	w := int(c) >> 6
	return w < len(s.words) && s.words[w]&(1<<(uint(c)&63)) != 0
}

func (s *codeSet) add(c DeviceCode) {
	if !isDense(c) {
		if s.sparse == nil {
			s.sparse = make(map[DeviceCode]struct{})
		}
		s.sparse[c] = struct{}{}
		return
	}
	w := int(c) >> 6
	s.grow(w + 1)
	s.words[w] |= 1 << (uint(c) & 63)
}

func (s *codeSet) remove(c DeviceCode) {
	if !isDense(c) {
		delete(s.sparse, c)
		return
	}
	if w := int(c) >> 6; w < len(s.words) {
		s.words[w] &^= 1 << (uint(c) & 63)
	}
}

func (s *codeSet) clear() {
	for i := range s.words {
		s.words[i] = 0
	}
	clear(s.sparse)
}

// grow extends the bitset to at least n words.
func (s *codeSet) grow(n int) {
	for len(s.words) < n {
		s.words = append(s.words, 0)
	}
}

func (s *codeSet) len() int {
	n := len(s.sparse)
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// appendTo appends the codes in s to buf in ascending order.
func (s *codeSet) appendTo(buf []DeviceCode) []DeviceCode {
	start := len(buf)
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			buf = append(buf, DeviceCode(i<<6|b))
			w &= w - 1
		}
	}
	if len(s.sparse) == 0 {
		return buf
	}
	for c := range s.sparse {
		buf = append(buf, c)
	}
	slices.Sort(buf[start:])
	return buf
}

// --- Edge tracking ---

// edgeTracker turns level-triggered "currently active" samples into
// edge-triggered down/up sets for one device domain.
//
// held persists across updates; down and up are valid for the current
// frame only. After every update: down ⊆ held and up ∩ held = ∅.
type edgeTracker struct {
	held   codeSet
	down   codeSet
	up     codeSet
	active codeSet // scratch for the incoming sample
}

// update diffs the active codes against held:
//
//	down = active \ held
//	up   = held \ active
//	held = active
//
// A code pressed and released between two updates never appears; the
// shortest detectable press lasts one frame.
func (t *edgeTracker) update(active []DeviceCode) {
	t.active.clear()
	for _, c := range active {
		t.active.add(c)
	}

	n := max(len(t.active.words), len(t.held.words))
	t.active.grow(n)
	t.held.grow(n)
	t.down.grow(n)
	t.up.grow(n)

	for i := 0; i < n; i++ {
		a, h := t.active.words[i], t.held.words[i]
		t.down.words[i] = a &^ h
		t.up.words[i] = h &^ a
		t.held.words[i] = a
	}

	clear(t.down.sparse)
	clear(t.up.sparse)
	for c := range t.active.sparse {
		if !t.held.has(c) {
			t.down.add(c)
		}
	}
	for c := range t.held.sparse {
		if !t.active.has(c) {
			t.up.add(c)
		}
	}
	clear(t.held.sparse)
	for c := range t.active.sparse {
		t.held.add(c)
	}
}

// reset forgets all state, releasing nothing.
func (t *edgeTracker) reset() {
	t.held.clear()
	t.down.clear()
	t.up.clear()
}

// --- Snapshot ---

// Snapshot is one level-triggered sample of the platform's input devices.
type Snapshot struct {
	// Keys and Buttons hold the codes currently pressed.
	Keys    []DeviceCode
	Buttons []DeviceCode
	// Cursor is the mouse position in pixel space.
	Cursor Vec2
	// Motion is the cursor displacement in pixels since the previous sample.
	Motion Vec2
	// Wheel is the accumulated wheel delta. Only meaningful if HasWheel.
	Wheel    Vec2
	HasWheel bool
}

// --- Input ---

// Input tracks keyboard and mouse state across frames. It is created once,
// updated exactly once per tick by the frame loop and read any number of
// times between ticks.
//
// Queries never fail: unknown codes report false and unset vectors are zero.
type Input struct {
	keys    edgeTracker
	buttons edgeTracker

	mousePos    Vec2
	mouseMotion Vec2
	mouseWheel  Vec2

	sink    EventSink
	edgeBuf []DeviceCode
}

// NewInput returns an Input with nothing held.
func NewInput() *Input {
	return &Input{}
}

// SetEventSink forwards every edge and wheel event to sink. Pass nil to stop.
func (in *Input) SetEventSink(sink EventSink) {
	in.sink = sink
}

// Update rebuilds the frame-local state from s.
//
// Key and button edges are recomputed against the previous update. The
// cursor is converted to world space with [ToWorld] using vp. Motion is
// reported with its Y component negated so it agrees with world space.
// The wheel reads s.Wheel if a wheel event arrived, zero otherwise.
func (in *Input) Update(s Snapshot, vp Viewport) {
	in.keys.update(s.Keys)
	in.buttons.update(s.Buttons)

	in.mousePos = ToWorld(s.Cursor, vp)
	in.mouseMotion = motionToWorld(s.Motion)
	if s.HasWheel {
		in.mouseWheel = s.Wheel
	} else {
		in.mouseWheel = Vec2{}
	}

	if in.sink != nil {
		in.emitEdges()
	}
}

// ResetWheel zeroes the wheel delta. The frame loop calls this after every
// user callback so a wheel event is visible for exactly one frame.
func (in *Input) ResetWheel() {
	in.mouseWheel = Vec2{}
}

// Reset drops all held state without emitting up edges. Use after the
// window loses focus if stale presses must not linger.
func (in *Input) Reset() {
	in.keys.reset()
	in.buttons.reset()
	in.mouseMotion = Vec2{}
	in.mouseWheel = Vec2{}
}

// KeyDown reports whether key became pressed this frame.
func (in *Input) KeyDown(key DeviceCode) bool { return in.keys.down.has(key) }

// KeyHeld reports whether key is currently pressed.
func (in *Input) KeyHeld(key DeviceCode) bool { return in.keys.held.has(key) }

// KeyUp reports whether key was released this frame.
func (in *Input) KeyUp(key DeviceCode) bool { return in.keys.up.has(key) }

// MouseDown reports whether button became pressed this frame.
func (in *Input) MouseDown(button DeviceCode) bool { return in.buttons.down.has(button) }

// MouseHeld reports whether button is currently pressed.
func (in *Input) MouseHeld(button DeviceCode) bool { return in.buttons.held.has(button) }

// MouseUp reports whether button was released this frame.
func (in *Input) MouseUp(button DeviceCode) bool { return in.buttons.up.has(button) }

// MousePosition returns the cursor position in world space.
func (in *Input) MousePosition() Vec2 { return in.mousePos }

// MouseMotion returns the cursor displacement since the previous frame,
// Y-up.
func (in *Input) MouseMotion() Vec2 { return in.mouseMotion }

// MouseWheel returns the wheel delta of this frame.
func (in *Input) MouseWheel() Vec2 { return in.mouseWheel }

// KeysDown appends the keys pressed this frame to buf in ascending order.
func (in *Input) KeysDown(buf []DeviceCode) []DeviceCode { return in.keys.down.appendTo(buf) }

// KeysHeld appends the keys currently pressed to buf in ascending order.
func (in *Input) KeysHeld(buf []DeviceCode) []DeviceCode { return in.keys.held.appendTo(buf) }

// KeysUp appends the keys released this frame to buf in ascending order.
func (in *Input) KeysUp(buf []DeviceCode) []DeviceCode { return in.keys.up.appendTo(buf) }

// edgeCount returns the number of down and up edges this frame across both
// domains. Used for debug stats.
func (in *Input) edgeCount() int {
	return in.keys.down.len() + in.keys.up.len() + in.buttons.down.len() + in.buttons.up.len()
}
