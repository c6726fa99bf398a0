package easel

import (
	"slices"
	"testing"
)

func TestLoadInputScript(t *testing.T) {
	data := []byte(`{
		"width": 320,
		"height": 240,
		"steps": [
			{"action": "press", "key": 65},
			{"action": "move", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "release", "button": 0}
		]
	}`)

	p, err := LoadInputScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(p.steps))
	}
	if p.steps[0].Action != "press" || p.steps[0].Key == nil || *p.steps[0].Key != 65 {
		t.Error("step 0 mismatch")
	}
	if p.steps[1].Action != "move" || p.steps[1].X != 100 || p.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if p.steps[2].Action != "wait" || p.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if p.steps[3].Button == nil || *p.steps[3].Button != 0 {
		t.Error("step 3 mismatch")
	}
	if p.Viewport() != (Viewport{Width: 320, Height: 240}) {
		t.Errorf("Viewport = %+v", p.Viewport())
	}
}

func TestLoadInputScript_DefaultViewport(t *testing.T) {
	p, err := LoadInputScript([]byte(`{"steps": [{"action": "quit"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Viewport() != (Viewport{Width: DefaultWidth, Height: DefaultHeight}) {
		t.Errorf("Viewport = %+v, want defaults", p.Viewport())
	}
}

func TestLoadInputScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "click"}]}`},
		{"press without code", `{"steps": [{"action": "press"}]}`},
		{"press with both", `{"steps": [{"action": "press", "key": 1, "button": 1}]}`},
		{"tap without code", `{"steps": [{"action": "tap"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadInputScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptPlatform_PressAndRelease(t *testing.T) {
	p, err := LoadInputScript([]byte(`{"steps": [
		{"action": "press", "key": 65},
		{"action": "press", "button": 2},
		{"action": "wait", "frames": 1},
		{"action": "release", "key": 65}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	var s Snapshot
	p.PollEvents(nil)
	p.Sample(&s)
	if !slices.Equal(s.Keys, []DeviceCode{65}) || !slices.Equal(s.Buttons, []DeviceCode{2}) {
		t.Fatalf("tick 1: keys %v buttons %v", s.Keys, s.Buttons)
	}

	p.PollEvents(nil)
	p.Sample(&s)
	if len(s.Keys) != 0 {
		t.Errorf("tick 2: keys %v, want none", s.Keys)
	}
	if !slices.Equal(s.Buttons, []DeviceCode{2}) {
		t.Errorf("tick 2: buttons %v, want [2]", s.Buttons)
	}
}

func TestScriptPlatform_Wait(t *testing.T) {
	p, err := LoadInputScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "press", "key": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	var s Snapshot
	for tick := 1; tick <= 3; tick++ {
		p.PollEvents(nil)
		p.Sample(&s)
		if len(s.Keys) != 0 {
			t.Fatalf("tick %d: press applied during wait", tick)
		}
		if p.Done() {
			t.Fatalf("tick %d: done too early", tick)
		}
	}
	p.PollEvents(nil)
	p.Sample(&s)
	if !slices.Equal(s.Keys, []DeviceCode{1}) {
		t.Errorf("tick 4: keys %v, want [1]", s.Keys)
	}
	if !p.Done() {
		t.Error("should be done after the last step")
	}
}

func TestScriptPlatform_Events(t *testing.T) {
	p, err := LoadInputScript([]byte(`{"steps": [
		{"action": "wheel", "x": 0, "y": -1},
		{"action": "quit"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	got := p.PollEvents(nil)
	want := []PlatformEvent{
		{Type: PlatformWheel, Delta: V(0, -1)},
		{Type: PlatformQuit},
	}
	if !slices.Equal(got, want) {
		t.Errorf("events = %+v, want %+v", got, want)
	}
	if got := p.PollEvents(nil); len(got) != 0 {
		t.Errorf("events repeated on the next poll: %+v", got)
	}
}

func TestScriptPlatform_QuitOnEnd(t *testing.T) {
	p, err := LoadInputScript([]byte(`{"quit_on_end": true, "steps": [
		{"action": "press", "key": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	got := p.PollEvents(nil)
	if len(got) != 1 || got[0].Type != PlatformQuit {
		t.Errorf("events = %+v, want one quit", got)
	}
	if got := p.PollEvents(nil); len(got) != 0 {
		t.Errorf("quit delivered twice: %+v", got)
	}
}

func TestScriptPlatform_MoveMotion(t *testing.T) {
	p, err := LoadInputScript([]byte(`{"steps": [
		{"action": "move", "x": 10, "y": 10},
		{"action": "move", "x": 15, "y": 30},
		{"action": "wait", "frames": 1},
		{"action": "wait", "frames": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	var s Snapshot
	p.PollEvents(nil)
	p.Sample(&s)
	if s.Cursor != V(15, 30) || s.Motion != V(15, 30) {
		t.Errorf("tick 1: cursor %v motion %v", s.Cursor, s.Motion)
	}
	p.PollEvents(nil)
	p.Sample(&s)
	if s.Cursor != V(15, 30) || s.Motion != (Vec2{}) {
		t.Errorf("tick 2: cursor %v motion %v", s.Cursor, s.Motion)
	}
}

func TestScriptPlatform_Present(t *testing.T) {
	p, err := LoadInputScript([]byte(`{"steps": [{"action": "quit"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas()
	c.Clear(ColorWhite)
	c.Point(V(0, 0), ColorBlack)
	if err := p.Present(c); err != nil {
		t.Fatal(err)
	}
	if p.Frames() != 1 || p.LastDrawCount() != 2 {
		t.Errorf("Frames = %d, LastDrawCount = %d", p.Frames(), p.LastDrawCount())
	}
}

func TestScriptPlatform_OutOfRangeCodes(t *testing.T) {
	p, err := LoadInputScript([]byte(`{"steps": [
		{"action": "press", "key": -2},
		{"action": "press", "key": 1099511627776},
		{"action": "press", "button": 5000},
		{"action": "wait", "frames": 1},
		{"action": "release", "key": 1099511627776}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	var s Snapshot
	p.PollEvents(nil)
	p.Sample(&s)
	if want := []DeviceCode{-2, 1 << 40}; !slices.Equal(s.Keys, want) {
		t.Fatalf("tick 1: keys %v, want %v", s.Keys, want)
	}
	if !slices.Equal(s.Buttons, []DeviceCode{5000}) {
		t.Fatalf("tick 1: buttons %v", s.Buttons)
	}
	if len(p.keys.words) > denseCodes/64 {
		t.Errorf("key bitset grew to %d words", len(p.keys.words))
	}

	p.PollEvents(nil)
	p.Sample(&s)
	if !slices.Equal(s.Keys, []DeviceCode{-2}) {
		t.Errorf("tick 2: keys %v, want [-2]", s.Keys)
	}
}
