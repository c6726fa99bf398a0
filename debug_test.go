package easel

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = prev })
	return &buf
}

func TestDebugLogPerTick(t *testing.T) {
	buf := captureDebug(t)
	clock := newFakeClock()
	p := &recordingPlatform{quitAt: 2}
	l := newTestLoop(p, clock, LoopConfig{TPS: 10, Debug: true})

	if err := l.Run(nil, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"[easel] frame 1 |", "[easel] frame 2 |", "throttle: 100ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "warning") {
		t.Errorf("unexpected warning:\n%s", out)
	}
}

func TestDebugLogOverBudgetWarning(t *testing.T) {
	buf := captureDebug(t)
	clock := newFakeClock()
	p := &recordingPlatform{quitAt: 1}
	l := newTestLoop(p, clock, LoopConfig{TPS: 10, Debug: true})

	err := l.Run(nil, func(*Context) error {
		clock.advance(150 * time.Millisecond)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[easel] warning: frame 1 took 150ms, budget 100ms") {
		t.Errorf("missing warning:\n%s", buf.String())
	}
}

func TestDebugLogEdges(t *testing.T) {
	buf := captureDebug(t)
	p := mustScript(t, `{"quit_on_end": true, "steps": [
		{"action": "press", "key": 1},
		{"action": "press", "button": 0}
	]}`)
	l := newTestLoop(p, newFakeClock(), LoopConfig{Debug: true})
	if err := l.Run(nil, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[easel] frame 1 | input edges: 2") {
		t.Errorf("missing edge count:\n%s", buf.String())
	}
}

func TestDebugLogSilentByDefault(t *testing.T) {
	buf := captureDebug(t)
	p := &recordingPlatform{quitAt: 2}
	l := newTestLoop(p, newFakeClock(), LoopConfig{})
	if err := l.Run(nil, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
