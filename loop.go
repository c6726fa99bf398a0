package easel

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultTPS is the target tick rate used when LoopConfig.TPS is zero.
const DefaultTPS = 60

var (
	// ErrQuit can be returned from an update callback to stop the loop
	// cleanly. Run then returns nil. It is the same value as
	// ebiten.Termination, so either works with every backend.
	ErrQuit = ebiten.Termination

	// ErrLoopRunning is returned when starting a loop that is already running.
	ErrLoopRunning = errors.New("easel: loop already running")
	// ErrLoopStopped is returned when starting a loop that has stopped.
	// A stopped loop cannot be restarted.
	ErrLoopStopped = errors.New("easel: loop already stopped")
)

// LoopState is the lifecycle state of a Loop.
type LoopState uint8

const (
	StateIdle    LoopState = iota // created, setup not yet run
	StateRunning                  // ticking
	StateStopped                  // terminal
)

func (s LoopState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// SetupFunc runs once before the first tick.
type SetupFunc func(ctx *Context) error

// UpdateFunc runs once per tick. Returning ErrQuit stops the loop cleanly;
// any other error stops it and is returned from Run.
type UpdateFunc func(ctx *Context) error

// LoopConfig controls loop timing.
type LoopConfig struct {
	// TPS is the target number of ticks per second. Zero means DefaultTPS;
	// a negative value disables throttling.
	TPS int

	// LegacyDeltaTiming publishes the time between consecutive throttle
	// points, measured after the throttle sleep. The value read during tick
	// N then covers the interval that ended before tick N began.
	//
	// When false (the default) the delta is measured immediately before
	// each update callback as the time since the previous callback started.
	LegacyDeltaTiming bool

	// Debug prints per-tick timing to stderr.
	Debug bool

	// Clock overrides the wall clock. Nil means SystemClock.
	Clock Clock
}

// Loop is a single-threaded fixed-rate frame loop.
//
// Each tick runs, in order: drain platform events, update Input, invoke the
// update callback, reset the wheel, throttle to the target rate, publish the
// legacy delta and present the frame. The throttle sleep is the only place
// the loop blocks; a callback that blocks stalls the whole loop.
type Loop struct {
	src      Source
	platform Platform // nil when the caller presents, as with Ebitengine
	clock    Clock
	cfg      LoopConfig

	state    LoopState
	stopping bool
	err      error
	ctx      *Context

	events []PlatformEvent
	snap   Snapshot

	lastCallback time.Time
	lastThrottle time.Time

	stats debugStats
}

// NewLoop creates an idle loop driven by p.
func NewLoop(p Platform, cfg LoopConfig) *Loop {
	l := newLoop(p, cfg)
	l.platform = p
	return l
}

func newLoop(src Source, cfg LoopConfig) *Loop {
	if cfg.TPS == 0 {
		cfg.TPS = DefaultTPS
	}
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock
	}
	l := &Loop{
		src:   src,
		clock: clock,
		cfg:   cfg,
	}
	l.ctx = newContext(l)
	return l
}

// State returns the loop's lifecycle state.
func (l *Loop) State() LoopState { return l.state }

// Context returns the runtime context shared with callbacks.
func (l *Loop) Context() *Context { return l.ctx }

// Run runs setup once and then ticks until the platform reports a quit, a
// callback calls Context.Quit, or update returns an error. A quit observed
// during a tick lets that tick finish; the next tick never starts.
//
// Run returns nil on a clean stop (including ErrQuit) and the callback's
// error otherwise. It fails with ErrLoopRunning or ErrLoopStopped if the
// loop is not idle.
func (l *Loop) Run(setup SetupFunc, update UpdateFunc) error {
	if l.platform == nil {
		return fmt.Errorf("easel: loop has no platform to present with")
	}
	if err := l.start(setup); err != nil {
		return err
	}
	for l.state == StateRunning {
		l.tick(update)
	}
	return l.result()
}

// start moves the loop from Idle to Running, running setup in between.
func (l *Loop) start(setup SetupFunc) error {
	switch l.state {
	case StateRunning:
		return ErrLoopRunning
	case StateStopped:
		return ErrLoopStopped
	}
	l.ctx.viewport = l.src.Viewport()
	if setup != nil {
		if err := setup(l.ctx); err != nil {
			l.state = StateStopped
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return fmt.Errorf("setup: %w", err)
		}
	}
	if l.stopping {
		// Context.Quit during setup: stop before the first tick.
		l.state = StateStopped
		return nil
	}
	now := l.clock.Now()
	l.lastCallback = now
	l.lastThrottle = now
	l.state = StateRunning
	return nil
}

// tick runs one full iteration for Run.
func (l *Loop) tick(update UpdateFunc) {
	l.step(update)

	if !l.stopping {
		l.throttle()
	}

	if l.err == nil {
		var t0 time.Time
		if l.cfg.Debug {
			t0 = l.clock.Now()
		}
		if err := l.platform.Present(l.ctx.Canvas); err != nil {
			l.err = fmt.Errorf("present: %w", err)
			l.stopping = true
		}
		if l.cfg.Debug {
			l.stats.presentTime = l.clock.Now().Sub(t0)
		}
	}

	l.endTick()
}

// step runs the part of a tick that precedes throttling: poll, input
// update, delta, callback and wheel reset.
func (l *Loop) step(update UpdateFunc) {
	var t0 time.Time
	if l.cfg.Debug {
		l.stats = debugStats{}
		t0 = l.clock.Now()
	}

	l.poll()

	if l.cfg.Debug {
		l.stats.pollTime = l.clock.Now().Sub(t0)
		t0 = l.clock.Now()
	}

	l.ctx.viewport = l.src.Viewport()
	l.ctx.Input.Update(l.snap, l.ctx.viewport)
	l.ctx.Canvas.begin(l.ctx.viewport)
	l.ctx.frame++

	if l.cfg.Debug {
		l.stats.inputTime = l.clock.Now().Sub(t0)
		l.stats.edgeCount = l.ctx.Input.edgeCount()
	}

	now := l.clock.Now()
	if !l.cfg.LegacyDeltaTiming {
		l.ctx.delta = now.Sub(l.lastCallback)
	}
	l.lastCallback = now

	if update != nil {
		if err := update(l.ctx); err != nil {
			l.stopping = true
			if !errors.Is(err, ErrQuit) {
				l.err = err
			}
		}
	}

	if l.cfg.Debug {
		l.stats.callbackTime = l.clock.Now().Sub(now)
	}

	l.ctx.Input.ResetWheel()
}

// poll drains platform events and samples the devices into l.snap.
func (l *Loop) poll() {
	l.events = l.src.PollEvents(l.events[:0])
	l.snap.Wheel = Vec2{}
	l.snap.HasWheel = false
	for _, ev := range l.events {
		switch ev.Type {
		case PlatformQuit:
			l.stopping = true
		case PlatformWheel:
			l.snap.Wheel = l.snap.Wheel.Add(ev.Delta)
			l.snap.HasWheel = true
		}
	}
	l.src.Sample(&l.snap)
}

// throttle sleeps until one tick interval has passed since the previous
// throttle point. A late tick does not sleep and the deadline is measured
// from the actual wake time, so missed ticks are never made up.
func (l *Loop) throttle() {
	var t0 time.Time
	if l.cfg.Debug {
		t0 = l.clock.Now()
	}

	now := l.clock.Now()
	if l.cfg.TPS > 0 {
		next := l.lastThrottle.Add(time.Second / time.Duration(l.cfg.TPS))
		if d := next.Sub(now); d > 0 {
			l.clock.Sleep(d)
			now = l.clock.Now()
		}
	}
	l.markThrottle(now)

	if l.cfg.Debug {
		l.stats.throttleTime = l.clock.Now().Sub(t0)
	}
}

// markThrottle records a throttle point and publishes the legacy delta.
// Backends that throttle on their own call it once per tick.
func (l *Loop) markThrottle(now time.Time) {
	if l.cfg.LegacyDeltaTiming {
		l.ctx.delta = now.Sub(l.lastThrottle)
	}
	l.lastThrottle = now
}

// endTick applies a pending stop and emits debug stats.
func (l *Loop) endTick() {
	if l.cfg.Debug {
		l.debugLog(l.stats)
	}
	if l.stopping {
		l.state = StateStopped
	}
}

func (l *Loop) result() error {
	if l.err != nil {
		return fmt.Errorf("frame %d: %w", l.ctx.frame, l.err)
	}
	return nil
}
