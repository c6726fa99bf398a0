package easel

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenPlatform samples Ebitengine's input state. Ebitengine throttles and
// presents on its own, so it is only a Source.
type ebitenPlatform struct {
	vp      Viewport
	keys    []ebiten.Key
	cursor  Vec2
	sampled bool
}

func (p *ebitenPlatform) PollEvents(buf []PlatformEvent) []PlatformEvent {
	if ebiten.IsWindowBeingClosed() {
		buf = append(buf, PlatformEvent{Type: PlatformQuit})
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		buf = append(buf, PlatformEvent{Type: PlatformWheel, Delta: Vec2{dx, dy}})
	}
	return buf
}

func (p *ebitenPlatform) Sample(s *Snapshot) {
	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	s.Keys = s.Keys[:0]
	for _, k := range p.keys {
		s.Keys = append(s.Keys, DeviceCode(k))
	}

	s.Buttons = s.Buttons[:0]
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if ebiten.IsMouseButtonPressed(b) {
			s.Buttons = append(s.Buttons, DeviceCode(b))
		}
	}

	mx, my := ebiten.CursorPosition()
	cur := Vec2{float64(mx), float64(my)}
	if p.sampled {
		s.Motion = cur.Sub(p.cursor)
	} else {
		s.Motion = Vec2{}
	}
	s.Cursor = cur
	p.cursor = cur
	p.sampled = true
}

func (p *ebitenPlatform) Viewport() Viewport { return p.vp }

// game adapts a Loop to ebiten.Game. Each Ebitengine Update is one tick and
// Draw presents the Canvas.
//
// A clean stop is held back until the stopping tick has been drawn, so the
// last frame reaches the screen as it does with Loop.Run. A failed tick is
// reported at once and never drawn.
type game struct {
	loop   *Loop
	vp     Viewport
	setup  SetupFunc
	update UpdateFunc
	fps    *fpsOverlay

	presented   bool          // the stopping tick has been drawn
	presentTime time.Duration // duration of the last Draw
	idleSince   time.Time     // end of the previous Update
}

func (g *game) Update() error {
	l := g.loop
	switch l.state {
	case StateIdle:
		if err := l.start(g.setup); err != nil {
			return err
		}
		if l.state == StateStopped {
			return ErrQuit
		}
		g.idleSince = l.clock.Now()
	case StateStopped:
		if !g.presented {
			return nil
		}
		return ErrQuit
	}

	begin := l.clock.Now()
	l.step(g.update)
	if l.cfg.Debug {
		// Ebitengine sleeps and draws between Updates; report the previous
		// Draw and the rest of that gap as present and throttle time.
		l.stats.presentTime = g.presentTime
		l.stats.throttleTime = max(begin.Sub(g.idleSince)-g.presentTime, 0)
	}
	l.markThrottle(l.clock.Now())
	l.endTick()
	g.idleSince = l.clock.Now()

	if l.err != nil {
		return l.result()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	t0 := g.loop.clock.Now()
	g.loop.ctx.Canvas.Flush(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.drawn(g.loop.clock.Now().Sub(t0))
}

// drawn records a finished Draw.
func (g *game) drawn(d time.Duration) {
	g.presentTime = d
	if g.loop.state == StateStopped {
		g.presented = true
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.vp.Width, g.vp.Height
}

// Run opens a window described by cfg and runs setup once followed by
// update every tick until the window is closed, update returns an error,
// or a callback calls Context.Quit. Ebitengine throttles to cfg.MaxFPS.
//
// The tick that stops the loop cleanly is drawn before Run returns; a tick
// whose update failed is not. With cfg.Debug the present and throttle
// columns report the Draw and idle time that preceded each tick, since
// Ebitengine runs both between Updates.
//
// Run returns nil on a clean stop and the callback's error otherwise. It
// must be called from the main goroutine.
func Run(cfg RunConfig, setup SetupFunc, update UpdateFunc) error {
	cfg = cfg.withDefaults()

	var icon image.Image
	if cfg.Icon != "" {
		var err error
		if icon, err = loadIcon(cfg.Icon); err != nil {
			return err
		}
	}

	vp := Viewport{Width: cfg.Width, Height: cfg.Height}
	l := newLoop(&ebitenPlatform{vp: vp}, cfg.loopConfig())
	l.ctx.Canvas.ScreenshotDir = cfg.ScreenshotDir

	g := &game{loop: l, vp: vp, setup: setup, update: update}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetWindowClosingHandled(true)
	if icon != nil {
		ebiten.SetWindowIcon([]image.Image{icon})
	}
	if cfg.MaxFPS > 0 {
		ebiten.SetTPS(cfg.MaxFPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	return ebiten.RunGame(g)
}
