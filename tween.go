package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Vec2Tween animates a Vec2 between two points. Advance it with the loop's
// delta time:
//
//	pos, done := tw.Update(ctx.DeltaTime())
type Vec2Tween struct {
	x, y  *gween.Tween
	from  Vec2
	value Vec2
	doneX bool
	doneY bool
}

// NewVec2Tween creates a tween from one point to another over duration
// seconds. A nil easeFn means ease.Linear.
func NewVec2Tween(from, to Vec2, duration float64, easeFn ease.TweenFunc) *Vec2Tween {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	return &Vec2Tween{
		x:     gween.New(float32(from.X), float32(to.X), float32(duration), easeFn),
		y:     gween.New(float32(from.Y), float32(to.Y), float32(duration), easeFn),
		from:  from,
		value: from,
	}
}

// Update advances the tween by dt seconds and returns the current value and
// whether the tween has finished.
func (t *Vec2Tween) Update(dt float64) (Vec2, bool) {
	if !t.doneX {
		v, done := t.x.Update(float32(dt))
		t.value.X = float64(v)
		t.doneX = done
	}
	if !t.doneY {
		v, done := t.y.Update(float32(dt))
		t.value.Y = float64(v)
		t.doneY = done
	}
	return t.value, t.Done()
}

// Value returns the current value without advancing.
func (t *Vec2Tween) Value() Vec2 { return t.value }

// Done reports whether the tween reached its end point.
func (t *Vec2Tween) Done() bool { return t.doneX && t.doneY }

// Reset rewinds the tween to its start.
func (t *Vec2Tween) Reset() {
	t.x.Reset()
	t.y.Reset()
	t.doneX, t.doneY = false, false
	t.value = t.from
}

// ColorTween animates every channel of a Color.
type ColorTween struct {
	ch    [4]*gween.Tween
	value Color
	done  bool
}

// NewColorTween creates a tween between two colors over duration seconds.
// A nil easeFn means ease.Linear.
func NewColorTween(from, to Color, duration float64, easeFn ease.TweenFunc) *ColorTween {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	d := float32(duration)
	return &ColorTween{
		ch: [4]*gween.Tween{
			gween.New(float32(from.R), float32(to.R), d, easeFn),
			gween.New(float32(from.G), float32(to.G), d, easeFn),
			gween.New(float32(from.B), float32(to.B), d, easeFn),
			gween.New(float32(from.A), float32(to.A), d, easeFn),
		},
		value: from,
	}
}

// Update advances the tween by dt seconds.
func (t *ColorTween) Update(dt float64) (Color, bool) {
	if t.done {
		return t.value, true
	}
	var out [4]float64
	done := true
	for i, tw := range t.ch {
		v, fin := tw.Update(float32(dt))
		out[i] = float64(v)
		done = done && fin
	}
	t.value = Color{out[0], out[1], out[2], out[3]}
	t.done = done
	return t.value, done
}

// Value returns the current color without advancing.
func (t *ColorTween) Value() Color { return t.value }

// Done reports whether every channel reached its end value.
func (t *ColorTween) Done() bool { return t.done }
