package easel

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Vec2 is a 2D vector used for positions, displacements and sizes.
//
// The same type carries world-space and pixel-space values. Only
// [ToPixel] and [ToWorld] move a value between the two spaces; callers
// track which space a given value lives in.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div returns the component-wise quotient of v and o.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Translate returns v offset by (dx, dy).
func (v Vec2) Translate(dx, dy float64) Vec2 { return Vec2{v.X + dx, v.Y + dy} }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns v scaled to unit length. The zero vector normalizes to
// itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// AngleBetween returns the unsigned angle between v and o in radians.
// Returns 0 if either vector has zero length.
func (v Vec2) AngleBetween(o Vec2) float64 {
	d := v.Len() * o.Len()
	if d == 0 {
		return 0
	}
	return math.Acos(Clamp(v.Dot(o)/d, -1, 1))
}

// Rotate returns v rotated counter-clockwise by deg degrees (world space is
// Y-up, so positive angles turn from +X toward +Y).
func (v Vec2) Rotate(deg float64) Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Distance returns the distance between v and o.
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Len() }

// Lerp returns the point a fraction t of the way from v to o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// Trunc truncates both components toward zero. This is the rounding applied
// at the rasterization boundary.
func (v Vec2) Trunc() Vec2 { return Vec2{math.Trunc(v.X), math.Trunc(v.Y)} }

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", v.X, v.Y)
}

// Rect is an axis-aligned rectangle whose minimum corner is (X, Y).
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside the rectangle. Points on the edge
// are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap with a non-zero area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// RectsCollide reports whether the rectangles at positions p1, p2 with sizes
// s1, s2 overlap.
func RectsCollide(p1, s1, p2, s2 Vec2) bool {
	return Rect{p1.X, p1.Y, s1.X, s1.Y}.Intersects(Rect{p2.X, p2.Y, s2.X, s2.Y})
}

// CirclesCollide reports whether two circles overlap or touch.
func CirclesCollide(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	return c1.Distance(c2) <= r1+r2
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// MapRange re-maps v from the range [start1, stop1] to [start2, stop2].
// The result is not clamped.
func MapRange(v, start1, stop1, start2, stop2 float64) float64 {
	return start2 + (stop2-start2)*((v-start1)/(stop1-start1))
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// RandomFloat returns a uniformly distributed value in [lo, hi).
func RandomFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
