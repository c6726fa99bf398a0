package easel

// Viewport is the size in pixels of the surface being drawn to.
type Viewport struct {
	Width, Height int
}

// Center returns the pixel-space position of the world origin used when
// drawing. Both dimensions are halved with integer division, so an odd
// dimension puts the origin on the lower pixel.
func (vp Viewport) Center() Vec2 {
	return Vec2{float64(vp.Width / 2), float64(vp.Height / 2)}
}

// inverseCenter is the origin used when reading pixel positions back into
// world space. Odd dimensions round up here, which keeps the asymmetry of
// the reference renderer: a round trip through an odd axis lands exactly
// one unit away.
func (vp Viewport) inverseCenter() Vec2 {
	return Vec2{float64((vp.Width + 1) / 2), float64((vp.Height + 1) / 2)}
}

// Bounds returns the world-space rectangle covered by the viewport when
// drawing.
func (vp Viewport) Bounds() Rect {
	c := vp.Center()
	return Rect{
		X:      -c.X,
		Y:      c.Y - float64(vp.Height),
		Width:  float64(vp.Width),
		Height: float64(vp.Height),
	}
}

// ToPixel converts a world-space point (Y-up, origin at the viewport center)
// to pixel space (Y-down, origin at the top-left).
//
// The result is exact; no rounding is applied. Truncate with [Vec2.Trunc]
// at the rasterization boundary if integer pixels are needed.
func ToPixel(p Vec2, vp Viewport) Vec2 {
	c := vp.Center()
	return Vec2{p.X + c.X, -p.Y + c.Y}
}

// ToWorld converts a pixel-space point back to world space.
//
// For even viewport dimensions ToWorld(ToPixel(p, vp), vp) == p exactly.
// On an odd axis the round trip is off by exactly one unit: ToPixel halves
// that dimension rounding down, ToWorld rounding up.
func ToWorld(p Vec2, vp Viewport) Vec2 {
	c := vp.inverseCenter()
	return Vec2{p.X - c.X, -(p.Y - c.Y)}
}

// motionToWorld flips a pixel-space displacement into world orientation.
// Displacements are never offset by a center.
func motionToWorld(d Vec2) Vec2 {
	return Vec2{d.X, -d.Y}
}
