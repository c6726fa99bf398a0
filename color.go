package easel

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Palette of opaque colors.
var (
	ColorBlack   = RGB(0, 0, 0)
	ColorDGray   = RGB(64, 64, 64)
	ColorGray    = RGB(128, 128, 128)
	ColorLGray   = RGB(200, 200, 200)
	ColorWhite   = RGB(255, 255, 255)
	ColorRed     = RGB(255, 0, 0)
	ColorGreen   = RGB(0, 255, 0)
	ColorBlue    = RGB(0, 0, 255)
	ColorYellow  = RGB(255, 255, 0)
	ColorCyan    = RGB(0, 255, 255)
	ColorMagenta = RGB(255, 0, 255)
	ColorPurple  = RGB(128, 0, 128)
)

// RandomColor returns an opaque color with uniformly random channels.
func RandomColor(rng *rand.Rand) Color {
	return RGB(uint8(rng.IntN(256)), uint8(rng.IntN(256)), uint8(rng.IntN(256)))
}

// Blend mixes c and other. A ratio of 1 returns c, 0 returns other.
func (c Color) Blend(other Color, ratio float64) Color {
	ratio = Clamp(ratio, 0, 1)
	inv := 1 - ratio
	return Color{
		R: c.R*ratio + other.R*inv,
		G: c.G*ratio + other.G*inv,
		B: c.B*ratio + other.B*inv,
		A: c.A*ratio + other.A*inv,
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA8 returns the straight-alpha 8-bit channels of c.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func (c Color) String() string {
	r, g, b, a := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// toRGBA returns the premultiplied color.Color Ebitengine expects.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}
