package easel

import "github.com/hajimehoshi/ebiten/v2"

// Key returns the device code the Ebitengine backend reports for k.
func Key(k ebiten.Key) DeviceCode { return DeviceCode(k) }

// Button returns the device code the Ebitengine backend reports for b.
func Button(b ebiten.MouseButton) DeviceCode { return DeviceCode(b) }

// Mouse buttons as reported by the Ebitengine backend.
var (
	MouseLeft   = Button(ebiten.MouseButtonLeft)
	MouseRight  = Button(ebiten.MouseButtonRight)
	MouseMiddle = Button(ebiten.MouseButtonMiddle)
)
