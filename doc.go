// Package easel is a small 2D convenience layer over [Ebitengine] for
// sketches and simple games.
//
// It provides a Cartesian coordinate system (Y up, origin at the center of
// the window), polled keyboard and mouse input with per-frame edge
// detection, and a fixed-rate frame loop that hands an explicit [Context]
// to user code instead of relying on globals.
//
// # Quick start
//
//	err := easel.Run(easel.RunConfig{Title: "Demo", Width: 800, Height: 450},
//		nil,
//		func(ctx *easel.Context) error {
//			ctx.Canvas.Clear(easel.ColorBlack)
//			ctx.Canvas.Circle(ctx.Input.MousePosition(), 20, easel.ColorRed, 0)
//			return nil
//		})
//
// # Coordinates
//
// User code works in world space. [ToPixel] and [ToWorld] convert between
// world space and the top-left, Y-down pixel space of the window. The
// conversion is exact; the [Canvas] truncates toward zero only when it
// records a draw call. Mouse position is reported in world space and mouse
// motion is Y-flipped to match.
//
// # Input
//
// [Input] is refreshed once per tick from a level-triggered sample. For each
// key and mouse button it reports whether the code went down this frame,
// is held, or went up this frame. A press shorter than one tick is not
// observable. The wheel delta is visible for exactly one tick.
//
// # Frame loop
//
// [Run] drives the loop with Ebitengine. [NewLoop] drives it with any
// [Platform], for example a [ScriptPlatform] replaying recorded input
// without a window.
//
// [Ebitengine]: https://ebitengine.org
package easel
