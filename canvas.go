package easel

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawKind selects what a drawCommand renders.
type drawKind uint8

const (
	drawClear drawKind = iota
	drawCircle
	drawRect
	drawLine
	drawPolygon
	drawPoint
)

// drawCommand is one recorded draw call. Positions are already in pixel
// space and truncated toward zero. Vertices live in Canvas.points.
type drawCommand struct {
	kind    drawKind
	color   Color
	ptStart int
	ptCount int
	radius  float64
	size    Vec2
	width   float64 // stroke width; 0 fills
}

const defaultCanvasCap = 256

// Canvas records the draw calls of one frame in world coordinates and
// replays them onto an Ebitengine image when the frame is presented.
//
// Shapes take a width argument: 0 fills the shape, anything larger strokes
// its outline with that many pixels.
type Canvas struct {
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	viewport Viewport
	commands []drawCommand
	points   []Vec2

	screenshotQueue []string
	screenshotSeq   int
	path            vector.Path
	vertices        []ebiten.Vertex
	indices         []uint16
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{
		ScreenshotDir: "screenshots",
		commands:      make([]drawCommand, 0, defaultCanvasCap),
		points:        make([]Vec2, 0, defaultCanvasCap),
	}
}

// begin discards the previous frame's commands.
func (c *Canvas) begin(vp Viewport) {
	c.viewport = vp
	c.commands = c.commands[:0]
	c.points = c.points[:0]
}

// Len returns the number of commands recorded this frame.
func (c *Canvas) Len() int { return len(c.commands) }

// pixel converts a world-space point to truncated pixel coordinates.
func (c *Canvas) pixel(p Vec2) Vec2 {
	return ToPixel(p, c.viewport).Trunc()
}

func (c *Canvas) push(cmd drawCommand, pts ...Vec2) {
	cmd.ptStart = len(c.points)
	cmd.ptCount = len(pts)
	for _, p := range pts {
		c.points = append(c.points, c.pixel(p))
	}
	c.commands = append(c.commands, cmd)
}

// Clear fills the whole surface with col.
func (c *Canvas) Clear(col Color) {
	c.push(drawCommand{kind: drawClear, color: col})
}

// Circle draws a circle centered at center.
func (c *Canvas) Circle(center Vec2, radius float64, col Color, width float64) {
	c.push(drawCommand{kind: drawCircle, color: col, radius: radius, width: width}, center)
}

// Rect draws an axis-aligned rectangle whose top-left corner is pos. The
// rectangle extends size.X to the right and size.Y downward.
func (c *Canvas) Rect(pos, size Vec2, col Color, width float64) {
	c.push(drawCommand{kind: drawRect, color: col, size: size, width: width}, pos)
}

// Line draws a segment from a to b. Widths below 1 are drawn as 1.
func (c *Canvas) Line(a, b Vec2, col Color, width float64) {
	c.push(drawCommand{kind: drawLine, color: col, width: max(width, 1)}, a, b)
}

// Polygon draws a closed polygon through points. Fewer than three points
// draw nothing.
func (c *Canvas) Polygon(points []Vec2, col Color, width float64) {
	if len(points) < 3 {
		return
	}
	c.push(drawCommand{kind: drawPolygon, color: col, width: width}, points...)
}

// Point draws a single pixel.
func (c *Canvas) Point(p Vec2, col Color) {
	c.push(drawCommand{kind: drawPoint, color: col}, p)
}

// --- Replay ---

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solidSource returns the 1x1 white source used for DrawTriangles. The
// image is created lazily because Ebitengine images need a running game.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(ColorWhite.toRGBA())
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Flush replays the recorded commands onto dst and captures any queued
// screenshots. The commands are kept, so flushing twice draws the same
// frame twice.
func (c *Canvas) Flush(dst *ebiten.Image) {
	for i := range c.commands {
		c.replay(dst, &c.commands[i])
	}
	c.flushScreenshots(dst)
}

func (c *Canvas) replay(dst *ebiten.Image, cmd *drawCommand) {
	pts := c.points[cmd.ptStart : cmd.ptStart+cmd.ptCount]
	clr := cmd.color.toRGBA()
	w := float32(cmd.width)

	switch cmd.kind {
	case drawClear:
		dst.Fill(clr)
	case drawCircle:
		x, y, r := float32(pts[0].X), float32(pts[0].Y), float32(cmd.radius)
		if cmd.width <= 0 {
			vector.DrawFilledCircle(dst, x, y, r, clr, true)
		} else {
			vector.StrokeCircle(dst, x, y, r, w, clr, true)
		}
	case drawRect:
		x, y := float32(pts[0].X), float32(pts[0].Y)
		sw, sh := float32(cmd.size.X), float32(cmd.size.Y)
		if cmd.width <= 0 {
			vector.DrawFilledRect(dst, x, y, sw, sh, clr, false)
		} else {
			vector.StrokeRect(dst, x, y, sw, sh, w, clr, false)
		}
	case drawLine:
		vector.StrokeLine(dst, float32(pts[0].X), float32(pts[0].Y),
			float32(pts[1].X), float32(pts[1].Y), w, clr, true)
	case drawPolygon:
		c.replayPolygon(dst, pts, cmd)
	case drawPoint:
		vector.DrawFilledRect(dst, float32(pts[0].X), float32(pts[0].Y), 1, 1, clr, false)
	}
}

func (c *Canvas) replayPolygon(dst *ebiten.Image, pts []Vec2, cmd *drawCommand) {
	c.path = vector.Path{}
	c.path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.path.LineTo(float32(p.X), float32(p.Y))
	}
	c.path.Close()

	if cmd.width <= 0 {
		c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	} else {
		c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0],
			&vector.StrokeOptions{Width: float32(cmd.width), LineJoin: vector.LineJoinMiter, MiterLimit: 10})
	}

	col := cmd.color
	r, g, b, a := float32(col.R*col.A), float32(col.G*col.A), float32(col.B*col.A), float32(col.A)
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}

	dst.DrawTriangles(c.vertices, c.indices, solidSource(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}
