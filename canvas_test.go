package easel

import "testing"

func TestCanvasRecordsPixelSpace(t *testing.T) {
	c := NewCanvas()
	c.begin(testViewport)
	c.Circle(V(10.7, -5.2), 4, ColorRed, 0)

	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	cmd := c.commands[0]
	if cmd.kind != drawCircle || cmd.radius != 4 || cmd.width != 0 {
		t.Errorf("command = %+v", cmd)
	}
	// (410.7, 230.2) truncated toward zero.
	if p := c.points[cmd.ptStart]; p != V(410, 230) {
		t.Errorf("center = %v, want (410, 230)", p)
	}
}

func TestCanvasTruncatesTowardZero(t *testing.T) {
	c := NewCanvas()
	c.begin(testViewport)
	c.Point(V(-400.5, 0), ColorWhite)
	// ToPixel gives (-0.5, 225); truncation keeps it at column 0.
	if p := c.points[0]; p != V(0, 225) {
		t.Errorf("point = %v, want (0, 225)", p)
	}
}

func TestCanvasRect(t *testing.T) {
	c := NewCanvas()
	c.begin(testViewport)
	c.Rect(V(-10, 10), V(20, 20), ColorBlue, 2)
	cmd := c.commands[0]
	if cmd.kind != drawRect || cmd.size != V(20, 20) || cmd.width != 2 {
		t.Errorf("command = %+v", cmd)
	}
	if p := c.points[cmd.ptStart]; p != V(390, 215) {
		t.Errorf("top-left = %v, want (390, 215)", p)
	}
}

func TestCanvasLineMinimumWidth(t *testing.T) {
	c := NewCanvas()
	c.begin(testViewport)
	c.Line(V(0, 0), V(10, 10), ColorWhite, 0)
	c.Line(V(0, 0), V(10, 10), ColorWhite, 3)
	if w := c.commands[0].width; w != 1 {
		t.Errorf("width = %v, want 1", w)
	}
	if w := c.commands[1].width; w != 3 {
		t.Errorf("width = %v, want 3", w)
	}
	if c.commands[1].ptCount != 2 {
		t.Errorf("ptCount = %d, want 2", c.commands[1].ptCount)
	}
}

func TestCanvasPolygon(t *testing.T) {
	c := NewCanvas()
	c.begin(testViewport)
	c.Polygon([]Vec2{{0, 0}, {10, 0}}, ColorRed, 0)
	if c.Len() != 0 {
		t.Fatal("polygon with two points should be ignored")
	}

	c.Polygon([]Vec2{{0, 0}, {10, 0}, {0, 10}}, ColorRed, 0)
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	cmd := c.commands[0]
	pts := c.points[cmd.ptStart : cmd.ptStart+cmd.ptCount]
	want := []Vec2{{400, 225}, {410, 225}, {400, 215}}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestCanvasBeginResets(t *testing.T) {
	c := NewCanvas()
	c.begin(testViewport)
	c.Clear(ColorBlack)
	c.Polygon([]Vec2{{0, 0}, {1, 0}, {0, 1}}, ColorRed, 1)
	c.begin(Viewport{Width: 100, Height: 100})
	if c.Len() != 0 || len(c.points) != 0 {
		t.Errorf("begin left %d commands and %d points", c.Len(), len(c.points))
	}
	c.Point(V(0, 0), ColorWhite)
	if p := c.points[0]; p != V(50, 50) {
		t.Errorf("point = %v, want (50, 50) for new viewport", p)
	}
}
