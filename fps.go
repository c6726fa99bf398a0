package easel

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay prints the current FPS and TPS in the top-left corner. The text
// is refreshed every ~0.5 seconds so it stays readable.
type fpsOverlay struct {
	text       string
	lastUpdate time.Time
}

const fpsRefresh = 500 * time.Millisecond

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if now := time.Now(); o.text == "" || now.Sub(o.lastUpdate) >= fpsRefresh {
		o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		o.lastUpdate = now
	}
	ebitenutil.DebugPrint(screen, o.text)
}
