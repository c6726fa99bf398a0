package easel

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the current frame. It is taken
// when the frame is flushed and written to ScreenshotDir as
// <timestamp>_<seq>_<label>.png, where seq counts captures made by this
// Canvas so repeated labels within one second never overwrite each other.
func (c *Canvas) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// flushScreenshots captures dst for every queued label. Called at the end
// of Flush, after all commands are drawn.
func (c *Canvas) flushScreenshots(screen *ebiten.Image) {
	if len(c.screenshotQueue) == 0 {
		return
	}
	defer func() { c.screenshotQueue = c.screenshotQueue[:0] }()

	if err := os.MkdirAll(c.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(debugOut, "[easel] screenshot: %v\n", err)
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range c.screenshotQueue {
		c.screenshotSeq++
		path := filepath.Join(c.ScreenshotDir, screenshotName(stamp, c.screenshotSeq, label))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(debugOut, "[easel] screenshot: %v\n", err)
		}
	}
}

// screenshotName builds the file name for one capture.
func screenshotName(stamp string, seq int, label string) string {
	return fmt.Sprintf("%s_%03d_%s.png", stamp, seq, sanitizeLabel(label))
}

// unpremultiply converts premultiplied RGBA pixels to a straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// pngEncoder favors speed; captures happen mid-game.
var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// writePNG encodes img in memory and writes it to path in one call, so a
// failed encode never leaves a truncated file behind.
func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := pngEncoder.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	return nil
}

// sanitizeLabel turns a label into a file-name token. Characters outside
// [A-Za-z0-9.-] are separators: runs of them collapse to one underscore
// and leading or trailing ones are dropped. An empty token becomes "frame".
func sanitizeLabel(label string) string {
	var b strings.Builder
	sep := false
	for _, r := range label {
		if !labelRune(r) {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('_')
		}
		sep = false
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "frame"
	}
	return b.String()
}

func labelRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' || r == '-' || r == '.'
}
