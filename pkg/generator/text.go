// text.go — Caption rendering onto the canvas.
package generator

import (
	"fmt"

	"github.com/xob0t/torso/pkg/typeface"
)

// Caption returns the slide caption for frame n.
func Caption(n int) string {
	return fmt.Sprintf("aqua.flv - synthetic frame #%d", n)
}

// DrawText lays out text with face and blends it into c. (x, y) is the
// top-left of the line; the baseline sits one ascent below y. Pixels that
// fall outside the canvas are skipped.
func DrawText(c *Canvas, face *typeface.Face, col RGB, x, y int, scale typeface.Scale, text string) error {
	vm := face.VMetrics(scale)
	glyphs, err := face.Layout(text, scale, float64(x), float64(y)+vm.Ascent)
	if err != nil {
		return fmt.Errorf("layout caption: %w", err)
	}

	for _, g := range glyphs {
		bb, ok := g.PixelBounds()
		if !ok {
			continue
		}
		g.Draw(func(gx, gy int, coverage float64) {
			c.Blend(bb.Min.X+gx, bb.Min.Y+gy, col, coverage)
		})
	}
	return nil
}
