// color.go — Slide palette and solid fills.
package generator

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// RGBA converts c to a fully opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

var (
	White  = RGB{0xFF, 0xFF, 0xFF}
	Black  = RGB{0x00, 0x00, 0x00}
	Red    = RGB{0xFF, 0x00, 0x00}
	Blue   = RGB{0x00, 0x00, 0xFF}
	Yellow = RGB{0xFF, 0xFF, 0x00}
	Green  = RGB{0x00, 0xFF, 0x00}
)

// Palette lists the rectangle colours in draw order. Rectangles pick from a
// prefix of it; the last two entries are only reachable through widening.
var Palette = [...]RGB{Red, Blue, Yellow, Green}

// newSolidImage creates a uniform image using draw.Draw (O(1) fill).
func newSolidImage(w, h int, c RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c.RGBA()}, image.Point{}, draw.Src)
	return img
}

// lerp blends one channel: (1-t)*a + t*b, truncated.
func lerp(a, b uint8, t float64) uint8 {
	v := (1-t)*float64(a) + t*float64(b)
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
