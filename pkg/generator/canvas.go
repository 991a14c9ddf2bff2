// canvas.go — Fixed-size RGB drawing surface.
package generator

import (
	"image"
	"image/draw"
)

// Canvas is a mutable grid of opaque pixels with its origin at the top-left.
// Every write is clipped to the bounds; writes outside are dropped.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a w×h canvas filled with bg.
func NewCanvas(w, h int, bg RGB) *Canvas {
	return &Canvas{img: newSolidImage(w, h, bg)}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image exposes the underlying image for encoding.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) inside(x, y int) bool {
	return image.Pt(x, y).In(c.img.Rect)
}

// At returns the pixel at (x, y), or the zero colour outside the canvas.
func (c *Canvas) At(x, y int) RGB {
	if !c.inside(x, y) {
		return RGB{}
	}
	p := c.img.RGBAAt(x, y)
	return RGB{p.R, p.G, p.B}
}

// Set overwrites one pixel.
func (c *Canvas) Set(x, y int, col RGB) {
	if !c.inside(x, y) {
		return
	}
	c.img.SetRGBA(x, y, col.RGBA())
}

// Fill overwrites every pixel of r, clipped to the canvas.
func (c *Canvas) Fill(r image.Rectangle, col RGB) {
	r = r.Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, &image.Uniform{col.RGBA()}, image.Point{}, draw.Src)
}

// Blend mixes col into the pixel at (x, y) weighted by coverage in [0, 1]:
// result = (1-coverage)*existing + coverage*col per channel.
func (c *Canvas) Blend(x, y int, col RGB, coverage float64) {
	if !c.inside(x, y) {
		return
	}
	p := c.img.RGBAAt(x, y)
	c.img.SetRGBA(x, y, RGB{
		R: lerp(p.R, col.R, coverage),
		G: lerp(p.G, col.G, coverage),
		B: lerp(p.B, col.B, coverage),
	}.RGBA())
}
