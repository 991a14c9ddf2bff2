// rects.go — Random rectangle placement.
package generator

import (
	"image"
	"math/rand/v2"
)

const (
	// MinRectSide is the smallest width and height of a painted rectangle.
	MinRectSide = 50

	thirdRectChance = 0.05
	widenChance     = 0.001
)

// Rect is one opaque rectangle request covering [X0,X1)×[Y0,Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
	Color          RGB
}

// Bounds returns r as an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X0, r.Y0, r.X1, r.Y1)
}

// bernoulli returns 1 with probability p, else 0.
func bernoulli(rng *rand.Rand, p float64) int {
	if rng.Float64() < p {
		return 1
	}
	return 0
}

// RectCount draws the number of rectangles: 2, or 3 with probability 0.05.
func RectCount(rng *rand.Rand) int {
	return 2 + bernoulli(rng, thirdRectChance)
}

// PaletteSize draws how many palette entries a rectangle may use. It is 2,
// plus two independent 0.001 widenings that each add one more colour.
func PaletteSize(rng *rand.Rand) int {
	return 2 + bernoulli(rng, widenChance) + bernoulli(rng, widenChance)
}

// RandomRect draws one rectangle inside a w×h canvas. Both sides are at
// least MinRectSide and the far edge never exceeds the canvas.
func RandomRect(rng *rand.Rand, w, h int) Rect {
	choices := Palette[:PaletteSize(rng)]
	col := choices[rng.IntN(len(choices))]

	x0 := rng.IntN(w - MinRectSide)
	y0 := rng.IntN(h - MinRectSide)
	x1 := x0 + MinRectSide + rng.IntN(w-x0-MinRectSide+1)
	y1 := y0 + MinRectSide + rng.IntN(h-y0-MinRectSide+1)

	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: col}
}

// PaintRects paints n random rectangles onto c in order, later ones
// overwriting earlier ones, and returns what it painted.
func PaintRects(c *Canvas, rng *rand.Rand, n int) []Rect {
	return paintRects(c, rng, n, nil)
}

// paintRects is PaintRects with the i-th colour replaced by
// colors[i%len(colors)] when colors is non-empty.
func paintRects(c *Canvas, rng *rand.Rand, n int, colors []RGB) []Rect {
	rects := make([]Rect, 0, n)
	for i := range n {
		r := RandomRect(rng, c.Width(), c.Height())
		if len(colors) > 0 {
			r.Color = colors[i%len(colors)]
		}
		c.Fill(r.Bounds(), r.Color)
		rects = append(rects, r)
	}
	return rects
}

// BlankStrip whitens the caption strip at the bottom-left: x in [0, width),
// y in [H-lineHeight+1, H).
func BlankStrip(c *Canvas, width, lineHeight int) {
	h := c.Height()
	c.Fill(image.Rect(0, h-lineHeight+1, width, h), White)
}
