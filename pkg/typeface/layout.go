// layout.go - Glyph layout and coverage rasterization.
// Positions glyphs left to right with the font's advances and pair kerning,
// scaled independently on each axis, and rasterizes their outlines to
// per-pixel coverage with golang.org/x/image/vector.
package typeface

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Scale is the pixel size of a line on each axis. X and Y are independent,
// so glyphs may be stretched or squeezed horizontally.
type Scale struct {
	X, Y float64
}

// VMetrics are vertical metrics in pixels at some Scale. Descent is
// positive below the baseline.
type VMetrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// Face lays out text in one parsed font. A Face is not safe for concurrent
// use.
type Face struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6

	ascent, descent, lineGap float64 // in design pixels
}

// designPPEM is the size outlines and metrics are read at before being
// scaled to the requested Scale.
const designPPEM = 256

// NewFace prepares f for layout.
func NewFace(f *sfnt.Font) (*Face, error) {
	fc := &Face{font: f, ppem: fixed.I(designPPEM)}
	m, err := f.Metrics(&fc.buf, fc.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("failed to read font metrics: %w", err)
	}
	fc.ascent = units(m.Ascent)
	fc.descent = units(m.Descent)
	fc.lineGap = units(m.Height) - fc.ascent - fc.descent
	if fc.ascent+fc.descent <= 0 {
		return nil, fmt.Errorf("font has no vertical extent")
	}
	return fc, nil
}

func units(v fixed.Int26_6) float64 { return float64(v) / 64 }

// factors converts design pixels to output pixels on each axis. A scale of Y pixels
// spans the font's ascent plus descent.
func (fc *Face) factors(s Scale) (sx, sy float64) {
	extent := fc.ascent + fc.descent
	return s.X / extent, s.Y / extent
}

// VMetrics returns the vertical metrics at scale s.
func (fc *Face) VMetrics(s Scale) VMetrics {
	_, sy := fc.factors(s)
	return VMetrics{
		Ascent:  fc.ascent * sy,
		Descent: fc.descent * sy,
		LineGap: fc.lineGap * sy,
	}
}

// Layout places text on one line starting at the pen position (x, y), where
// y is the baseline.
func (fc *Face) Layout(text string, s Scale, x, y float64) ([]Glyph, error) {
	sx, sy := fc.factors(s)

	var glyphs []Glyph
	var prev sfnt.GlyphIndex
	caret := x
	for i, r := range []rune(text) {
		idx, err := fc.font.GlyphIndex(&fc.buf, r)
		if err != nil {
			return nil, fmt.Errorf("glyph for %q: %w", r, err)
		}
		if i > 0 {
			// Missing or unreadable kerning data means no adjustment.
			if k, err := fc.font.Kern(&fc.buf, prev, idx, fc.ppem, font.HintingNone); err == nil {
				caret += units(k) * sx
			}
		}

		adv, err := fc.font.GlyphAdvance(&fc.buf, idx, fc.ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("advance for %q: %w", r, err)
		}
		segs, err := fc.font.LoadGlyph(&fc.buf, idx, fc.ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("outline for %q: %w", r, err)
		}

		glyphs = append(glyphs, newGlyph(r, append(sfnt.Segments(nil), segs...), caret, y, sx, sy))
		caret += units(adv) * sx
		prev = idx
	}
	return glyphs, nil
}

// Glyph is one positioned glyph outline.
type Glyph struct {
	Rune rune
	X, Y float64 // pen position on the baseline, in pixels

	segs   sfnt.Segments
	sx, sy float64
	bounds image.Rectangle
}

func newGlyph(r rune, segs sfnt.Segments, x, y, sx, sy float64) Glyph {
	g := Glyph{Rune: r, X: x, Y: y, segs: segs, sx: sx, sy: sy}
	if len(segs) > 0 {
		b := segs.Bounds()
		g.bounds = image.Rect(
			int(math.Floor(x+units(b.Min.X)*sx)),
			int(math.Floor(y+units(b.Min.Y)*sy)),
			int(math.Ceil(x+units(b.Max.X)*sx)),
			int(math.Ceil(y+units(b.Max.Y)*sy)),
		)
	}
	return g
}

// PixelBounds returns the integer pixel box the glyph covers. ok is false
// for glyphs without ink, such as spaces.
func (g Glyph) PixelBounds() (r image.Rectangle, ok bool) {
	return g.bounds, !g.bounds.Empty()
}

// Draw rasterizes the glyph and calls fn for every pixel of its box with
// coordinates relative to the box's top-left corner and coverage in [0, 1].
func (g Glyph) Draw(fn func(x, y int, coverage float64)) {
	if g.bounds.Empty() {
		return
	}
	w, h := g.bounds.Dx(), g.bounds.Dy()
	ox := g.X - float64(g.bounds.Min.X)
	oy := g.Y - float64(g.bounds.Min.Y)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(ox + units(p.X)*g.sx), float32(oy + units(p.Y)*g.sy)
	}

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	for i, seg := range g.segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if i > 0 {
				r.ClosePath()
			}
			r.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fn(x, y, float64(mask.AlphaAt(x, y).A)/255)
		}
	}
}
