// Package generator renders synthetic test slides: a white canvas with a few
// random rectangles and a frame caption, written as a PNG.
//
// All output follows one pipeline: seed, paint rectangles, blank the caption
// strip, resolve a serif font, draw the caption, then write the file.
package generator

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/xob0t/torso/pkg/typeface"
)

const (
	DefaultWidth  = 768
	DefaultHeight = 512
	DefaultOutput = "webdriver_torso_slide.png"

	// MaxFrame is the largest simulated frame number.
	MaxFrame = 10000

	// Caption geometry, in pixels.
	LineHeight = 30
	GlyphWidth = 22
	TextMargin = 5
	StripWidth = 256
)

// Config holds parameters for slide generation. Zero fields fall back to
// the defaults.
type Config struct {
	Width  int             // Pixel width (default: 768)
	Height int             // Pixel height (default: 512)
	Output string          // PNG path (default: webdriver_torso_slide.png)
	Source typeface.Source // Font catalog (default: typeface.SystemSource())
	Seed   uint64          // Random seed; 0 seeds from the clock
	Rand   *rand.Rand      // Random source; overrides Seed
	Frame  int             // Frame number; 0 draws one in [1, MaxFrame]
	Rects  int             // Rectangle count; 0 draws 2 or 3
	Colors []RGB           // Forced rectangle colours, cycled; nil draws them
	Log    io.Writer       // Progress lines; nil discards
}

// DefaultConfig returns the configuration the torso command runs with.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Output: DefaultOutput,
	}
}

func (cfg Config) withDefaults() Config {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Source == nil {
		cfg.Source = typeface.SystemSource()
	}
	if cfg.Rand == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		cfg.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if cfg.Log == nil {
		cfg.Log = io.Discard
	}
	return cfg
}

// Slide is a rendered slide and the draws that produced it.
type Slide struct {
	Canvas  *Canvas
	Rects   []Rect
	Frame   int
	Caption string
	Font    typeface.Handle
}

// Render composes a slide in memory. It fails with an error wrapping
// typeface.ErrFontResolution when no serif font can be loaded.
func Render(cfg Config) (*Slide, error) {
	cfg = cfg.withDefaults()
	if cfg.Width <= MinRectSide || cfg.Height <= MinRectSide {
		return nil, fmt.Errorf("canvas %dx%d too small: sides must exceed %d", cfg.Width, cfg.Height, MinRectSide)
	}
	rng := cfg.Rand

	frame := cfg.Frame
	if frame <= 0 {
		frame = 1 + rng.IntN(MaxFrame)
	}

	canvas := NewCanvas(cfg.Width, cfg.Height, White)
	n := cfg.Rects
	if n <= 0 {
		n = RectCount(rng)
	}
	rects := paintRects(canvas, rng, n, cfg.Colors)
	fmt.Fprintf(cfg.Log, "Rectangles: %d\n", len(rects))

	BlankStrip(canvas, StripWidth, LineHeight)

	font, handle, err := typeface.Resolve(cfg.Source, typeface.Serif, typeface.DefaultProperties())
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(cfg.Log, "Resolved font: %s\n", handle)

	face, err := typeface.NewFace(font)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", typeface.ErrFontResolution, err)
	}

	caption := Caption(frame)
	scale := typeface.Scale{X: GlyphWidth, Y: LineHeight}
	if err := DrawText(canvas, face, Black, TextMargin, cfg.Height-LineHeight, scale, caption); err != nil {
		return nil, err
	}

	return &Slide{
		Canvas:  canvas,
		Rects:   rects,
		Frame:   frame,
		Caption: caption,
		Font:    handle,
	}, nil
}

// Generate renders a slide and writes it to cfg.Output. Nothing is written
// when rendering fails.
func Generate(cfg Config) (*Slide, error) {
	cfg = cfg.withDefaults()
	slide, err := Render(cfg)
	if err != nil {
		return nil, err
	}
	if err := WritePNG(cfg.Output, slide.Canvas.Image()); err != nil {
		return nil, err
	}
	return slide, nil
}
