package generator

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/xob0t/torso/pkg/typeface"
)

var captionPattern = regexp.MustCompile(`^aqua\.flv - synthetic frame #(\d+)$`)

func testConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), DefaultOutput)
	cfg.Source = typeface.MemorySource{Data: goregular.TTF}
	return cfg
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "aqua.flv - synthetic frame #42", Caption(42))
}

func TestRenderRandom(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		cfg := testConfig(t)
		cfg.Seed = seed

		slide, err := Render(cfg)
		require.NoError(t, err)

		assert.Equal(t, DefaultWidth, slide.Canvas.Width())
		assert.Equal(t, DefaultHeight, slide.Canvas.Height())
		assert.Contains(t, []int{2, 3}, len(slide.Rects))
		assert.GreaterOrEqual(t, slide.Frame, 1)
		assert.LessOrEqual(t, slide.Frame, MaxFrame)

		m := captionPattern.FindStringSubmatch(slide.Caption)
		require.NotNil(t, m, slide.Caption)
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.Equal(t, slide.Frame, n)
	}
}

func TestRenderSeedsDiffer(t *testing.T) {
	render := func(seed uint64) *Slide {
		cfg := testConfig(t)
		cfg.Seed = seed
		slide, err := Render(cfg)
		require.NoError(t, err)
		return slide
	}

	a, b := render(11), render(12)
	assert.Equal(t, a.Canvas.Image().Bounds(), b.Canvas.Image().Bounds())
	assert.NotEqual(t, a.Rects, b.Rects)
	assert.False(t, bytes.Equal(a.Canvas.Image().Pix, b.Canvas.Image().Pix))

	// The same seed reproduces the same slide.
	assert.Equal(t, a.Canvas.Image().Pix, render(11).Canvas.Image().Pix)
}

func TestRenderForced(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = 7
	cfg.Rects = 2
	cfg.Colors = []RGB{Red, Blue}
	cfg.Frame = 42

	slide, err := Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, "aqua.flv - synthetic frame #42", slide.Caption)
	require.Len(t, slide.Rects, 2)
	assert.Equal(t, Red, slide.Rects[0].Color)
	assert.Equal(t, Blue, slide.Rects[1].Color)

	c := slide.Canvas
	stripTop := DefaultHeight - LineHeight + 1
	inStrip := func(x, y int) bool { return x < StripWidth && y >= stripTop }

	// The second rectangle is solid wherever the strip does not cut it.
	blue := slide.Rects[1]
	for y := blue.Y0; y < blue.Y1; y++ {
		for x := blue.X0; x < blue.X1; x++ {
			if !inStrip(x, y) {
				require.Equal(t, Blue, c.At(x, y), "pixel %d,%d", x, y)
			}
		}
	}

	// Only white, red, blue and text ink remain outside the caption line.
	for y := 0; y < DefaultHeight-LineHeight; y++ {
		for x := 0; x < DefaultWidth; x++ {
			p := c.At(x, y)
			require.Contains(t, []RGB{White, Red, Blue}, p, "pixel %d,%d", x, y)
		}
	}

	// The caption is drawn in black near the bottom-left.
	var darkest uint8 = 255
	for y := DefaultHeight - LineHeight; y < DefaultHeight; y++ {
		for x := TextMargin; x < StripWidth; x++ {
			p := c.At(x, y)
			if p.R == p.G && p.G == p.B && p.R < darkest {
				darkest = p.R
			}
		}
	}
	assert.Less(t, darkest, uint8(100))

	// Nothing is drawn left of the margin inside the strip.
	for y := stripTop; y < DefaultHeight; y++ {
		for x := 0; x < TextMargin-1; x++ {
			require.Equal(t, White, c.At(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestGenerateWritesPNG(t *testing.T) {
	cfg := testConfig(t)
	var log bytes.Buffer
	cfg.Log = &log

	slide, err := Generate(cfg)
	require.NoError(t, err)
	assert.Contains(t, log.String(), "Resolved font: <memory")

	f, err := os.Open(cfg.Output)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())

	r, g, b, a := img.At(0, 0).RGBA()
	want := slide.Canvas.At(0, 0)
	assert.Equal(t, uint32(want.R)*0x101, r)
	assert.Equal(t, uint32(want.G)*0x101, g)
	assert.Equal(t, uint32(want.B)*0x101, b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestGenerateOverwrites(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Output, []byte("stale"), 0644))

	_, err := Generate(cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestGenerateFontFailure(t *testing.T) {
	for name, src := range map[string]typeface.Source{
		"NoFont":    typeface.MemorySource{},
		"BadBytes":  typeface.MemorySource{Data: []byte("not a font")},
		"BadIndex":  typeface.MemorySource{Data: goregular.TTF, FaceIndex: 3},
		"EmptyList": typeface.ChainSource{},
	} {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Source = src

			_, err := Generate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, typeface.ErrFontResolution)

			_, err = os.Stat(cfg.Output)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestGenerateWriteFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output = filepath.Join(t.TempDir(), "missing", DefaultOutput)

	_, err := Generate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrite)
}

func TestRenderTooSmall(t *testing.T) {
	cfg := testConfig(t)
	cfg.Width = MinRectSide

	_, err := Render(cfg)
	assert.Error(t, err)
}

func TestDrawTextClipsToCanvas(t *testing.T) {
	font, err := typeface.Parse(goregular.TTF, 0)
	require.NoError(t, err)
	face, err := typeface.NewFace(font)
	require.NoError(t, err)

	c := NewCanvas(40, 20, White)
	scale := typeface.Scale{X: GlyphWidth, Y: LineHeight}
	require.NoError(t, DrawText(c, face, Black, -10, 5, scale, "WWWWWWWW"))

	inked := false
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != White {
				inked = true
			}
		}
	}
	assert.True(t, inked)
}
