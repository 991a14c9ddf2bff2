// fonts.go - Font loading from catalog handles.
// Reads the bytes a Handle points at and parses them with
// golang.org/x/image/font/sfnt, selecting a face inside TTC/OTC collections.
package typeface

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// ErrFontResolution marks every failure to find, read or parse a font.
var ErrFontResolution = errors.New("font resolution failed")

// Resolve asks src for the best match and loads it.
func Resolve(src Source, family Family, props Properties) (*sfnt.Font, Handle, error) {
	h, err := src.SelectBestMatch(family, props)
	if err != nil {
		return nil, Handle{}, fmt.Errorf("%w: select %s: %w", ErrFontResolution, family, err)
	}
	f, err := Load(h)
	if err != nil {
		return nil, h, err
	}
	return f, h, nil
}

// Load reads and parses the font behind h.
func Load(h Handle) (*sfnt.Font, error) {
	data := h.Bytes
	if h.Path != "" {
		var err error
		data, err = os.ReadFile(h.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: read font file: %w", ErrFontResolution, err)
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", ErrFontResolution)
	}

	f, err := Parse(data, h.FaceIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontResolution, err)
	}
	return f, nil
}

// Parse parses a single font or one face of a collection.
func Parse(data []byte, index int) (*sfnt.Font, error) {
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, fmt.Errorf("face index %d out of range (%d faces)", index, c.NumFonts())
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, fmt.Errorf("failed to parse face %d: %w", index, err)
	}
	return f, nil
}
