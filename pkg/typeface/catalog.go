// Package typeface resolves fonts from the host and lays out and rasterizes
// glyphs through golang.org/x/image/font/sfnt and golang.org/x/image/vector.
//
// Fonts are found through a Source, a host font catalog queried by generic
// family such as Serif.
package typeface

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNoMatch is returned by a Source that has no font for a query.
var ErrNoMatch = errors.New("no matching font")

// Family is a generic font family.
type Family int

// Generic families understood by every Source.
const (
	Serif Family = iota
	SansSerif
	Monospace
)

func (f Family) String() string {
	switch f {
	case Serif:
		return "serif"
	case SansSerif:
		return "sans-serif"
	case Monospace:
		return "monospace"
	}
	return "family(" + strconv.Itoa(int(f)) + ")"
}

// Style is the slant of a face.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

// Properties narrow a family query down to one face.
type Properties struct {
	Style   Style
	Weight  int     // CSS scale, 100–900
	Stretch float64 // 1 = normal width
}

// DefaultProperties returns upright, regular weight, normal width.
func DefaultProperties() Properties {
	return Properties{Style: StyleNormal, Weight: 400, Stretch: 1}
}

// Handle points at font data, either a file on disk or bytes in memory,
// plus the face index within a collection.
type Handle struct {
	Path      string
	Bytes     []byte
	FaceIndex int
}

func (h Handle) String() string {
	if h.Path != "" {
		return fmt.Sprintf("%s#%d", h.Path, h.FaceIndex)
	}
	return fmt.Sprintf("<memory %d bytes>#%d", len(h.Bytes), h.FaceIndex)
}

// Source is a font catalog.
type Source interface {
	SelectBestMatch(family Family, props Properties) (Handle, error)
}

// SystemSource returns the host catalog: fontconfig when it is installed,
// otherwise a scan of the standard font directories.
func SystemSource() Source {
	return ChainSource{&FontconfigSource{}, NewSysfontSource()}
}

// ChainSource asks each source in turn and returns the first match.
type ChainSource []Source

func (c ChainSource) SelectBestMatch(family Family, props Properties) (Handle, error) {
	var errs []error
	for _, src := range c {
		h, err := src.SelectBestMatch(family, props)
		if err == nil {
			return h, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return Handle{}, fmt.Errorf("%s: %w", family, ErrNoMatch)
	}
	return Handle{}, errors.Join(errs...)
}

// MemorySource serves one in-memory font for every query.
type MemorySource struct {
	Data      []byte
	FaceIndex int
}

func (m MemorySource) SelectBestMatch(family Family, _ Properties) (Handle, error) {
	if len(m.Data) == 0 {
		return Handle{}, fmt.Errorf("%s: %w", family, ErrNoMatch)
	}
	return Handle{Bytes: m.Data, FaceIndex: m.FaceIndex}, nil
}

// FontconfigSource asks fontconfig through fc-match.
type FontconfigSource struct {
	Command string // default "fc-match"
}

func (s *FontconfigSource) SelectBestMatch(family Family, props Properties) (Handle, error) {
	command := s.Command
	if command == "" {
		command = "fc-match"
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return Handle{}, fmt.Errorf("fontconfig: %w", err)
	}

	out, err := exec.Command(path, "--format=%{file}|%{index}", fcPattern(family, props)).Output()
	if err != nil {
		return Handle{}, fmt.Errorf("fontconfig: %w", err)
	}
	return parseFcMatch(string(out))
}

// parseFcMatch reads "<file>|<index>" as printed by fc-match.
func parseFcMatch(out string) (Handle, error) {
	out = strings.TrimSpace(out)
	file, index := out, ""
	if i := strings.LastIndex(out, "|"); i >= 0 {
		file, index = out[:i], out[i+1:]
	}
	if file == "" {
		return Handle{}, fmt.Errorf("fontconfig: %w", ErrNoMatch)
	}

	h := Handle{Path: file}
	if index != "" {
		n, err := strconv.Atoi(index)
		if err != nil {
			return Handle{}, fmt.Errorf("fontconfig: bad face index %q: %w", index, err)
		}
		// Named instances of variable fonts carry (instance+1)<<16 in the
		// high bits; only the low 16 bits select the face.
		h.FaceIndex = n & 0xFFFF
	}
	return h, nil
}

// fcPattern builds a fontconfig pattern such as "serif:slant=roman:weight=regular:width=normal".
func fcPattern(family Family, props Properties) string {
	slant := "roman"
	switch props.Style {
	case StyleItalic:
		slant = "italic"
	case StyleOblique:
		slant = "oblique"
	}

	weight := "regular"
	switch w := props.Weight; {
	case w > 0 && w < 350:
		weight = "light"
	case w >= 550 && w < 650:
		weight = "demibold"
	case w >= 650 && w < 850:
		weight = "bold"
	case w >= 850:
		weight = "black"
	}

	width := "normal"
	switch s := props.Stretch; {
	case s > 0 && s < 0.9:
		width = "condensed"
	case s > 1.1:
		width = "expanded"
	}

	return fmt.Sprintf("%s:slant=%s:weight=%s:width=%s", family, slant, weight, width)
}
