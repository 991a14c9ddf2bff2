// sysfont.go — Catalog backed by a scan of the system font directories.
package typeface

import (
	"fmt"
	"strings"
	"sync"

	"github.com/adrg/sysfont"
)

// Families lists installed family names tried for each generic family, most
// preferred first.
var Families = map[Family][]string{
	Serif: {
		"DejaVu Serif", "Liberation Serif", "Noto Serif", "Times New Roman",
		"Times", "Georgia", "FreeSerif", "Nimbus Roman", "Cambria",
	},
	SansSerif: {
		"DejaVu Sans", "Liberation Sans", "Noto Sans", "Arial", "Helvetica",
		"FreeSans", "Nimbus Sans",
	},
	Monospace: {
		"DejaVu Sans Mono", "Liberation Mono", "Noto Sans Mono",
		"Courier New", "Menlo", "Consolas", "FreeMono",
	},
}

// SysfontSource matches generic families against the fonts installed in the
// standard directories. The directories are scanned on the first query
// unless Fonts is already set.
type SysfontSource struct {
	Fonts    []*sysfont.Font
	Families map[Family][]string
	List     func() []*sysfont.Font // default: scan with sysfont.Finder

	once sync.Once
}

// NewSysfontSource returns a source that scans the system font directories
// when first asked.
func NewSysfontSource() *SysfontSource {
	return &SysfontSource{Families: Families}
}

func (s *SysfontSource) fonts() []*sysfont.Font {
	s.once.Do(func() {
		if s.Fonts != nil {
			return
		}
		list := s.List
		if list == nil {
			list = sysfont.NewFinder(nil).List
		}
		s.Fonts = list()
	})
	return s.Fonts
}

func (s *SysfontSource) SelectBestMatch(family Family, props Properties) (Handle, error) {
	fonts := s.fonts()
	for _, name := range s.Families[family] {
		var best *sysfont.Font
		bestScore := -1
		for _, f := range fonts {
			if f == nil || f.Filename == "" || !strings.EqualFold(f.Family, name) {
				continue
			}
			if score := styleScore(f.Name, props); score > bestScore {
				best, bestScore = f, score
			}
		}
		if best != nil {
			return Handle{Path: best.Filename}, nil
		}
	}
	return Handle{}, fmt.Errorf("sysfont: %s: %w", family, ErrNoMatch)
}

// styleScore rates how well a face name fits props. Higher is better.
func styleScore(name string, props Properties) int {
	name = strings.ToLower(name)
	italic := strings.Contains(name, "italic") || strings.Contains(name, "oblique")
	bold := strings.Contains(name, "bold") || strings.Contains(name, "black") || strings.Contains(name, "heavy")
	condensed := strings.Contains(name, "condensed") || strings.Contains(name, "narrow")

	score := 0
	if italic == (props.Style != StyleNormal) {
		score += 4
	}
	if bold == (props.Weight >= 600) {
		score += 2
	}
	if condensed == (props.Stretch > 0 && props.Stretch < 0.9) {
		score++
	}
	return score
}
