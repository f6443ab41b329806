package spiral

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrEmptyPalette = errors.New("palette has no colors")

// Palette is the ordered set of star colors, assigned by particle index.
type Palette []color.NRGBA

// DefaultPalette returns pink, blue and green.
func DefaultPalette() Palette {
	p, err := ParsePalette([]string{"#ff4fd8", "#3fa9f5", "#3cff88"})
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette parses "#rrggbb" colors.
func ParsePalette(hex []string) (Palette, error) {
	if len(hex) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		p = append(p, color.NRGBA{R: r, G: g, B: b, A: 0xff})
	}
	return p, nil
}

// At returns the color for particle index i. An empty palette yields white.
func (p Palette) At(i int) color.NRGBA {
	if len(p) == 0 {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return p[i%len(p)]
}
