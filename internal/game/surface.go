package game

import (
	"image/color"

	"github.com/iburimskiy/neon-tree/internal/spiral"
)

// Style carries everything a fill needs. Surfaces keep no fill or glow state
// between calls.
type Style struct {
	Fill      color.Color
	GlowColor color.Color
	GlowBlur  float64 // logical units; 0 disables the glow
}

// Surface is a 2D drawing target addressed in logical units.
type Surface interface {
	// SetPixelRatio sets how many buffer pixels one logical unit covers.
	SetPixelRatio(ratio float64)
	ClearRect(x, y, w, h float64)
	// FillPath fills the closed path. The path is not retained.
	FillPath(path []spiral.Point, style Style)
}
