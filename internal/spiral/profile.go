// Package spiral lays out the star particles of the neon tree and advances
// them frame by frame.
package spiral

import "math"

const (
	// CompactWidth is the viewport width below which the compact profile applies.
	CompactWidth = 600

	compactMaxRadius = 140
	regularMaxRadius = 160
)

// Viewport is the visible drawing region in logical units plus the device
// pixel ratio used to map logical units onto the pixel buffer.
type Viewport struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// Compact reports whether the viewport uses the compact profile.
func (v Viewport) Compact() bool { return v.Width < CompactWidth }

// Portrait reports whether the viewport is taller than it is wide.
func (v Viewport) Portrait() bool { return v.Height > v.Width }

// Profile holds the spiral geometry derived from one viewport size.
type Profile struct {
	CenterX   float64 // horizontal center of the spiral
	BaseY     float64 // bottom anchor
	Height    float64 // vertical extent above BaseY
	MaxRadius float64 // radius of the first particle
	Turns     int
	Count     int
}

// ComputeProfile derives the spiral geometry for a viewport of the given
// logical size.
func ComputeProfile(width, height float64) Profile {
	if width < CompactWidth {
		return Profile{
			CenterX:   width / 2,
			BaseY:     height * 0.60,
			Height:    height * 0.48,
			MaxRadius: math.Min(width*0.34, compactMaxRadius),
			Turns:     7,
			Count:     420,
		}
	}
	return Profile{
		CenterX:   width / 2,
		BaseY:     height * 0.75,
		Height:    height * 0.60,
		MaxRadius: regularMaxRadius,
		Turns:     8,
		Count:     550,
	}
}
