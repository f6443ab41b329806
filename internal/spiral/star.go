package spiral

import "math"

// Point is a vertex in logical surface units.
type Point struct {
	X, Y float64
}

// StarShape describes the star drawn for every particle.
type StarShape struct {
	Spikes int
	Outer  float64
	Inner  float64
}

// DefaultStar is a five pointed star 4 units across its tips.
func DefaultStar() StarShape {
	return StarShape{Spikes: 5, Outer: 4, Inner: 2}
}

// StarPath returns the closed outline of a star centered at (x, y). The path
// opens at (x, y-Outer), then alternates outer and inner vertices starting at
// the given rotation phase, stepping π/Spikes per vertex, and ends on its
// first point.
func StarPath(x, y float64, shape StarShape, rotation float64) []Point {
	return AppendStarPath(nil, x, y, shape, rotation)
}

// AppendStarPath is StarPath appending into dst.
func AppendStarPath(dst []Point, x, y float64, shape StarShape, rotation float64) []Point {
	step := math.Pi / float64(shape.Spikes)
	start := Point{X: x, Y: y - shape.Outer}

	dst = append(dst, start)
	rot := rotation
	for i := 0; i < shape.Spikes; i++ {
		dst = append(dst, Point{X: x + math.Cos(rot)*shape.Outer, Y: y + math.Sin(rot)*shape.Outer})
		rot += step
		dst = append(dst, Point{X: x + math.Cos(rot)*shape.Inner, Y: y + math.Sin(rot)*shape.Inner})
		rot += step
	}
	return append(dst, start)
}
