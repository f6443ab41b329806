package spiral

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

const (
	AngularStep  = 0.02 // radians per frame
	RotationStep = 0.05 // radians per frame
)

// Particle is one star on the spiral. Radius, YOffset and Color are fixed at
// creation; Angle and Rotation grow every frame without wrapping.
type Particle struct {
	Angle    float64
	Radius   float64
	YOffset  float64
	Rotation float64
	Color    color.NRGBA
}

// Advance moves the particle one frame along its orbit.
func (p *Particle) Advance() {
	p.Angle += AngularStep
	p.Rotation += RotationStep
}

// Position returns the particle's center on the surface. Only x orbits; y is
// constant for the lifetime of the particle.
func (p *Particle) Position(prof Profile) (x, y float64) {
	return prof.CenterX + math.Cos(p.Angle)*p.Radius, prof.BaseY - p.YOffset
}

// GenerateParticles builds prof.Count particles along the spiral in index
// order. Radius shrinks linearly from MaxRadius to 0 while YOffset rises from 0
// to Height. A profile with a single particle places it at the base; a
// non-positive count yields no particles.
func GenerateParticles(prof Profile, palette Palette, rng *rand.Rand) []Particle {
	if prof.Count <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	particles := make([]Particle, prof.Count)
	for i := range particles {
		progress := 0.0
		if prof.Count > 1 {
			progress = float64(i) / float64(prof.Count-1)
		}
		particles[i] = Particle{
			Angle:    progress * 2 * math.Pi * float64(prof.Turns),
			Radius:   (1 - progress) * prof.MaxRadius,
			YOffset:  progress * prof.Height,
			Rotation: rng.Float64() * math.Pi,
			Color:    palette.At(i),
		}
	}
	return particles
}
