package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// glowPeak is the alpha at the center of a glow sprite.
const glowPeak = 0.35

// glowImage renders a soft round halo of color c. The falloff is a Gaussian
// with sigma = radius/2, faded to zero at radius so sprites do not show edges.
func glowImage(c color.NRGBA, radius int) *image.NRGBA {
	if radius < 1 {
		radius = 1
	}
	size := 2*radius + 1
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	sigma := float64(radius) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x-radius), float64(y-radius)
			d := math.Hypot(dx, dy)
			edge := clamp01(1 - d/float64(radius))
			a := glowPeak * math.Exp(-(d*d)/(2*sigma*sigma)) * edge
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * float64(c.A)))})
		}
	}
	return img
}

type glowKey struct {
	c      color.NRGBA
	radius int
}

// glowCache keeps one sprite per color and pixel radius.
type glowCache struct {
	sprites map[glowKey]*ebiten.Image
}

func newGlowCache() *glowCache {
	return &glowCache{sprites: map[glowKey]*ebiten.Image{}}
}

func (g *glowCache) sprite(c color.NRGBA, radius int) *ebiten.Image {
	k := glowKey{c: c, radius: radius}
	if img, ok := g.sprites[k]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(glowImage(c, radius))
	g.sprites[k] = img
	return img
}

// reset drops every sprite, e.g. after the pixel ratio changed.
func (g *glowCache) reset() {
	for k, img := range g.sprites {
		img.Deallocate()
		delete(g.sprites, k)
	}
}
