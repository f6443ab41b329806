package spiral

import (
	"math/rand"
	"sync/atomic"
)

// Scene is one generation of the tree: the viewport it was built for, its
// profile and its particles. A scene is never resized; a new one replaces it.
type Scene struct {
	Viewport   Viewport
	Profile    Profile
	Particles  []Particle
	Generation uint64
}

// NewScene lays out a fresh scene for vp.
func NewScene(vp Viewport, palette Palette, rng *rand.Rand, generation uint64) *Scene {
	prof := ComputeProfile(vp.Width, vp.Height)
	return &Scene{
		Viewport:   vp,
		Profile:    prof,
		Particles:  GenerateParticles(prof, palette, rng),
		Generation: generation,
	}
}

// Store publishes the current scene. Readers load one scene and use it for a
// whole frame.
type Store struct {
	current atomic.Pointer[Scene]
}

func (s *Store) Publish(scene *Scene) { s.current.Store(scene) }

// Load returns the current scene, or nil before the first Publish.
func (s *Store) Load() *Scene { return s.current.Load() }
