package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/iburimskiy/neon-tree/internal/spiral"
)

// Coordinator rebuilds the scene whenever the viewport changes. All of its
// methods run on the host's update tick; delayed work waits in a queue that
// Poll drains, so nothing touches the scene from another goroutine.
type Coordinator struct {
	scenes  *spiral.Store
	palette spiral.Palette
	rng     *rand.Rand
	delay   time.Duration
	logger  *log.Logger

	viewport   spiral.Viewport
	seen       bool
	generation uint64
	deferred   []time.Time
}

// NewCoordinator returns a coordinator publishing into store. delay is how
// long an orientation change waits before the scene is rebuilt again.
func NewCoordinator(store *spiral.Store, palette spiral.Palette, rng *rand.Rand, delay time.Duration, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{
		scenes:  store,
		palette: palette,
		rng:     rng,
		delay:   delay,
		logger:  logger,
	}
}

// Observe records the latest viewport. A new size rebuilds the scene at once;
// a flip between portrait and landscape additionally schedules a rebuild
// after the settle delay.
func (c *Coordinator) Observe(vp spiral.Viewport, now time.Time) {
	if c.seen && vp == c.viewport {
		return
	}
	prev, hadPrev := c.viewport, c.seen
	c.viewport, c.seen = vp, true

	c.Resize(vp)
	if hadPrev && prev.Portrait() != vp.Portrait() {
		c.OrientationChanged(now)
	}
}

// Resize lays out and publishes a new scene for vp.
func (c *Coordinator) Resize(vp spiral.Viewport) *spiral.Scene {
	c.generation++
	scene := spiral.NewScene(vp, c.palette, c.rng, c.generation)
	c.scenes.Publish(scene)
	c.logger.Printf("scene %d: %.0fx%.0f @%gx, %d stars, %d turns",
		scene.Generation, vp.Width, vp.Height, vp.PixelRatio, scene.Profile.Count, scene.Profile.Turns)
	return scene
}

// OrientationChanged schedules a rebuild at now+delay. Each call schedules
// its own rebuild; none is cancelled by a later one.
func (c *Coordinator) OrientationChanged(now time.Time) {
	c.deferred = append(c.deferred, now.Add(c.delay))
}

// Poll runs every deferred rebuild that is due, against the viewport current
// at that moment. It returns how many ran.
func (c *Coordinator) Poll(now time.Time) int {
	ran := 0
	kept := c.deferred[:0]
	for _, due := range c.deferred {
		if now.Before(due) {
			kept = append(kept, due)
			continue
		}
		c.Resize(c.viewport)
		ran++
	}
	c.deferred = kept
	return ran
}

// Pending returns the number of deferred rebuilds not yet run.
func (c *Coordinator) Pending() int { return len(c.deferred) }

func (c *Coordinator) Viewport() spiral.Viewport { return c.viewport }

func (c *Coordinator) Generation() uint64 { return c.generation }
