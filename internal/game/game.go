package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/neon-tree/internal/config"
	"github.com/iburimskiy/neon-tree/internal/spiral"
)

// Game hosts the neon tree inside ebiten. Layout reports the viewport, Update
// rebuilds the scene when it changes, and Draw fires the animation frame.
type Game struct {
	cfg    config.Config
	logger *log.Logger

	// replaceable for tests
	now         func() time.Time
	deviceScale func() float64

	scenes  *spiral.Store
	frames  frameScheduler
	loop    *Loop
	coord   *Coordinator
	surface *screenSurface
	stats   *frameStats

	viewport spiral.Viewport
	started  time.Time
}

// NewGame validates cfg and starts the animation loop. The first scene is
// built on the first update, once the window size is known.
func NewGame(cfg config.Config, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	palette, err := spiral.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("star rotation seed %d", seed)

	g := &Game{
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
		deviceScale: monitorScale,
		scenes:      &spiral.Store{},
		surface:     newScreenSurface(newGlowCache()),
		stats:       newFrameStats(config.FrameRingSize),
	}
	shape := spiral.StarShape{Spikes: cfg.StarSpikes, Outer: cfg.StarOuterRadius, Inner: cfg.StarInnerRadius}
	g.loop = NewLoop(g.scenes, &g.frames, shape, cfg.GlowBlur)
	g.coord = NewCoordinator(g.scenes, palette, rand.New(rand.NewSource(seed)), cfg.OrientationDelay, logger)

	if err := g.loop.Start(); err != nil {
		return nil, err
	}
	g.started = g.now()
	return g, nil
}

func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Shutdown()
		return ebiten.Termination
	}
	g.step(g.now())
	return nil
}

// step applies viewport changes and runs due deferred rebuilds.
func (g *Game) step(now time.Time) {
	if g.viewport.Width <= 0 || g.viewport.Height <= 0 {
		// Minimized or not laid out yet; keep the last scene.
		return
	}
	g.coord.Observe(g.viewport, now)
	g.coord.Poll(now)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.bind(screen)
	g.drawFrame(g.surface)
	g.stats.mark(g.now())

	if g.cfg.Debug {
		lines := hudLines(g.scenes.Load(), g.loop, ebiten.ActualFPS(), g.stats.average(), g.now().Sub(g.started))
		drawHUD(screen, lines, g.surface.ratio)
	}
}

// drawFrame fires the frame callbacks requested since the last repaint.
func (g *Game) drawFrame(s Surface) int {
	return g.frames.fire(s)
}

// Layout records the logical window size and returns the pixel buffer size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := g.deviceScale()
	g.viewport = spiral.Viewport{
		Width:      float64(outsideWidth),
		Height:     float64(outsideHeight),
		PixelRatio: scale,
	}
	return pixelSize(float64(outsideWidth), scale), pixelSize(float64(outsideHeight), scale)
}

// Shutdown stops the animation loop.
func (g *Game) Shutdown() {
	if g.loop.State() == StateStopped {
		return
	}
	g.loop.Stop()
	g.logger.Printf("stopped after %d frames, up %s", g.loop.Frames(), formatDuration(g.now().Sub(g.started)))
}
