package game

import (
	"errors"

	"github.com/iburimskiy/neon-tree/internal/spiral"
)

var ErrAlreadyStarted = errors.New("animation loop already started")

// State is the animation loop lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Loop advances and draws the current scene once per frame callback. Speed is
// tied to the callback rate: each frame moves every particle by a fixed step.
type Loop struct {
	scenes   *spiral.Store
	sched    Scheduler
	shape    spiral.StarShape
	glowBlur float64

	state  State
	frames uint64
	path   []spiral.Point
}

// NewLoop creates an idle loop reading scenes from store.
func NewLoop(store *spiral.Store, sched Scheduler, shape spiral.StarShape, glowBlur float64) *Loop {
	return &Loop{
		scenes:   store,
		sched:    sched,
		shape:    shape,
		glowBlur: glowBlur,
		path:     make([]spiral.Point, 0, 2*shape.Spikes+2),
	}
}

// Start requests the first frame. It may be called once.
func (l *Loop) Start() error {
	if l.state != StateIdle {
		return ErrAlreadyStarted
	}
	l.state = StateRunning
	l.sched.RequestFrame(l.frame)
	return nil
}

// Stop ends the loop. A frame already requested does nothing when it fires.
func (l *Loop) Stop() {
	l.state = StateStopped
}

func (l *Loop) State() State { return l.state }

// Frames returns the number of frames drawn.
func (l *Loop) Frames() uint64 { return l.frames }

func (l *Loop) frame(s Surface) {
	if l.state != StateRunning {
		return
	}

	// One scene for the whole frame, even if a resize publishes mid-frame.
	if scene := l.scenes.Load(); scene != nil {
		if scene.Viewport.PixelRatio > 0 {
			s.SetPixelRatio(scene.Viewport.PixelRatio)
		}
		s.ClearRect(0, 0, scene.Viewport.Width, scene.Viewport.Height)
		for i := range scene.Particles {
			p := &scene.Particles[i]
			p.Advance()
			l.drawParticle(s, scene.Profile, p)
		}
	}

	l.frames++
	l.sched.RequestFrame(l.frame)
}

func (l *Loop) drawParticle(s Surface, prof spiral.Profile, p *spiral.Particle) {
	x, y := p.Position(prof)
	l.path = spiral.AppendStarPath(l.path[:0], x, y, l.shape, p.Rotation)
	s.FillPath(l.path, Style{Fill: p.Color, GlowColor: p.Color, GlowBlur: l.glowBlur})
}
