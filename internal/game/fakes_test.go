package game

import (
	"io"
	"log"

	"github.com/iburimskiy/neon-tree/internal/spiral"
)

type fill struct {
	path  []spiral.Point
	style Style
}

// recordingSurface remembers every call in order.
type recordingSurface struct {
	ratio  float64
	clears [][4]float64
	fills  []fill
	calls  []string
}

func (r *recordingSurface) SetPixelRatio(ratio float64) {
	r.ratio = ratio
	r.calls = append(r.calls, "ratio")
}

func (r *recordingSurface) ClearRect(x, y, w, h float64) {
	r.clears = append(r.clears, [4]float64{x, y, w, h})
	r.calls = append(r.calls, "clear")
}

func (r *recordingSurface) FillPath(path []spiral.Point, style Style) {
	r.fills = append(r.fills, fill{path: append([]spiral.Point(nil), path...), style: style})
	r.calls = append(r.calls, "fill")
}

// manualScheduler holds requested frames until the test fires them.
type manualScheduler struct {
	queue []FrameFunc
}

func (m *manualScheduler) RequestFrame(fn FrameFunc) { m.queue = append(m.queue, fn) }

func (m *manualScheduler) fire(s Surface) {
	q := m.queue
	m.queue = nil
	for _, fn := range q {
		fn(s)
	}
}

func discardLogger() *log.Logger { return log.New(io.Discard, "", 0) }
