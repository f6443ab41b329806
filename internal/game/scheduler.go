package game

// FrameFunc draws one frame onto s.
type FrameFunc func(s Surface)

// Scheduler runs a callback before the next repaint. A callback that wants
// to keep running requests itself again.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// frameScheduler queues callbacks between repaints; Draw fires the batch.
type frameScheduler struct {
	pending []FrameFunc
	firing  []FrameFunc
}

func (f *frameScheduler) RequestFrame(fn FrameFunc) {
	f.pending = append(f.pending, fn)
}

// fire runs the callbacks requested before this repaint. Callbacks requested
// while firing wait for the next one.
func (f *frameScheduler) fire(s Surface) int {
	f.firing, f.pending = f.pending, f.firing[:0]
	for i, fn := range f.firing {
		fn(s)
		f.firing[i] = nil
	}
	return len(f.firing)
}

func (f *frameScheduler) queued() int { return len(f.pending) }
