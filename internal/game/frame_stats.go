package game

import "time"

// frameStats records the last N frame durations into a ring buffer so the
// overlay can show a smoothed frame time.
type frameStats struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	last      time.Time
}

func newFrameStats(ringSize int) *frameStats {
	if ringSize < 1 {
		ringSize = 1
	}
	return &frameStats{
		buffer: make([]time.Duration, ringSize),
	}
}

// mark records the time since the previous mark. The first mark only sets
// the reference point.
func (f *frameStats) mark(now time.Time) {
	if !f.last.IsZero() {
		f.record(now.Sub(f.last))
	}
	f.last = now
}

func (f *frameStats) record(d time.Duration) {
	f.buffer[f.nextIndex] = d
	f.nextIndex++
	if f.nextIndex >= len(f.buffer) {
		f.nextIndex = 0
	}
	if f.filled < len(f.buffer) {
		f.filled++
	}
}

// snapshot returns up to the last n durations, oldest first.
func (f *frameStats) snapshot(n int) []time.Duration {
	if n > f.filled {
		n = f.filled
	}
	out := make([]time.Duration, n)
	// Walk backwards from nextIndex - 1
	idx := f.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(f.buffer) - 1
		}
		out[i] = f.buffer[idx]
		idx--
	}
	return out
}

// average returns the mean of the recorded durations, or 0 with none.
func (f *frameStats) average() time.Duration {
	if f.filled == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range f.snapshot(f.filled) {
		sum += d
	}
	return sum / time.Duration(f.filled)
}
