package game

import "sync"

// structureTap records the last N structure levels into a ring buffer so the
// overlay can draw a history of how the field has been settling.
type structureTap struct {
	buffer    []float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func newStructureTap(ringSize int) *structureTap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &structureTap{
		buffer: make([]float64, ringSize),
	}
}

func (t *structureTap) record(level float64) {
	t.mu.Lock()
	t.buffer[t.nextIndex] = level
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
	t.mu.Unlock()
}

// snapshot returns up to the last n levels, oldest first.
func (t *structureTap) snapshot(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.filled {
		n = t.filled
	}
	out := make([]float64, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
