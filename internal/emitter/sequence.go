package emitter

import "sync/atomic"

// Sequence hands out the packet counter. The zero value is ready to use and
// the first call to Next returns 1.
type Sequence struct {
	n atomic.Uint64
}

// Next reserves and returns the next counter value.
func (t *Sequence) Next() uint64 {
	return t.n.Add(1)
}

// Current returns the value handed out most recently, 0 before the first
// call to Next.
func (t *Sequence) Current() uint64 {
	return t.n.Load()
}
