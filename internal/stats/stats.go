package stats

import "sync/atomic"

// Counters accumulates per-run traffic totals. All fields are atomic so the
// emit loop, the reporter and the control service can touch them without
// coordination.
type Counters struct {
	packets atomic.Uint64
	bytes   atomic.Uint64
	errors  atomic.Uint64
}

// Snapshot is a point-in-time copy of a Counters.
type Snapshot struct {
	Packets uint64
	Bytes   uint64
	Errors  uint64
}

func NewCounters() *Counters {
	return &Counters{}
}

// Record counts one unit of n bytes.
func (t *Counters) Record(n int) {
	t.packets.Add(1)
	t.bytes.Add(uint64(n))
}

func (t *Counters) RecordError() {
	t.errors.Add(1)
}

func (t *Counters) Snapshot() Snapshot {
	return Snapshot{
		Packets: t.packets.Load(),
		Bytes:   t.bytes.Load(),
		Errors:  t.errors.Load(),
	}
}
