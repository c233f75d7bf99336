package stats

import (
	"sync"
	"testing"
)

func TestCounters_Record(t *testing.T) {
	c := NewCounters()
	c.Record(4)
	c.Record(11)
	c.RecordError()

	got := c.Snapshot()
	if got.Packets != 2 {
		t.Errorf("Snapshot().Packets = %v, want 2", got.Packets)
	}
	if got.Bytes != 15 {
		t.Errorf("Snapshot().Bytes = %v, want 15", got.Bytes)
	}
	if got.Errors != 1 {
		t.Errorf("Snapshot().Errors = %v, want 1", got.Errors)
	}
}

func TestCounters_Parallel(t *testing.T) {
	c := NewCounters()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Record(3)
			}
		}()
	}
	wg.Wait()

	got := c.Snapshot()
	if got.Packets != 8000 {
		t.Errorf("Snapshot().Packets = %v, want 8000", got.Packets)
	}
	if got.Bytes != 24000 {
		t.Errorf("Snapshot().Bytes = %v, want 24000", got.Bytes)
	}
}
