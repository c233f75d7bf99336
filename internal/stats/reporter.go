package stats

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// Reporter logs a counters summary on a fixed schedule.
type Reporter struct {
	cron *cron.Cron
	id   cron.EntryID
}

// StartReporter schedules a summary line every `seconds` seconds. The
// interval must be positive; disabling the reporter is the caller's call.
func StartReporter(label string, counters *Counters, seconds int) (*Reporter, error) {
	if seconds <= 0 {
		return nil, fmt.Errorf("report interval must be positive, got %d", seconds)
	}

	c := cron.New()
	id, err := c.AddFunc(fmt.Sprintf("@every %ds", seconds), func() {
		s := counters.Snapshot()
		log.Infof("%s: packets=%d bytes=%d errors=%d", label, s.Packets, s.Bytes, s.Errors)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule stats report: %v", err)
	}
	c.Start()

	return &Reporter{cron: c, id: id}, nil
}

// Stop halts the schedule. Already-running report functions finish on
// their own.
func (t *Reporter) Stop() {
	t.cron.Remove(t.id)
	t.cron.Stop()
}
