// Package emitter drives the packet sender: connect to one target, then
// write a dash payload per tick until told to stop.
package emitter

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dashline-io/dashline/internal/emitter/payload"
	"github.com/dashline-io/dashline/internal/stats"
	"github.com/dashline-io/dashline/pkg/transport"
	"github.com/dashline-io/dashline/pkg/utils/collection"
	"github.com/dashline-io/dashline/pkg/utils/config"
)

// Options configures a sender run.
type Options struct {
	// Target is the host:port packets are written to.
	Target string
	// Mode selects the transport.
	Mode transport.Mode
	// Delay is the pause between consecutive packets. Zero means no pause.
	Delay time.Duration
	// Observer receives one line with the counter value per packet sent.
	// Defaults to os.Stdout.
	Observer io.Writer
	// Stats, when set, is updated after every send attempt.
	Stats *stats.Counters
}

// Emitter sends dash payloads to a single target at a fixed cadence.
type Emitter struct {
	runID    string
	target   string
	mode     transport.Mode
	delay    time.Duration
	observer io.Writer
	stats    *stats.Counters

	seq     Sequence
	running *collection.ConcurrentValue[bool]
	started *collection.ConcurrentValue[time.Time]

	dial func(mode transport.Mode, addr string) (transport.Conn, error)
}

// New validates opts and builds a sender. The sender does not touch the
// network until Run.
func New(opts Options) (*Emitter, error) {
	if opts.Target == "" {
		return nil, fmt.Errorf("target must not be empty")
	}
	if opts.Mode != transport.Datagram && opts.Mode != transport.Stream {
		return nil, fmt.Errorf("unknown transport mode %q", opts.Mode)
	}
	if opts.Delay < 0 {
		return nil, fmt.Errorf("delay must not be negative, got %v", opts.Delay)
	}
	if opts.Observer == nil {
		opts.Observer = os.Stdout
	}
	if opts.Stats == nil {
		opts.Stats = stats.NewCounters()
	}
	return &Emitter{
		runID:    uuid.NewString(),
		target:   opts.Target,
		mode:     opts.Mode,
		delay:    opts.Delay,
		observer: opts.Observer,
		stats:    opts.Stats,
		running:  collection.NewConcurrentValue(false),
		started:  collection.NewConcurrentValue(time.Time{}),
		dial:     transport.Dial,
	}, nil
}

// ResolveDelay maps the sleep flags onto the packet delay. sleepMs applies
// as given, zero included; nosleep overrides it and pins the delay to the
// configured minimum.
func ResolveDelay(sleepMs int, nosleep bool) (time.Duration, error) {
	if nosleep {
		return time.Duration(config.Conf.Emitter.Minimal_sleep_ms) * time.Millisecond, nil
	}
	if sleepMs < 0 {
		return 0, fmt.Errorf("sleep must not be negative, got %dms", sleepMs)
	}
	return time.Duration(sleepMs) * time.Millisecond, nil
}

// Run connects to the target and sends packets until ctx is cancelled.
// Cancellation is the normal way a run ends and is not reported as an
// error. Send failures stop the run.
func (t *Emitter) Run(ctx context.Context) error {
	conn, err := t.dial(t.mode, t.target)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %v", t.target, err)
	}
	defer conn.Close()

	t.started.Set(time.Now())
	t.running.Set(true)
	defer t.running.Set(false)

	log.Infof("Sending packets to %s over %s", t.target, t.mode.Network())
	log.Debugf("run id %s", t.runID)
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping sender")
			return nil
		default:
		}

		n := t.seq.Next()
		p := payload.Build(n)
		if err := conn.Send(p); err != nil {
			t.stats.RecordError()
			return fmt.Errorf("failed to send packet %d: %v", n, err)
		}
		t.stats.Record(len(p))
		fmt.Fprintln(t.observer, n)

		select {
		case <-ctx.Done():
			log.Info("Stopping sender")
			return nil
		case <-time.After(t.delay):
		}
	}
}

// RunID identifies this sender instance.
func (t *Emitter) RunID() string { return t.runID }

// Target returns the destination address.
func (t *Emitter) Target() string { return t.target }

// Mode returns the transport the sender writes over.
func (t *Emitter) Mode() transport.Mode { return t.mode }

// LastSeq returns the counter of the packet sent most recently.
func (t *Emitter) LastSeq() uint64 { return t.seq.Current() }

// Running reports whether Run is active.
func (t *Emitter) Running() bool { return t.running.Get() }

// Stats returns the counters the sender updates.
func (t *Emitter) Stats() *stats.Counters { return t.stats }

// Uptime is the time since Run connected, 0 while not running.
func (t *Emitter) Uptime() time.Duration {
	if !t.running.Get() {
		return 0
	}
	return time.Since(t.started.Get())
}
