// Package listener implements the receive side, used to watch a sender
// from the same binary.
package listener

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dashline-io/dashline/internal/stats"
	"github.com/dashline-io/dashline/pkg/transport"
)

// Sink drains a transport listener and prints one line per message.
type Sink struct {
	listener transport.Listener
	observer io.Writer
	stats    *stats.Counters
}

// Options configures a sink.
type Options struct {
	// Addr is the listen address, host part optional.
	Addr string
	// Mode selects the transport.
	Mode transport.Mode
	// Observer receives one line per message. Defaults to os.Stdout.
	Observer io.Writer
	// Stats, when set, counts received traffic.
	Stats *stats.Counters
}

func NewSink(opts Options) (*Sink, error) {
	l, err := transport.NewListener(opts.Mode, opts.Addr)
	if err != nil {
		return nil, err
	}
	if opts.Observer == nil {
		opts.Observer = os.Stdout
	}
	if opts.Stats == nil {
		opts.Stats = stats.NewCounters()
	}
	return &Sink{
		listener: l,
		observer: opts.Observer,
		stats:    opts.Stats,
	}, nil
}

// Listen binds the socket and starts accepting traffic.
func (t *Sink) Listen() error {
	return t.listener.Listen()
}

// Addr returns the bound address.
func (t *Sink) Addr() net.Addr {
	return t.listener.Addr()
}

// Stats returns the counters the sink updates.
func (t *Sink) Stats() *stats.Counters {
	return t.stats
}

// Run prints incoming messages until ctx is cancelled, then closes the
// socket. Each line carries the sender address and the payload with the
// CRLF terminator stripped.
func (t *Sink) Run(ctx context.Context) error {
	defer func() {
		if err := t.listener.Stop(); err != nil {
			log.Warnf("failed to stop listener: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping listener")
			return nil
		case msg := <-t.listener.Messages():
			body := strings.TrimRight(string(msg.Payload), "\r\n")
			fmt.Fprintf(t.observer, "%s %s\n", msg.RemoteAddr, body)
			t.stats.Record(len(msg.Payload))
		}
	}
}
