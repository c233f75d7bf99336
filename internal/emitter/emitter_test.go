package emitter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dashline-io/dashline/pkg/transport"
)

const (
	minPort = 1024
	maxPort = 49150
)

func RandLocalAddr() string {
	for {
		port := rand.Intn(maxPort-minPort) + minPort
		addr := fmt.Sprintf(":%d", port)
		ln, err := net.Listen("tcp", addr)
		if err == nil {
			ln.Close()
			return addr
		}
	}
}

func RandDatagramAddr() string {
	for {
		port := rand.Intn(maxPort-minPort) + minPort
		addr := fmt.Sprintf(":%d", port)
		conn, err := net.ListenPacket("udp", addr)
		if err == nil {
			conn.Close()
			return addr
		}
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (t *syncBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.Write(p)
}

func (t *syncBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.String()
}

type failingConn struct{}

func (t *failingConn) Send(p []byte) error  { return fmt.Errorf("wire is down") }
func (t *failingConn) Close() error         { return nil }
func (t *failingConn) LocalAddr() net.Addr  { return &net.UDPAddr{} }
func (t *failingConn) RemoteAddr() net.Addr { return &net.UDPAddr{} }

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{
			name:    "Valid Datagram Sender",
			opts:    Options{Target: "127.0.0.1:9000", Mode: transport.Datagram, Delay: 100 * time.Millisecond},
			wantErr: false,
		},
		{
			name:    "Valid Stream Sender",
			opts:    Options{Target: "127.0.0.1:9000", Mode: transport.Stream, Delay: time.Millisecond},
			wantErr: false,
		},
		{
			name:    "Missing Target",
			opts:    Options{Mode: transport.Datagram, Delay: time.Millisecond},
			wantErr: true,
		},
		{
			name:    "Unknown Mode",
			opts:    Options{Target: "127.0.0.1:9000", Mode: transport.Mode("ipx"), Delay: time.Millisecond},
			wantErr: true,
		},
		{
			name:    "Zero Delay",
			opts:    Options{Target: "127.0.0.1:9000", Mode: transport.Datagram},
			wantErr: false,
		},
		{
			name:    "Negative Delay",
			opts:    Options{Target: "127.0.0.1:9000", Mode: transport.Datagram, Delay: -time.Millisecond},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got.RunID() == "" {
				t.Errorf("New() RunID should not be empty")
			}
			if got.Running() {
				t.Errorf("New() Running = true, want false before Run")
			}
			if got.Stats() == nil {
				t.Errorf("New() Stats should not be nil")
			}
		})
	}
}

func TestResolveDelay(t *testing.T) {
	tests := []struct {
		name    string
		sleepMs int
		nosleep bool
		want    time.Duration
		wantErr bool
	}{
		{
			name:    "Default Sleep",
			sleepMs: 100,
			want:    100 * time.Millisecond,
		},
		{
			name:    "Custom Sleep",
			sleepMs: 250,
			want:    250 * time.Millisecond,
		},
		{
			name:    "No Sleep Pins Minimum",
			sleepMs: 5000,
			nosleep: true,
			want:    100 * time.Millisecond,
		},
		{
			name:    "No Sleep Ignores Zero",
			sleepMs: 0,
			nosleep: true,
			want:    100 * time.Millisecond,
		},
		{
			name:    "Zero Sleep",
			sleepMs: 0,
			want:    0,
		},
		{
			name:    "Negative Sleep",
			sleepMs: -5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDelay(tt.sleepMs, tt.nosleep)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolveDelay() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ResolveDelay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmitter_Run(t *testing.T) {
	srv, err := transport.NewDatagramListener(RandDatagramAddr())
	if err != nil {
		t.Fatalf("NewDatagramListener() error = %v", err)
	}
	if err := srv.Listen(); err != nil {
		t.Fatalf("DatagramListener.Listen() error = %v", err)
	}
	defer srv.Stop()

	out := &syncBuffer{}
	em, err := New(Options{
		Target:   srv.Addr().String(),
		Mode:     transport.Datagram,
		Observer: out,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- em.Run(ctx) }()

	want := []string{"--\r\n", "---\r\n", "----\r\n"}
	for i, w := range want {
		select {
		case msg := <-srv.Messages():
			if string(msg.Payload) != w {
				t.Errorf("packet %d = %q, want %q", i, msg.Payload, w)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for packet %d", i)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Emitter.Run() error = %v, want nil on cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Emitter.Run() did not stop after cancel")
	}

	if got := out.String(); !strings.HasPrefix(got, "1\n2\n3\n") {
		t.Errorf("observer output = %q, want prefix %q", got, "1\n2\n3\n")
	}
	if snap := em.Stats().Snapshot(); snap.Packets < 3 {
		t.Errorf("Stats().Snapshot().Packets = %d, want >= 3", snap.Packets)
	}
	if em.LastSeq() < 3 {
		t.Errorf("Emitter.LastSeq() = %d, want >= 3", em.LastSeq())
	}
	if em.Running() {
		t.Errorf("Emitter.Running() = true after Run returned")
	}
}

func TestEmitter_Run_Stream(t *testing.T) {
	srv, err := transport.NewStreamListener(RandLocalAddr())
	if err != nil {
		t.Fatalf("NewStreamListener() error = %v", err)
	}
	if err := srv.Listen(); err != nil {
		t.Fatalf("StreamListener.Listen() error = %v", err)
	}
	defer srv.Stop()

	em, err := New(Options{
		Target:   srv.Addr().String(),
		Mode:     transport.Stream,
		Delay:    2 * time.Millisecond,
		Observer: &syncBuffer{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- em.Run(ctx) }()

	want := []string{"--\r\n", "---\r\n", "----\r\n"}
	for i, w := range want {
		select {
		case msg := <-srv.Messages():
			if string(msg.Payload) != w {
				t.Errorf("frame %d = %q, want %q", i, msg.Payload, w)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for frame %d", i)
		}
		if i == 0 {
			if !em.Running() {
				t.Errorf("Emitter.Running() = false during run")
			}
			if em.Uptime() <= 0 {
				t.Errorf("Emitter.Uptime() = %v, want > 0 during run", em.Uptime())
			}
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Emitter.Run() error = %v, want nil on cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Emitter.Run() did not stop after cancel")
	}
}

func TestEmitter_Run_ClosesConnOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		accepted <- conn
	}()

	em, err := New(Options{
		Target:   ln.Addr().String(),
		Mode:     transport.Stream,
		Delay:    time.Millisecond,
		Observer: &syncBuffer{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- em.Run(ctx) }()

	var peer net.Conn
	select {
	case peer = <-accepted:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for the sender to connect")
	}
	defer peer.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Emitter.Run() error = %v, want nil on cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Emitter.Run() did not stop after cancel")
	}

	peer.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 1024)
	for {
		_, err := peer.Read(buf)
		if err == nil {
			continue
		}
		if err != io.EOF {
			t.Errorf("peer read error = %v, want io.EOF after cancel", err)
		}
		break
	}
}

func TestEmitter_Run_ConnectFailure(t *testing.T) {
	em, err := New(Options{
		Target:   RandLocalAddr(),
		Mode:     transport.Stream,
		Delay:    time.Millisecond,
		Observer: &syncBuffer{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := em.Run(context.Background()); err == nil {
		t.Errorf("Emitter.Run() error = nil, want connect failure")
	}
}

func TestEmitter_Run_SendFailure(t *testing.T) {
	em, err := New(Options{
		Target:   "127.0.0.1:9000",
		Mode:     transport.Datagram,
		Delay:    time.Millisecond,
		Observer: &syncBuffer{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	em.dial = func(mode transport.Mode, addr string) (transport.Conn, error) {
		return &failingConn{}, nil
	}

	if err := em.Run(context.Background()); err == nil {
		t.Errorf("Emitter.Run() error = nil, want send failure")
	}
	snap := em.Stats().Snapshot()
	if snap.Errors != 1 {
		t.Errorf("Stats().Snapshot().Errors = %d, want 1", snap.Errors)
	}
	if snap.Packets != 0 {
		t.Errorf("Stats().Snapshot().Packets = %d, want 0", snap.Packets)
	}
}

func TestEmitter_Run_CancelDuringDelay(t *testing.T) {
	srv, err := transport.NewDatagramListener(RandDatagramAddr())
	if err != nil {
		t.Fatalf("NewDatagramListener() error = %v", err)
	}
	if err := srv.Listen(); err != nil {
		t.Fatalf("DatagramListener.Listen() error = %v", err)
	}
	defer srv.Stop()

	em, err := New(Options{
		Target:   srv.Addr().String(),
		Mode:     transport.Datagram,
		Delay:    5 * time.Second,
		Observer: &syncBuffer{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- em.Run(ctx) }()

	select {
	case <-srv.Messages():
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for first packet")
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Emitter.Run() error = %v, want nil on cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Emitter.Run() still sleeping after cancel")
	}
}
