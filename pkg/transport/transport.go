package transport

import (
	"fmt"
	"net"
)

// Mode selects the wire transport for a dial or listen.
type Mode string

const (
	// Datagram is connectionless best-effort delivery (UDP).
	Datagram Mode = "udp"
	// Stream is connection-oriented ordered delivery (TCP).
	Stream Mode = "tcp"
)

// Network returns the net package network name for the mode.
func (t Mode) Network() string { return string(t) }

// Message is one payload received by a Listener. Payload keeps the CRLF
// terminator so reassembled stream frames match datagrams byte for byte.
type Message struct {
	RemoteAddr string
	Payload    []byte
}

// Conn is an established outbound channel to one target.
type Conn interface {
	// Send transmits the whole payload or fails. Stream conns block until
	// every byte is written; datagram conns hand one packet to the OS.
	Send(p []byte) error
	Close() error
	LocalAddr() net.Addr
	RemoteAddr() net.Addr
}

// Listener accepts payloads on a local address and hands them out as
// Messages. Listen must be called before Messages carries anything.
type Listener interface {
	Listen() error
	Stop() error
	Addr() net.Addr
	Messages() <-chan Message
}

// Dial opens an outbound channel to addr using the given mode.
func Dial(mode Mode, addr string) (Conn, error) {
	switch mode {
	case Stream:
		return dialStream(addr)
	case Datagram:
		return dialDatagram(addr)
	default:
		return nil, fmt.Errorf("unknown transport mode %q", mode)
	}
}

// NewListener builds (but does not start) a listener for the mode.
func NewListener(mode Mode, addr string) (Listener, error) {
	switch mode {
	case Stream:
		return NewStreamListener(addr)
	case Datagram:
		return NewDatagramListener(addr)
	default:
		return nil, fmt.Errorf("unknown transport mode %q", mode)
	}
}
