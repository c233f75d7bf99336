package transport

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/dashline-io/dashline/pkg/utils/collection"
)

type streamConn struct {
	conn net.Conn
}

func dialStream(addr string) (Conn, error) {
	address, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address %s: %v", addr, err)
	}
	conn, err := net.Dial("tcp", address.String())
	if err != nil {
		return nil, fmt.Errorf("unable to establish connection with %s: %v", addr, err)
	}
	return &streamConn{conn: conn}, nil
}

// Send blocks until the whole payload has been written to the stream.
func (t *streamConn) Send(p []byte) error {
	if _, err := t.conn.Write(p); err != nil {
		return fmt.Errorf("failed to send data: %v", err)
	}
	return nil
}

func (t *streamConn) Close() error         { return t.conn.Close() }
func (t *streamConn) LocalAddr() net.Addr  { return t.conn.LocalAddr() }
func (t *streamConn) RemoteAddr() net.Addr { return t.conn.RemoteAddr() }

// StreamListener accepts TCP connections and splits every byte stream into
// CRLF-terminated frames, one Message per frame.
type StreamListener struct {
	ListenAddr net.Addr
	messages   chan Message
	listener   net.Listener
	peers      *collection.ConcurrentMap[string, net.Conn]
	wg         sync.WaitGroup
}

func NewStreamListener(addr string) (*StreamListener, error) {
	address, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address type, %v", err)
	}
	return &StreamListener{
		ListenAddr: address,
		messages:   make(chan Message, 64),
		peers:      collection.NewConcurrentMap[string, net.Conn](),
	}, nil
}

// Listen starts accepting connections.
func (t *StreamListener) Listen() error {
	var err error
	t.listener, err = net.Listen("tcp", t.ListenAddr.String())
	if err != nil {
		return fmt.Errorf("failed to start listener, %v", err)
	}
	log.Infof("TCP: started listening at %s", t.listener.Addr())
	go t.connectionLoop()
	return nil
}

// Stop stops accepting new connections and drops every live one.
// Calling Stop before Listen is a no-op.
func (t *StreamListener) Stop() error {
	if t.listener == nil {
		return nil
	}
	err := t.listener.Close()
	for _, conn := range t.peers.Values() {
		conn.Close()
	}
	return err
}

func (t *StreamListener) Addr() net.Addr {
	if t.listener != nil {
		return t.listener.Addr()
	}
	return t.ListenAddr
}

func (t *StreamListener) Messages() <-chan Message {
	return t.messages
}

// connectionLoop accepts incoming connections, registers them in the peer
// map and handles each in its own goroutine.
func (t *StreamListener) connectionLoop() {
	defer func() {
		log.Infof("Shutting down listener: %s", t.Addr())
		t.wg.Done()
	}()

	t.wg.Add(1)
	for {
		conn, err := t.listener.Accept()
		if errors.Is(err, net.ErrClosed) {
			return
		}
		if err != nil {
			log.Warnf("failed to accept connection on %s: %v", t.Addr(), err)
			continue
		}

		t.peers.Set(conn.RemoteAddr().String(), conn)
		go t.handleConnection(conn)
	}
}

// handleConnection reads CRLF-delimited frames until the peer closes.
func (t *StreamListener) handleConnection(conn net.Conn) {
	defer func() {
		if _, err := t.peers.Delete(conn.RemoteAddr().String()); err != nil {
			log.Debugf("Error while dropping connection: %v", err)
		}
		conn.Close()
		log.Debugf("Dropping connection: %s", conn.RemoteAddr())
	}()

	scanner := bufio.NewScanner(conn)
	scanner.Split(splitCRLF)
	for scanner.Scan() {
		frame := append([]byte(nil), scanner.Bytes()...)
		t.messages <- Message{RemoteAddr: conn.RemoteAddr().String(), Payload: frame}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Debugf("read from %s: %v", conn.RemoteAddr(), err)
	}
}

// splitCRLF frames a byte stream on "\r\n", keeping the terminator so each
// frame matches what the sender put on the wire. A trailing frame with no
// terminator is delivered as-is at EOF.
func splitCRLF(data []byte, atEOF bool) (int, []byte, error) {
	if i := bytes.Index(data, []byte("\r\n")); i >= 0 {
		return i + 2, data[:i+2], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}
