package transport

import (
	"errors"
	"fmt"
	"net"

	"github.com/charmbracelet/log"

	"github.com/dashline-io/dashline/pkg/utils/config"
)

type datagramConn struct {
	conn *net.UDPConn
}

func dialDatagram(addr string) (Conn, error) {
	address, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address %s: %v", addr, err)
	}
	conn, err := net.DialUDP("udp", nil, address)
	if err != nil {
		return nil, fmt.Errorf("unable to open datagram socket for %s: %v", addr, err)
	}
	return &datagramConn{conn: conn}, nil
}

// Send hands one packet to the OS. Delivery is best effort; errors the OS
// reports back on the connected socket (such as ICMP unreachable) are
// returned to the caller.
func (t *datagramConn) Send(p []byte) error {
	if _, err := t.conn.Write(p); err != nil {
		return fmt.Errorf("failed to send packet: %v", err)
	}
	return nil
}

func (t *datagramConn) Close() error         { return t.conn.Close() }
func (t *datagramConn) LocalAddr() net.Addr  { return t.conn.LocalAddr() }
func (t *datagramConn) RemoteAddr() net.Addr { return t.conn.RemoteAddr() }

// DatagramListener reads packets off a UDP socket, one Message per packet.
type DatagramListener struct {
	ListenAddr net.Addr
	messages   chan Message
	conn       net.PacketConn
}

func NewDatagramListener(addr string) (*DatagramListener, error) {
	address, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address type, %v", err)
	}
	return &DatagramListener{
		ListenAddr: address,
		messages:   make(chan Message, 64),
	}, nil
}

func (t *DatagramListener) Listen() error {
	var err error
	t.conn, err = net.ListenPacket("udp", t.ListenAddr.String())
	if err != nil {
		return fmt.Errorf("failed to start listener, %v", err)
	}
	log.Infof("UDP: started listening at %s", t.conn.LocalAddr())
	go t.readLoop()
	return nil
}

// Stop closes the socket. Calling Stop before Listen is a no-op.
func (t *DatagramListener) Stop() error {
	if t.conn == nil {
		return nil
	}
	return t.conn.Close()
}

func (t *DatagramListener) Addr() net.Addr {
	if t.conn != nil {
		return t.conn.LocalAddr()
	}
	return t.ListenAddr
}

func (t *DatagramListener) Messages() <-chan Message {
	return t.messages
}

func (t *DatagramListener) readLoop() {
	defer log.Infof("Shutting down listener: %s", t.Addr())

	buf := make([]byte, config.Conf.Listener.Buffer_size)
	for {
		n, raddr, err := t.conn.ReadFrom(buf)
		if errors.Is(err, net.ErrClosed) {
			return
		}
		if err != nil {
			log.Warnf("failed to read packet: %v", err)
			continue
		}
		payload := append([]byte(nil), buf[:n]...)
		t.messages <- Message{RemoteAddr: raddr.String(), Payload: payload}
	}
}
