// Package control exposes a small gRPC surface for inspecting and
// stopping a running sender from another process.
package control

import (
	"context"
	"net"

	"github.com/charmbracelet/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	pb "github.com/dashline-io/dashline/internal/control/proto"
	"github.com/dashline-io/dashline/internal/emitter"
)

// Service answers control RPCs for one sender.
type Service struct {
	pb.UnimplementedControlServer

	em   *emitter.Emitter
	stop context.CancelFunc
}

func (c Service) Status(ctx context.Context, req *pb.StatusRequest) (*pb.StatusReply, error) {
	snap := c.em.Stats().Snapshot()
	return &pb.StatusReply{
		Running:     c.em.Running(),
		RunId:       c.em.RunID(),
		Target:      c.em.Target(),
		Transport:   c.em.Mode().Network(),
		LastSeq:     c.em.LastSeq(),
		PacketsSent: snap.Packets,
		BytesSent:   snap.Bytes,
		SendErrors:  snap.Errors,
		UptimeMs:    c.em.Uptime().Milliseconds(),
	}, nil
}

func (c Service) Shutdown(ctx context.Context, req *pb.ShutdownRequest) (*pb.ShutdownReply, error) {
	log.Info("Shutdown requested over control socket")
	c.stop()
	return &pb.ShutdownReply{Stopping: true}, nil
}

// Server hosts the control service on its own TCP listener.
type Server struct {
	Addr     net.Addr
	listener *net.Listener
	server   *grpc.Server
}

// NewServer binds addr and wires the control service to em. stop is
// invoked when a Shutdown RPC arrives.
func NewServer(addr string, em *emitter.Emitter, stop context.CancelFunc) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := grpc.NewServer()
	pb.RegisterControlServer(s, Service{em: em, stop: stop})
	reflection.Register(s)
	return &Server{
		Addr:     listener.Addr(),
		listener: &listener,
		server:   s,
	}, nil
}

// Listen starts serving control RPCs in the background.
func (t *Server) Listen() error {
	go func() {
		log.Infof("started control service, listening on %s", t.Addr)
		if err := t.server.Serve(*t.listener); err != nil {
			log.Fatalf("failed to serve control service on %s: %v", t.Addr, err)
		}
	}()
	return nil
}

// Stop shuts the gRPC server down after in-flight RPCs complete.
func (t *Server) Stop() {
	t.server.GracefulStop()
}
