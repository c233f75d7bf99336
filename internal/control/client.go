package control

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	pb "github.com/dashline-io/dashline/internal/control/proto"
)

// Status fetches the state of the sender whose control service listens at
// addr.
func Status(ctx context.Context, addr string) (*pb.StatusReply, error) {
	conn, err := grpc.NewClient(addr, grpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to control service at %s: %v", addr, err)
	}
	defer conn.Close()

	reply, err := pb.NewControlClient(conn).Status(ctx, &pb.StatusRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status: %v", err)
	}
	return reply, nil
}

// Shutdown asks the sender whose control service listens at addr to stop.
func Shutdown(ctx context.Context, addr string) (*pb.ShutdownReply, error) {
	conn, err := grpc.NewClient(addr, grpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to control service at %s: %v", addr, err)
	}
	defer conn.Close()

	reply, err := pb.NewControlClient(conn).Shutdown(ctx, &pb.ShutdownRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to request shutdown: %v", err)
	}
	return reply, nil
}
