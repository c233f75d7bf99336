package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dashline-io/dashline/internal/control"
	"github.com/dashline-io/dashline/pkg/utils/config"
	"github.com/dashline-io/dashline/pkg/utils/env"
)

func controlAddr() string {
	return fmt.Sprintf("%s:%s", env.Get("DASHLINE_IPv4", "127.0.0.1"), config.Conf.Control.Port)
}

func newStatusCmd() *cobra.Command {
	var addr string

	statusCmd := &cobra.Command{
		Use:          "status",
		Short:        "Query a running sender over its control service",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			reply, err := control.Status(ctx, addr)
			if err != nil {
				return err
			}
			fmt.Printf("running:  %v\n", reply.GetRunning())
			fmt.Printf("run id:   %s\n", reply.GetRunId())
			fmt.Printf("target:   %s (%s)\n", reply.GetTarget(), reply.GetTransport())
			fmt.Printf("last seq: %d\n", reply.GetLastSeq())
			fmt.Printf("packets:  %d (%d bytes, %d errors)\n", reply.GetPacketsSent(), reply.GetBytesSent(), reply.GetSendErrors())
			fmt.Printf("uptime:   %s\n", time.Duration(reply.GetUptimeMs())*time.Millisecond)
			return nil
		},
	}

	statusCmd.Flags().StringVar(&addr, "addr", controlAddr(), "control service address")
	return statusCmd
}

func newShutdownCmd() *cobra.Command {
	var addr string

	shutdownCmd := &cobra.Command{
		Use:          "shutdown",
		Short:        "Stop a running sender over its control service",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			reply, err := control.Shutdown(ctx, addr)
			if err != nil {
				return err
			}
			if reply.GetStopping() {
				fmt.Println("sender is stopping")
			}
			return nil
		},
	}

	shutdownCmd.Flags().StringVar(&addr, "addr", controlAddr(), "control service address")
	return shutdownCmd
}
