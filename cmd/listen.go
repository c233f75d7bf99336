package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dashline-io/dashline/internal/listener"
	"github.com/dashline-io/dashline/internal/stats"
	"github.com/dashline-io/dashline/pkg/transport"
	"github.com/dashline-io/dashline/pkg/utils/config"
	"github.com/dashline-io/dashline/pkg/utils/pen"
)

func printBanner() {
	fmt.Print(`
	██████╗  █████╗ ███████╗██╗  ██╗██╗     ██╗███╗   ██╗███████╗
	██╔══██╗██╔══██╗██╔════╝██║  ██║██║     ██║████╗  ██║██╔════╝
	██║  ██║███████║███████╗███████║██║     ██║██╔██╗ ██║█████╗
	██║  ██║██╔══██║╚════██║██╔══██║██║     ██║██║╚██╗██║██╔══╝
	██████╔╝██║  ██║███████║██║  ██║███████╗██║██║ ╚████║███████╗
	╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝╚═╝╚═╝  ╚═══╝╚══════╝
	`)
	fmt.Println()
}

func newListenCmd() *cobra.Command {
	var tcp bool

	listenCmd := &cobra.Command{
		Use:   "listen <port>",
		Short: "Receive and print dash packets",
		Long: `listen binds the given port and prints one line per incoming packet,
carrying the sender address and the payload. Useful as the far end for a
dashline sender when no real listener is around.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parsePort(args[0]); err != nil {
				return err
			}
			mode := transport.Datagram
			if tcp {
				mode = transport.Stream
			}

			counters := stats.NewCounters()
			sink, err := listener.NewSink(listener.Options{
				Addr:  ":" + args[0],
				Mode:  mode,
				Stats: counters,
			})
			if err != nil {
				return err
			}

			printBanner()
			s := pen.Loader(fmt.Sprintf("Binding %s port %s... ", mode.Network(), args[0]))
			if err := sink.Listen(); err != nil {
				s.Stop()
				return fmt.Errorf("failed to start listener: %v", err)
			}
			pen.Complete(s, fmt.Sprintf("listener ready on %s 🎉", sink.Addr()))

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if seconds := config.Conf.Stats.Interval_s; seconds > 0 {
				reporter, err := stats.StartReporter("listener", counters, seconds)
				if err != nil {
					return err
				}
				defer reporter.Stop()
			}

			return sink.Run(ctx)
		},
	}

	listenCmd.Flags().BoolVar(&tcp, "tcp", false, "accept TCP connections instead of UDP")
	return listenCmd
}
