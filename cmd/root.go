package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dashline-io/dashline/internal/control"
	"github.com/dashline-io/dashline/internal/emitter"
	"github.com/dashline-io/dashline/internal/stats"
	"github.com/dashline-io/dashline/pkg/transport"
	"github.com/dashline-io/dashline/pkg/utils/config"
)

type emitFlags struct {
	sleepMs int
	nosleep bool
	tcp     bool
	control bool
}

// New builds the root command. The bare command is the sender; listen,
// status and shutdown live under it.
func New() *cobra.Command {
	var debug bool
	var flags emitFlags

	rootCmd := &cobra.Command{
		Use:   "dashline <host> <port>",
		Short: "Send periodic dash packets at a host and port",
		Long: `dashline opens a socket and sends small dash packets at a fixed
cadence, printing the packet counter as it goes. Point it at a listener to
check that traffic arrives; run "dashline listen" on the other side if
nothing is listening yet.`,
		Example: `  dashline 127.0.0.1 9999
  dashline --tcp -s 250 10.0.0.5 7000
  dashline listen 9999`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
				log.Debug(config.Conf)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(args[0], args[1], flags)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	rootCmd.Flags().IntVarP(&flags.sleepMs, "sleep", "s", config.Conf.Emitter.Sleep_ms, "pause between packets in milliseconds")
	rootCmd.Flags().BoolVar(&flags.nosleep, "nosleep", false, "send at the minimal pause, ignoring --sleep")
	rootCmd.Flags().BoolVar(&flags.tcp, "tcp", false, "send over TCP instead of UDP")
	rootCmd.Flags().BoolVar(&flags.control, "control", false, "expose the gRPC control service while sending")

	rootCmd.AddCommand(newListenCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newShutdownCmd())
	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return New().Execute()
}

func runEmit(host, port string, flags emitFlags) error {
	target, err := parseTarget(host, port)
	if err != nil {
		return err
	}
	mode := transport.Datagram
	if flags.tcp {
		mode = transport.Stream
	}
	delay, err := emitter.ResolveDelay(flags.sleepMs, flags.nosleep)
	if err != nil {
		return err
	}

	counters := stats.NewCounters()
	em, err := emitter.New(emitter.Options{
		Target: target,
		Mode:   mode,
		Delay:  delay,
		Stats:  counters,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startProfiling()

	if seconds := config.Conf.Stats.Interval_s; seconds > 0 {
		reporter, err := stats.StartReporter("sender", counters, seconds)
		if err != nil {
			return err
		}
		defer reporter.Stop()
	}

	if flags.control {
		srv, err := control.NewServer(controlAddr(), em, stop)
		if err != nil {
			return fmt.Errorf("failed to start control service: %v", err)
		}
		if err := srv.Listen(); err != nil {
			return err
		}
		defer srv.Stop()
	}

	return em.Run(ctx)
}

func startProfiling() {
	if config.Conf.Debug.Pprof_addr == "" {
		return
	}
	go func() {
		log.Info("Profiling started")
		if err := http.ListenAndServe(config.Conf.Debug.Pprof_addr, nil); err != nil {
			log.Warnf("profiling server stopped: %v", err)
		}
	}()
}

func parsePort(port string) (int, error) {
	p, err := strconv.Atoi(port)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %v", port, err)
	}
	if p < 1 || p > 65535 {
		return 0, fmt.Errorf("port %d out of range 1-65535", p)
	}
	return p, nil
}

// parseTarget validates host and port and joins them into a dialable
// address.
func parseTarget(host, port string) (string, error) {
	if host == "" {
		return "", fmt.Errorf("host must not be empty")
	}
	if _, err := parsePort(port); err != nil {
		return "", err
	}
	return net.JoinHostPort(host, port), nil
}
