package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-monsters/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagServeSpectate string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game. Runs from every
session are stored in the same database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  monsters serve                           # Listen on :23234 with auto-generated key
  monsters serve --ssh :2222               # Listen on port 2222
  monsters serve --host-key ./my_host_key  # Use specific host key
  monsters serve --spectate :8081          # Also stream every session to websocket spectators

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagServeSpectate, "spectate", "", "Serve a read-only websocket feed on this address (e.g. :8081)")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := applyConfigFlag(); err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	ctx := context.Background()
	if flagServeSpectate != "" {
		feed, err := startSpectate(ctx, flagServeSpectate)
		if err != nil {
			return fmt.Errorf("spectate: %w", err)
		}
		defer feed.Close()
		cfg.Publisher = feed.hub
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("starting SSH server", "addr", cfg.Address)
	logger.Info("connect with ssh", "cmd", "ssh localhost -p "+portOf(cfg.Address))

	return server.ListenAndServe(ctx)
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
