package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/opsbridge/netbox-mcp/core"
	"github.com/opsbridge/netbox-mcp/mcp"
	"github.com/opsbridge/netbox-mcp/netbox"
	"github.com/opsbridge/netbox-mcp/tools"
	"github.com/opsbridge/netbox-mcp/toolset"
)

// serverName identifies this host in the MCP initialize handshake.
const serverName = "netbox-mcp"

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

func (a *App) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve NetBox tools to an MCP client on stdio",
		Long: `Serve starts the MCP host on stdin/stdout.

All protocol traffic uses stdout; logs go to stderr. Requires NETBOX_URL
and NETBOX_TOKEN (or their config file equivalents).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				fmt.Fprintf(a.stderr, "Error: %v\n", err)
				return &exitError{code: 1, err: err}
			}

			logger := a.newLogger()

			client, err := a.newClient(logger)
			if err != nil {
				fmt.Fprintf(a.stderr, "Error: %v\n", err)
				return &exitError{code: 1, err: err}
			}

			registry := tools.NewRegistry()
			if err := toolset.Register(registry, toolset.Config{Client: client}); err != nil {
				return &exitError{code: 1, err: err}
			}

			server := mcp.NewServer(registry, serverName, Version, mcp.WithLogger(logger))
			return server.Serve(cmd.Context(), a.stdin, a.stdout)
		},
	}
}

// newLogger builds the stderr logger. Stdout carries protocol traffic
// and must stay clean.
func (a *App) newLogger() *slog.Logger {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

func (a *App) newClient(logger *slog.Logger) (netbox.Client, error) {
	opts := []netbox.Option{
		netbox.WithTelemetry(core.LogHook{Logger: logger}),
	}

	if !a.cfg.VerifySSL {
		opts = append(opts, netbox.WithInsecureTLS())
	}
	if a.cfg.Timeout != "" {
		d, err := time.ParseDuration(a.cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", a.cfg.Timeout, err)
		}
		opts = append(opts, netbox.WithTimeout(d))
	}
	if a.cfg.RateLimit > 0 {
		burst := a.cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		opts = append(opts, netbox.WithRateLimit(a.cfg.RateLimit, burst))
	}

	return netbox.New(a.cfg.URL, a.cfg.Token, opts...), nil
}
