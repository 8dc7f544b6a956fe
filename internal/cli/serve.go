package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mverbeek/depchart/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis API",
		Long: `Run the HTTP analysis API.

Endpoints:
  GET  /healthz      liveness check
  POST /v1/analyze   analyze an inline manifest document
  POST /v1/diagram   render an inline manifest as diagram text

The server shares the configured cache backend with the CLI, under a
separate key namespace.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, falling back to :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	printInfo("Serving on %s", addr)
	printNextStep("Check liveness with", fmt.Sprintf("curl http://localhost%s/healthz", addr))

	return server.New(runner, c.Logger).ListenAndServe(ctx, addr)
}
