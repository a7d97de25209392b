package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fynk-lang/fynk/foundation/fynk/diag"
	"github.com/fynk-lang/fynk/internal/playground"
	"github.com/fynk-lang/fynk/pkg/core/version"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the websocket live-parse playground",
		Long: `Serves a websocket endpoint at /ws that parses source sent by
clients and replies with the syntax tree, tokens or diagnostics.

Examples:
  fynk serve
  fynk serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := playground.ConfigFrom(a.cfg.Playground)
			cfg.Version = version.ComponentVersion("playground")
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			engine := a.engine(diag.NewLogSink(a.logger), false)
			server := playground.New(cfg, engine, a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Fynk playground listening on ws://%s/ws\n", server.Address())
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
