package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pi-chain/piswap/api"
	"github.com/pi-chain/piswap/internal/config"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				apiCfg := api.Config{
					ListenAddr:      cfg.ListenAddr,
					ReadTimeout:     cfg.ReadTimeout,
					WriteTimeout:    cfg.WriteTimeout,
					ShutdownTimeout: cfg.ShutdownTimeout,
				}
				srv := api.NewServer(e.keeper, e.ledger, e.recent, e.logger, apiCfg)
				return srv.Run(ctx)
			})
		},
	}
	cmd.Flags().String("listen", config.Default().ListenAddr, "address for the HTTP API to listen on")
	return cmd
}
