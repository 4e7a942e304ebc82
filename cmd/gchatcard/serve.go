package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gchat-cardbot/internal/di"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP bridge that relays card requests to the webhook",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := di.InitializeServer()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}
