package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gchat-cardbot/internal/di"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the status digest on the configured cron schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := di.InitializeApp()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return application.Run(ctx)
	},
}
