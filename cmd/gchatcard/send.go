package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"gchat-cardbot/internal/di"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Probe targets and send one status digest card",
	RunE: func(cmd *cobra.Command, args []string) error {
		digest, err := di.InitializeDigest()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()
		return digest.Run(ctx)
	},
}
