package main

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gchatcard",
	Short: "Build and deliver Google Chat status cards",
	Long: `gchatcard assembles Google Chat card payloads and posts them to an
incoming webhook. It can print a demo payload, send a status digest once,
run the digest on a cron schedule, or serve an HTTP bridge that relays
card requests to the webhook.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}
