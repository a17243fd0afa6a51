package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zevorn/cctalk/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the source directory and export on change",
	Long: `Watch keeps the Markdown mirror current while Claude Code runs:
whenever a transcript is created or appended to, the conversation is
re-exported after a short debounce. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch.Run(ctx, cfg, os.Stdout)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
