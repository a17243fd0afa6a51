package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zevorn/cctalk/internal/config"
	"github.com/zevorn/cctalk/internal/hook"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config and create the output directory",
	Long: `Init writes a config.toml pointing at the current project's
transcripts, creates the destination directory, and with --hook also
registers the SessionEnd hook.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path, created, err := config.WriteDefault()
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("created %s\n", config.CompressHome(path))
	} else {
		fmt.Printf("config already exists at %s\n", config.CompressHome(path))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Export.DestDir, 0o755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}
	fmt.Printf("output directory: %s\n", cfg.Export.DestDir)

	if installHook, _ := cmd.Flags().GetBool("hook"); installHook {
		if err := hook.Install(); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	initCmd.Flags().Bool("hook", false, "also register the SessionEnd hook")

	rootCmd.AddCommand(initCmd)
}
