package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zevorn/cctalk/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the cctalk setup",
	Long: `Check inspects the configuration, source and destination
directories, archive, catalog, and hook registration, and reports
what is missing. Exits non-zero when a check fails outright.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	report := check.Run(cfg)
	fmt.Print(report.Format())

	if report.HasFailures() {
		os.Exit(1)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
