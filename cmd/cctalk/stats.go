package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zevorn/cctalk/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the indexed conversations",
	Long: `Stats aggregates the catalog: session and turn counts, tool use,
token totals, the covered date range, which models appear, and
session volume by month.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Catalog.Path); err != nil {
		return fmt.Errorf("no catalog at %s (run \"cctalk index\" first)", cfg.Catalog.Path)
	}

	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	defer cat.Close()

	s, err := cat.ReadStats(context.Background())
	if err != nil {
		return err
	}

	fmt.Print(s.Format())
	return nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
