package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zevorn/cctalk/internal/catalog"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the search catalog from source transcripts",
	Long: `Index parses every transcript in the source directory and rebuilds
the SQLite catalog behind cctalk search and cctalk stats. The catalog
is replaced wholesale on each run.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	defer cat.Close()

	summary, err := cat.Rebuild(context.Background(), cfg.Export.SourceDir, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d transcript(s) failed indexing", summary.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
