package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zevorn/cctalk/internal/catalog"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search across indexed conversations",
	Long: `Search runs an FTS5 query over every turn in the catalog and prints
the best matches with the session, date, and a snippet. Matched terms
are shown in brackets. FTS5 query syntax applies, so phrases can be
quoted and terms combined with AND, OR, and NOT.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Opening a missing catalog would create an empty one, so refuse
	// up front with a pointer at the fix.
	if _, err := os.Stat(cfg.Catalog.Path); err != nil {
		return fmt.Errorf("no catalog at %s (run \"cctalk index\" first)", cfg.Catalog.Path)
	}

	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	defer cat.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	hits, err := cat.Search(context.Background(), query, limit)
	if err != nil {
		return err
	}

	if len(hits) == 0 {
		fmt.Println("No matches found.")
		return nil
	}

	for _, h := range hits {
		fmt.Fprintf(os.Stdout, "%-10s %-12s %-9s %s\n", h.ShortID, h.Date, h.Role, h.Snippet)
	}
	fmt.Fprintf(os.Stdout, "\n%d matches\n", len(hits))
	return nil
}

func init() {
	searchCmd.Flags().Int("limit", 20, "maximum number of matches")

	rootCmd.AddCommand(searchCmd)
}
