// Package main is the entry point for the cctalk CLI. Running cctalk
// with no subcommand converts every Claude Code transcript for the
// current project into Markdown; subcommands cover the hook, watcher,
// catalog, and setup surfaces.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zevorn/cctalk/internal/config"
	"github.com/zevorn/cctalk/internal/export"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; bare cctalk runs a batch export.
var rootCmd = &cobra.Command{
	Use:   "cctalk",
	Short: "Convert Claude Code conversation logs to Markdown",
	Long: `cctalk reads the JSONL transcripts Claude Code keeps under
~/.claude/projects and writes each conversation as a readable Markdown
document: user and assistant turns in order, tool calls reduced to
one-line summaries, tool output and thinking dropped.

Without a subcommand it exports every transcript for the current
project. Subcommands add a session-end hook, a live watcher, and a
searchable catalog of past conversations.`,
	SilenceUsage: true,
	RunE:         runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if writeIndex, _ := cmd.Flags().GetBool("index"); writeIndex {
		cfg.Export.WriteIndex = true
	}
	if archiveOn, _ := cmd.Flags().GetBool("archive"); archiveOn {
		cfg.Archive.Enabled = true
	}

	_, err = export.Run(cfg, os.Stdout)
	return err
}

// loadConfig resolves configuration from the --config file (or the
// standard locations) with --source and --dest applied on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	source, _ := cmd.Flags().GetString("source")
	dest, _ := cmd.Flags().GetString("dest")

	return config.Load(cfgPath, config.Overrides{
		SourceDir: source,
		DestDir:   dest,
	})
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/cctalk/config.toml)")
	rootCmd.PersistentFlags().String("source", "", "transcript source directory (default: ~/.claude/projects/<project>)")
	rootCmd.PersistentFlags().String("dest", "", "output directory for Markdown (default: ./talk)")

	rootCmd.Flags().Bool("index", false, "also write an index.md listing exported conversations")
	rootCmd.Flags().Bool("archive", false, "also keep zstd-compressed copies of the transcripts")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
