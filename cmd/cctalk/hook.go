package main

import (
	"github.com/spf13/cobra"

	"github.com/zevorn/cctalk/internal/hook"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Hook mode (reads stdin from Claude Code)",
	Long: `Hook reads the JSON payload Claude Code pipes to SessionEnd hooks
and exports that session's transcript. Context clears are ignored.

Register it with: cctalk hook install`,
	RunE: runHook,
}

func runHook(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	event, _ := cmd.Flags().GetString("event")
	return hook.Handle(cfg, event)
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Add the cctalk hook to ~/.claude/settings.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		return hook.Install()
	},
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the cctalk hook from ~/.claude/settings.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		return hook.Uninstall()
	},
}

func init() {
	hookCmd.Flags().String("event", "", "override the hook event name from stdin")

	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)
	rootCmd.AddCommand(hookCmd)
}
