package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the cctalk config directory path.
// Uses $XDG_CONFIG_HOME/cctalk if set, otherwise ~/.config/cctalk.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cctalk")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cctalk")
}

// WriteDefault writes a starter config.toml for the current project.
// Returns the file path and whether it was created; an existing file
// is left alone.
func WriteDefault() (string, bool, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create config dir: %w", err)
	}

	sourceDir, err := DefaultSourceDir()
	if err != nil {
		return "", false, err
	}

	content := fmt.Sprintf(`[export]
source_dir = %q
dest_dir = "./talk"
write_index = false

[archive]
enabled = false
dir = "" # default: <dest_dir>/.cctalk/archive

[catalog]
path = "" # default: <dest_dir>/.cctalk/catalog.db

[watch]
debounce_ms = 500
`, CompressHome(sourceDir))

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", false, fmt.Errorf("write config: %w", err)
	}

	return path, true, nil
}

// CompressHome replaces $HOME prefix with ~/ for portable config values.
func CompressHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home+"/") {
		return "~/" + path[len(home)+1:]
	}
	if path == home {
		return "~"
	}
	return path
}
