package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all cctalk configuration.
type Config struct {
	Export  ExportConfig  `toml:"export"`
	Archive ArchiveConfig `toml:"archive"`
	Catalog CatalogConfig `toml:"catalog"`
	Watch   WatchConfig   `toml:"watch"`
}

type ExportConfig struct {
	SourceDir  string `toml:"source_dir"`
	DestDir    string `toml:"dest_dir"`
	WriteIndex bool   `toml:"write_index"`
}

type ArchiveConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type CatalogConfig struct {
	Path string `toml:"path"`
}

type WatchConfig struct {
	DebounceMS int `toml:"debounce_ms"`
}

// Overrides carries command-line values that win over the file.
type Overrides struct {
	SourceDir string
	DestDir   string
}

// DefaultConfig returns config with sensible defaults. The source
// directory stays empty here and is derived from the working
// directory at load time.
func DefaultConfig() Config {
	return Config{
		Export: ExportConfig{
			DestDir: "./talk",
		},
		Watch: WatchConfig{
			DebounceMS: 500,
		},
	}
}

// Load reads config from path if given, otherwise from the standard
// locations, falling back to defaults. Overrides are applied last,
// then derived paths are filled in.
func Load(path string, ov Overrides) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		for _, p := range configPaths() {
			if _, err := os.Stat(p); err == nil {
				if _, err := toml.DecodeFile(p, &cfg); err != nil {
					return cfg, fmt.Errorf("parse config %s: %w", p, err)
				}
				break
			}
		}
	}

	if ov.SourceDir != "" {
		cfg.Export.SourceDir = ov.SourceDir
	}
	if ov.DestDir != "" {
		cfg.Export.DestDir = ov.DestDir
	}

	if err := cfg.resolve(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolve expands ~ in configured paths and fills the values derived
// from other settings: the per-project source default, the archive
// and catalog locations under the destination, and the watch debounce.
func (c *Config) resolve() error {
	if c.Export.SourceDir == "" {
		dir, err := DefaultSourceDir()
		if err != nil {
			return err
		}
		c.Export.SourceDir = dir
	}
	if c.Export.DestDir == "" {
		c.Export.DestDir = "./talk"
	}

	c.Export.SourceDir = expandHome(c.Export.SourceDir)
	c.Export.DestDir = expandHome(c.Export.DestDir)

	if c.Archive.Dir == "" {
		c.Archive.Dir = filepath.Join(c.Export.DestDir, ".cctalk", "archive")
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = filepath.Join(c.Export.DestDir, ".cctalk", "catalog.db")
	}
	c.Archive.Dir = expandHome(c.Archive.Dir)
	c.Catalog.Path = expandHome(c.Catalog.Path)

	if c.Watch.DebounceMS <= 0 {
		c.Watch.DebounceMS = 500
	}

	return nil
}

// DefaultSourceDir returns the Claude Code transcript directory for
// the current working directory's project.
func DefaultSourceDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working dir: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home dir: %w", err)
	}
	return filepath.Join(home, ".claude", "projects", EncodeProjectPath(cwd)), nil
}

// EncodeProjectPath converts an absolute project path to the directory
// name Claude Code uses under ~/.claude/projects. Separators and dots
// both become dashes, so /home/user/my.app is -home-user-my-app.
func EncodeProjectPath(path string) string {
	return strings.NewReplacer("/", "-", ".", "-").Replace(path)
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "cctalk", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "cctalk", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
