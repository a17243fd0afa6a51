package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zevorn/cctalk/internal/config"
)

// Status represents the outcome of a single check.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Report aggregates all check results.
type Report struct {
	Results []Result
}

// HasFailures returns true if any result has Fail status.
func (r Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

// Format returns the human-readable report string.
func (r Report) Format() string {
	if len(r.Results) == 0 {
		return "cctalk check\n\n  no checks ran\n"
	}

	// Find max name length for alignment.
	maxName := 0
	for _, res := range r.Results {
		if len(res.Name) > maxName {
			maxName = len(res.Name)
		}
	}

	var b strings.Builder
	b.WriteString("cctalk check\n\n")

	var passed, warnings, failures int
	for _, res := range r.Results {
		switch res.Status {
		case Pass:
			passed++
		case Warn:
			warnings++
		case Fail:
			failures++
		}
		fmt.Fprintf(&b, "  %-4s  %-*s  %s\n", res.Status, maxName, res.Name, res.Detail)
	}

	fmt.Fprintf(&b, "\n%d passed, %d warning, %d failure\n", passed, warnings, failures)
	return b.String()
}

// CheckConfig reports the resolved config path. Always passes; broken TOML
// is caught by loadConfig before we get here.
func CheckConfig() Result {
	cfgPath := filepath.Join(config.ConfigDir(), "config.toml")
	return Result{
		Name:   "config",
		Status: Pass,
		Detail: config.CompressHome(cfgPath),
	}
}

// CheckSource checks whether the transcript source directory exists
// and reports how many transcripts it holds.
func CheckSource(dir string) Result {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return Result{Name: "source", Status: Fail, Detail: config.CompressHome(dir) + " not found"}
	}
	n := countFiles(dir, ".jsonl")
	return Result{
		Name:   "source",
		Status: Pass,
		Detail: fmt.Sprintf("%s (%d transcripts)", config.CompressHome(dir), n),
	}
}

// CheckDest checks whether the export destination exists and reports
// how many documents it holds.
func CheckDest(dir string) Result {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return Result{Name: "dest", Status: Warn, Detail: config.CompressHome(dir) + " not created yet (run cctalk)"}
	}
	n := countFiles(dir, ".md")
	return Result{
		Name:   "dest",
		Status: Pass,
		Detail: fmt.Sprintf("%s (%d documents)", config.CompressHome(dir), n),
	}
}

// CheckArchive checks the archive directory when archiving is enabled.
func CheckArchive(acfg config.ArchiveConfig) Result {
	if !acfg.Enabled {
		return Result{Name: "archive", Status: Pass, Detail: "disabled"}
	}
	if info, err := os.Stat(acfg.Dir); err != nil || !info.IsDir() {
		return Result{Name: "archive", Status: Warn, Detail: config.CompressHome(acfg.Dir) + " not created yet"}
	}
	n := countFiles(acfg.Dir, ".zst")
	return Result{
		Name:   "archive",
		Status: Pass,
		Detail: fmt.Sprintf("%s (%d archives)", config.CompressHome(acfg.Dir), n),
	}
}

// CheckCatalog checks whether the search catalog exists. The catalog
// is only stat'ed, never opened, so the check has no side effects.
func CheckCatalog(path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: "catalog", Status: Warn, Detail: config.CompressHome(path) + " not found (run cctalk index)"}
	}
	return Result{
		Name:   "catalog",
		Status: Pass,
		Detail: fmt.Sprintf("%s (%.0f KB)", config.CompressHome(path), float64(info.Size())/1024),
	}
}

// CheckHook checks whether "cctalk hook" is configured in ~/.claude/settings.json.
func CheckHook() Result {
	home, err := os.UserHomeDir()
	if err != nil {
		return Result{Name: "hook", Status: Warn, Detail: "cannot determine home directory"}
	}
	path := filepath.Join(home, ".claude", "settings.json")
	return checkHookFile(path)
}

func checkHookFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Name: "hook", Status: Warn, Detail: config.CompressHome(path) + " not found"}
	}
	if strings.Contains(string(data), "cctalk hook") {
		return Result{Name: "hook", Status: Pass, Detail: "cctalk hook found in " + config.CompressHome(path)}
	}
	return Result{Name: "hook", Status: Warn, Detail: "cctalk hook not found in " + config.CompressHome(path)}
}

// countFiles counts entries in dir with the given suffix. Like
// discovery, it does not descend into subdirectories.
func countFiles(dir, suffix string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			count++
		}
	}
	return count
}

// Run executes all checks against the given config and returns a report.
func Run(cfg config.Config) Report {
	var results []Result

	results = append(results, CheckConfig())
	results = append(results, CheckSource(cfg.Export.SourceDir))
	results = append(results, CheckDest(cfg.Export.DestDir))
	results = append(results, CheckArchive(cfg.Archive))
	results = append(results, CheckCatalog(cfg.Catalog.Path))
	results = append(results, CheckHook())

	return Report{Results: results}
}
