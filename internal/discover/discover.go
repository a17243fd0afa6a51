package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// TranscriptFile represents a discovered transcript on disk.
type TranscriptFile struct {
	Path      string
	SessionID string // filename without the .jsonl suffix
	ModTime   time.Time
	Size      int64
}

// Discover lists the .jsonl transcripts directly inside dir, sorted by
// modification time (oldest first). Subdirectories are not descended
// into. Files that share a modification time stay in name order. A
// missing or unreadable source directory is an error.
func Discover(dir string) ([]TranscriptFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source dir: %w", err)
	}

	var results []TranscriptFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue // deleted between listing and stat
		}

		results = append(results, TranscriptFile{
			Path:      filepath.Join(dir, e.Name()),
			SessionID: strings.TrimSuffix(e.Name(), ".jsonl"),
			ModTime:   info.ModTime(),
			Size:      info.Size(),
		})
	}

	// ReadDir returns names sorted, so a stable sort keeps that order
	// as the tiebreak for equal mtimes.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ModTime.Before(results[j].ModTime)
	})

	return results, nil
}
