// Package export drives the transcript-to-Markdown conversion: batch
// runs over a source directory and single-file runs for the hook and
// watcher paths.
package export

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/zevorn/cctalk/internal/archive"
	"github.com/zevorn/cctalk/internal/config"
	"github.com/zevorn/cctalk/internal/discover"
	"github.com/zevorn/cctalk/internal/render"
	"github.com/zevorn/cctalk/internal/transcript"
)

// Result summarizes a batch export.
type Result struct {
	Found    int
	Exported int
	Skipped  int
}

// Exported describes one written conversation document.
type Exported struct {
	SessionID string
	Name      string // output filename
	Path      string // full output path
	Size      int64  // written document bytes
	Conv      *transcript.Conversation
}

// Run exports every transcript in the configured source directory,
// reporting progress to w. Conversations with no renderable turns are
// skipped; the progress numbering still counts them, so gaps in the
// printed sequence mean empty sessions.
func Run(cfg config.Config, w io.Writer) (Result, error) {
	files, err := discover.Discover(cfg.Export.SourceDir)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Found %d conversation files\n", len(files))

	if err := os.MkdirAll(cfg.Export.DestDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create dest dir: %w", err)
	}

	res := Result{Found: len(files)}
	var rows []render.IndexRow

	for i, f := range files {
		exp, err := One(f, cfg.Export.DestDir)
		if err != nil {
			return res, err
		}
		if exp == nil {
			res.Skipped++
			continue
		}
		res.Exported++

		fmt.Fprintf(w, "  [%d] %s (%.0f KB)\n", i+1, exp.Name, float64(exp.Size)/1024)
		archiveIfEnabled(cfg, f)

		rows = append(rows, render.IndexRow{
			Name:     exp.Name,
			Date:     exp.Conv.Date(),
			Messages: len(exp.Conv.Turns),
			Preview:  exp.Conv.Preview,
		})
	}

	if cfg.Export.WriteIndex {
		indexPath := filepath.Join(cfg.Export.DestDir, "index.md")
		if err := os.WriteFile(indexPath, []byte(render.Index(rows)), 0o644); err != nil {
			return res, fmt.Errorf("write index: %w", err)
		}
	}

	fmt.Fprintf(w, "\nExported %d conversations to %s\n", res.Exported, cfg.Export.DestDir)
	return res, nil
}

// One converts a single transcript into a Markdown document under
// destDir. Returns nil without error when nothing renderable remains
// after extraction.
func One(f discover.TranscriptFile, destDir string) (*Exported, error) {
	entries, err := transcript.ParseFile(f.Path)
	if err != nil {
		return nil, err
	}

	conv := transcript.Extract(entries)
	if len(conv.Turns) == 0 {
		return nil, nil
	}

	name := render.Filename(f.SessionID, f.ModTime)
	path := filepath.Join(destDir, name)
	doc := render.Document(f.SessionID, conv)

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", name, err)
	}

	return &Exported{
		SessionID: f.SessionID,
		Name:      name,
		Path:      path,
		Size:      int64(len(doc)),
		Conv:      conv,
	}, nil
}

// File exports one transcript by path, used by the hook and watcher.
// The destination directory is created on demand.
func File(cfg config.Config, path string) (*Exported, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat transcript: %w", err)
	}

	if err := os.MkdirAll(cfg.Export.DestDir, 0o755); err != nil {
		return nil, fmt.Errorf("create dest dir: %w", err)
	}

	f := discover.TranscriptFile{
		Path:      path,
		SessionID: sessionIDFromPath(path),
		ModTime:   info.ModTime(),
		Size:      info.Size(),
	}

	exp, err := One(f, cfg.Export.DestDir)
	if err != nil {
		return nil, err
	}
	if exp != nil {
		archiveIfEnabled(cfg, f)
	}
	return exp, nil
}

// archiveIfEnabled stores a compressed copy of an exported transcript.
// Archive trouble is logged, never fatal.
func archiveIfEnabled(cfg config.Config, f discover.TranscriptFile) {
	if !cfg.Archive.Enabled {
		return
	}
	if _, err := archive.Store(f.Path, f.SessionID, cfg.Archive.Dir); err != nil {
		log.Printf("warning: archive %s: %v", f.SessionID, err)
	}
}

func sessionIDFromPath(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != "" {
		return base[:len(base)-len(ext)]
	}
	return base
}
