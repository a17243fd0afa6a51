// Package watch re-exports transcripts as Claude Code appends to
// them, so the Markdown mirror stays current during a session.
package watch

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zevorn/cctalk/internal/config"
	"github.com/zevorn/cctalk/internal/export"
)

// Run watches the source directory until ctx is done. Create and
// write events for the same .jsonl file inside the debounce window
// collapse into a single export, since Claude Code appends line by
// line.
func Run(ctx context.Context, cfg config.Config, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.Export.SourceDir); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.Export.SourceDir, err)
	}

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	fmt.Fprintf(w, "Watching %s\n", cfg.Export.SourceDir)

	var mu sync.Mutex
	pending := make(map[string]*time.Timer)
	defer func() {
		mu.Lock()
		for _, t := range pending {
			t.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".jsonl") {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			schedule(&mu, pending, debounce, event.Name, cfg, w)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("warning: watch: %v", err)
		}
	}
}

// schedule arms (or re-arms) the debounce timer for path.
func schedule(mu *sync.Mutex, pending map[string]*time.Timer, debounce time.Duration, path string, cfg config.Config, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if t, ok := pending[path]; ok {
		t.Stop()
	}
	pending[path] = time.AfterFunc(debounce, func() {
		mu.Lock()
		delete(pending, path)
		mu.Unlock()

		exp, err := export.File(cfg, path)
		if err != nil {
			log.Printf("warning: export %s: %v", filepath.Base(path), err)
			return
		}
		if exp != nil {
			fmt.Fprintf(w, "exported %s\n", exp.Name)
		}
	})
}
