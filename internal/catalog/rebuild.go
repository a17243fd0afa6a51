package catalog

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/zevorn/cctalk/internal/discover"
	"github.com/zevorn/cctalk/internal/transcript"
)

// RebuildSummary holds counts from a catalog rebuild.
type RebuildSummary struct {
	Indexed int
	Skipped int
	Failed  int
}

// Rebuild repopulates the catalog from every transcript in sourceDir,
// replacing whatever was indexed before. Sessions with no renderable
// turns are skipped; per-transcript failures are reported and do not
// stop the rebuild.
func (c *Catalog) Rebuild(ctx context.Context, sourceDir string, w io.Writer) (RebuildSummary, error) {
	files, err := discover.Discover(sourceDir)
	if err != nil {
		return RebuildSummary{}, err
	}

	if _, err := c.db.ExecContext(ctx, `DELETE FROM turns`); err != nil {
		return RebuildSummary{}, fmt.Errorf("clearing turns: %w", err)
	}
	if _, err := c.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return RebuildSummary{}, fmt.Errorf("clearing sessions: %w", err)
	}

	var summary RebuildSummary

	for _, f := range files {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		entries, err := transcript.ParseFile(f.Path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", f.SessionID, err)
			summary.Failed++
			continue
		}

		conv := transcript.Extract(entries)
		if len(conv.Turns) == 0 {
			fmt.Fprintf(w, "skipped %s\n", f.SessionID)
			summary.Skipped++
			continue
		}

		meta := transcript.Meta(entries)
		if err := c.indexSession(ctx, f, conv, meta); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", f.SessionID, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "indexed %s (%d turns)\n", transcript.ShortID(f.SessionID), len(conv.Turns))
		summary.Indexed++
	}

	fmt.Fprintf(w, "\nindexed: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Skipped, summary.Failed)

	return summary, nil
}

func (c *Catalog) indexSession(ctx context.Context, f discover.TranscriptFile, conv *transcript.Conversation, meta transcript.SessionMeta) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, short_id, date, first_timestamp, preview, turns,
			tool_uses, input_tokens, output_tokens, model, git_branch, cwd,
			file_path, file_mtime, file_size)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.SessionID, transcript.ShortID(f.SessionID), conv.Date(),
		conv.FirstTimestamp, conv.Preview, len(conv.Turns),
		meta.ToolUses, meta.InputTokens, meta.OutputTokens,
		meta.Model, meta.GitBranch, meta.CWD,
		f.Path, f.ModTime.UTC().Format(time.RFC3339Nano), f.Size,
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO turns (session_id, seq, role, timestamp, text) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range conv.Turns {
		if _, err := stmt.ExecContext(ctx, f.SessionID, i+1, t.Role, t.Timestamp, t.Text); err != nil {
			return fmt.Errorf("inserting turn %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}
