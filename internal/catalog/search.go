package catalog

import (
	"context"
	"fmt"
)

// Hit is one full-text match inside an indexed conversation.
type Hit struct {
	SessionID string
	ShortID   string
	Date      string
	Seq       int
	Role      string
	Snippet   string
}

// Search runs an FTS5 query over indexed turns and returns up to limit
// hits ranked by relevance. Matched terms are bracketed in the snippet.
func (c *Catalog) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT t.session_id, s.short_id, s.date, t.seq, t.role,
			snippet(turns_fts, 0, '[', ']', '...', 12)
		FROM turns_fts
		JOIN turns t ON t.rowid = turns_fts.rowid
		JOIN sessions s ON s.id = t.session_id
		WHERE turns_fts MATCH ?
		ORDER BY turns_fts.rank
		LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.SessionID, &h.ShortID, &h.Date, &h.Seq, &h.Role, &h.Snippet); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		hits = append(hits, h)
	}

	return hits, rows.Err()
}
