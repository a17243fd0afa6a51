package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Stats summarizes the indexed sessions.
type Stats struct {
	Sessions     int
	Turns        int
	ToolUses     int
	InputTokens  int
	OutputTokens int
	FirstDate    string
	LastDate     string
	Models       []ModelCount
	Monthly      []MonthCount
}

// ModelCount is the number of sessions a model appears in.
type ModelCount struct {
	Name     string
	Sessions int
}

// MonthCount aggregates one calendar month of sessions.
type MonthCount struct {
	Month        string // YYYY-MM
	Sessions     int
	InputTokens  int
	OutputTokens int
}

// ReadStats aggregates catalog-wide totals.
func (c *Catalog) ReadStats(ctx context.Context) (Stats, error) {
	var s Stats

	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(turns), 0), COALESCE(SUM(tool_uses), 0),
			COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		FROM sessions`,
	).Scan(&s.Sessions, &s.Turns, &s.ToolUses, &s.InputTokens, &s.OutputTokens)
	if err != nil {
		return s, fmt.Errorf("reading totals: %w", err)
	}

	err = c.db.QueryRowContext(ctx,
		`SELECT COALESCE(MIN(date), ''), COALESCE(MAX(date), '')
		FROM sessions WHERE date != 'unknown'`,
	).Scan(&s.FirstDate, &s.LastDate)
	if err != nil {
		return s, fmt.Errorf("reading date range: %w", err)
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT model, COUNT(*) FROM sessions WHERE model != ''
		GROUP BY model ORDER BY COUNT(*) DESC, model`,
	)
	if err != nil {
		return s, fmt.Errorf("reading models: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m ModelCount
		if err := rows.Scan(&m.Name, &m.Sessions); err != nil {
			return s, fmt.Errorf("scanning model row: %w", err)
		}
		s.Models = append(s.Models, m)
	}
	if err := rows.Err(); err != nil {
		return s, err
	}

	// Six most recent months of activity
	monthRows, err := c.db.QueryContext(ctx,
		`SELECT substr(date, 1, 7), COUNT(*),
			COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		FROM sessions WHERE date != 'unknown'
		GROUP BY substr(date, 1, 7)
		ORDER BY substr(date, 1, 7) DESC
		LIMIT 6`,
	)
	if err != nil {
		return s, fmt.Errorf("reading monthly activity: %w", err)
	}
	defer monthRows.Close()

	for monthRows.Next() {
		var m MonthCount
		if err := monthRows.Scan(&m.Month, &m.Sessions, &m.InputTokens, &m.OutputTokens); err != nil {
			return s, fmt.Errorf("scanning month row: %w", err)
		}
		s.Monthly = append(s.Monthly, m)
	}

	return s, monthRows.Err()
}

// Format renders stats as aligned terminal output.
func (s Stats) Format() string {
	if s.Sessions == 0 {
		return "cctalk stats\n\n  No sessions in catalog. Run `cctalk index` first.\n"
	}

	var b strings.Builder

	b.WriteString("cctalk stats\n")

	b.WriteString("\nOverview\n")
	fmt.Fprintf(&b, "  %-20s %s\n", "sessions", formatInt(s.Sessions))
	fmt.Fprintf(&b, "  %-20s %s\n", "turns", formatInt(s.Turns))
	fmt.Fprintf(&b, "  %-20s %s\n", "tool uses", formatInt(s.ToolUses))
	fmt.Fprintf(&b, "  %-20s %s in / %s out\n", "total tokens",
		formatTokens(s.InputTokens), formatTokens(s.OutputTokens))
	if s.FirstDate != "" {
		fmt.Fprintf(&b, "  %-20s %s\n", "first session", s.FirstDate)
		fmt.Fprintf(&b, "  %-20s %s\n", "last session", s.LastDate)
	}

	if len(s.Models) > 0 {
		b.WriteString("\nModels\n")
		for _, m := range s.Models {
			fmt.Fprintf(&b, "  %-24s %3d sessions\n", m.Name, m.Sessions)
		}
	}

	if len(s.Monthly) > 0 {
		b.WriteString("\nMonthly Trend\n")
		for _, m := range s.Monthly {
			fmt.Fprintf(&b, "  %-12s %3d sessions   %6s in / %6s out\n",
				m.Month, m.Sessions, formatTokens(m.InputTokens), formatTokens(m.OutputTokens))
		}
	}

	return b.String()
}

// formatTokens formats a token count for display.
// <10K: plain with commas, >=10K: X.XK, >=1M: X.XM
func formatTokens(n int) string {
	if n < 0 {
		return "0"
	}
	if n >= 1_000_000 {
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	}
	if n >= 10_000 {
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	}
	return formatInt(n)
}

// formatInt formats an integer with comma separators.
func formatInt(n int) string {
	if n < 0 {
		return "0"
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
