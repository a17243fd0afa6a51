package render

import (
	"fmt"
	"strings"
)

// IndexRow is one exported conversation's line in the index table.
type IndexRow struct {
	Name     string // output filename, e.g. 20250614-a1b2c3d4.md
	Date     string
	Messages int
	Preview  string
}

// Index renders the optional index.md listing every exported
// conversation in export order.
func Index(rows []IndexRow) string {
	var b strings.Builder

	b.WriteString("# Conversations\n\n")
	b.WriteString("| Date | Conversation | Messages | Preview |\n")
	b.WriteString("|------|--------------|----------|--------|\n")

	for _, r := range rows {
		name := strings.TrimSuffix(r.Name, ".md")
		b.WriteString(fmt.Sprintf("| %s | [%s](%s) | %d | %s |\n",
			r.Date, name, r.Name, r.Messages, escapeCell(r.Preview)))
	}

	return b.String()
}

// escapeCell keeps preview text from breaking the table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
