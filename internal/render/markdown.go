// Package render turns extracted conversations into Markdown
// documents and names the files they land in.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/zevorn/cctalk/internal/transcript"
)

// timeLayouts are tried in order when parsing a turn timestamp for
// the heading suffix. Transcripts normally carry RFC 3339 with
// fractional seconds, which the first layout accepts.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Document renders a conversation as a Markdown document: a title with
// the short session ID, a metadata list, then one section per turn.
func Document(sessionID string, conv *transcript.Conversation) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Conversation %s\n\n", transcript.ShortID(sessionID)))
	b.WriteString(fmt.Sprintf("- Date: %s\n", conv.Date()))
	b.WriteString(fmt.Sprintf("- Session: `%s`\n", sessionID))
	b.WriteString(fmt.Sprintf("- Messages: %d\n\n", len(conv.Turns)))
	b.WriteString("---\n\n")

	for _, t := range conv.Turns {
		b.WriteString(fmt.Sprintf("## %s%s\n\n", roleHeading(t.Role), timeSuffix(t.Timestamp)))
		b.WriteString(t.Text)
		b.WriteString("\n\n")
	}

	return b.String()
}

// Filename returns the output name for a conversation document:
// the transcript's local modification date followed by the short
// session ID, e.g. 20250614-a1b2c3d4.md.
func Filename(sessionID string, modTime time.Time) string {
	return fmt.Sprintf("%s-%s.md", modTime.Local().Format("20060102"), transcript.ShortID(sessionID))
}

// roleHeading maps a turn role to its section heading. Anything that
// is not a user turn renders as the assistant.
func roleHeading(role string) string {
	if role == "user" {
		return "🧑 User"
	}
	return "🤖 Assistant"
}

// timeSuffix renders " (HH:MM)" for a parseable timestamp and nothing
// otherwise. The time keeps the zone the timestamp carried.
func timeSuffix(ts string) string {
	if ts == "" {
		return ""
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return fmt.Sprintf(" (%s)", t.Format("15:04"))
		}
	}
	return ""
}
