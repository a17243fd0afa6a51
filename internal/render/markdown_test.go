package render

import (
	"strings"
	"testing"
	"time"

	"github.com/zevorn/cctalk/internal/transcript"
)

func TestDocument(t *testing.T) {
	conv := &transcript.Conversation{
		FirstTimestamp: "2026-02-22T10:00:01Z",
		Preview:        "Implement the login page",
		Turns: []transcript.Turn{
			{Role: "user", Text: "Implement the login page", Timestamp: "2026-02-22T10:00:01Z"},
			{Role: "assistant", Text: "I'll implement the login page.", Timestamp: "2026-02-22T10:00:05Z"},
		},
	}

	got := Document("a1b2c3d4-e5f6-7890-abcd-ef0123456789", conv)
	want := `# Conversation a1b2c3d4

- Date: 2026-02-22
- Session: ` + "`a1b2c3d4-e5f6-7890-abcd-ef0123456789`" + `
- Messages: 2

---

## 🧑 User (10:00)

Implement the login page

## 🤖 Assistant (10:00)

I'll implement the login page.

`
	if got != want {
		t.Errorf("Document mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDocument_NoTimestamps(t *testing.T) {
	conv := &transcript.Conversation{
		Turns: []transcript.Turn{
			{Role: "user", Text: "hello"},
			{Role: "assistant", Text: "hi"},
		},
	}

	out := Document("sess", conv)

	if !strings.Contains(out, "- Date: unknown\n") {
		t.Error("missing unknown date")
	}
	if !strings.Contains(out, "## 🧑 User\n\n") {
		t.Error("user heading should carry no time suffix")
	}
	if !strings.Contains(out, "## 🤖 Assistant\n\n") {
		t.Error("assistant heading should carry no time suffix")
	}
}

func TestDocument_NonUserRolesRenderAsAssistant(t *testing.T) {
	conv := &transcript.Conversation{
		Turns: []transcript.Turn{{Role: "system", Text: "note"}},
	}
	out := Document("sess", conv)
	if !strings.Contains(out, "## 🤖 Assistant") {
		t.Error("non-user role should render as assistant")
	}
}

func TestFilename(t *testing.T) {
	mt := time.Date(2025, 6, 14, 23, 30, 0, 0, time.Local)
	got := Filename("a1b2c3d4-e5f6-7890-abcd-ef0123456789", mt)
	if got != "20250614-a1b2c3d4.md" {
		t.Errorf("Filename = %q, want %q", got, "20250614-a1b2c3d4.md")
	}
}

func TestTimeSuffix(t *testing.T) {
	tests := []struct {
		name string
		ts   string
		want string
	}{
		{"rfc3339", "2026-02-22T10:05:01Z", " (10:05)"},
		{"fractional seconds", "2026-02-22T10:05:01.123Z", " (10:05)"},
		{"zone preserved", "2026-02-22T18:45:00+05:30", " (18:45)"},
		{"bare datetime", "2026-02-22T09:30:00", " (09:30)"},
		{"bare date", "2026-02-22", " (00:00)"},
		{"garbage", "not-a-time", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeSuffix(tt.ts); got != tt.want {
				t.Errorf("timeSuffix(%q) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	rows := []IndexRow{
		{Name: "20260222-a1b2c3d4.md", Date: "2026-02-22", Messages: 4, Preview: "Implement the login page"},
		{Name: "20260223-e5f6a7b8.md", Date: "2026-02-23", Messages: 2, Preview: "fix a | b parsing"},
	}

	out := Index(rows)

	if !strings.HasPrefix(out, "# Conversations\n\n| Date | Conversation | Messages | Preview |\n") {
		t.Errorf("bad header:\n%s", out)
	}
	if !strings.Contains(out, "| 2026-02-22 | [20260222-a1b2c3d4](20260222-a1b2c3d4.md) | 4 | Implement the login page |") {
		t.Error("missing first row")
	}
	if !strings.Contains(out, `fix a \| b parsing`) {
		t.Error("pipe in preview not escaped")
	}
}
