package transcript

import (
	"encoding/json"
	"strings"

	"github.com/zevorn/cctalk/internal/sanitize"
)

// previewLen bounds the preview taken from the first user turn.
const previewLen = 100

// Extract turns parsed entries into renderable conversation turns.
// Each entry's text is assembled from its content, scrubbed of
// tooling noise, and dropped entirely when nothing readable remains.
// Timestamp and preview tracking only consider turns that survive.
func Extract(entries []Entry) *Conversation {
	conv := &Conversation{}

	for _, e := range entries {
		role := e.Type
		if e.Message != nil && e.Message.Role != "" {
			role = e.Message.Role
		}

		var text string
		if e.Message != nil {
			text = entryText(e.Message)
		}
		text = sanitize.Clean(text)
		if text == "" {
			continue
		}

		if conv.FirstTimestamp == "" && e.Timestamp != "" {
			conv.FirstTimestamp = e.Timestamp
		}
		if conv.Preview == "" && role == "user" {
			preview := truncate(text, previewLen)
			conv.Preview = strings.ReplaceAll(preview, "\n", " ")
		}

		conv.Turns = append(conv.Turns, Turn{
			Role:      role,
			Text:      text,
			Timestamp: e.Timestamp,
		})
	}

	return conv
}

// entryText flattens message content into displayable text. Text
// blocks pass through, tool_use blocks become one-line summaries, and
// tool_result and thinking blocks are dropped.
func entryText(msg *Message) string {
	switch c := msg.Content.(type) {
	case nil:
		return ""
	case string:
		return c
	case []interface{}:
		var parts []string
		for _, b := range ContentBlocks(msg) {
			switch b.Type {
			case "text":
				parts = append(parts, b.Text)
			case "tool_use":
				parts = append(parts, ToolSummary(b.Name, b.Input))
			}
		}
		return strings.Join(parts, "\n")
	default:
		// Unexpected content shapes render as their JSON literal
		b, err := json.Marshal(c)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
