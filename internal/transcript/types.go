package transcript

// Entry represents a single line in a Claude Code JSONL transcript.
// Timestamp stays a raw string: a malformed value must not sink the
// whole record, and rendering only ever slices or parses it lazily.
type Entry struct {
	Type       string `json:"type"`
	UUID       string `json:"uuid"`
	ParentUUID string `json:"parentUuid"`
	SessionID  string `json:"sessionId"`
	Timestamp  string `json:"timestamp"`
	CWD        string `json:"cwd"`
	Version    string `json:"version"`
	GitBranch  string `json:"gitBranch"`

	Message *Message `json:"message,omitempty"`
}

// Message is the inner message object on user/assistant entries.
type Message struct {
	Role    string      `json:"role"`
	Model   string      `json:"model,omitempty"`
	ID      string      `json:"id,omitempty"`
	Content interface{} `json:"content"` // string or []ContentBlock
	Usage   *Usage      `json:"usage,omitempty"`
}

// ContentBlock represents one block in a content array.
type ContentBlock struct {
	Type      string      `json:"type"`
	Text      string      `json:"text,omitempty"`
	Thinking  string      `json:"thinking,omitempty"`
	ID        string      `json:"id,omitempty"`         // tool_use id
	Name      string      `json:"name,omitempty"`       // tool name
	Input     interface{} `json:"input,omitempty"`      // tool input
	ToolUseID string      `json:"tool_use_id,omitempty"` // tool_result
	Content   interface{} `json:"content,omitempty"`     // tool_result content
	IsError   bool        `json:"is_error,omitempty"`
}

// Usage tracks token consumption for an assistant message.
type Usage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
}

// Turn is one rendered conversational exchange: the cleaned text of a
// user or assistant message that survived extraction.
type Turn struct {
	Role      string
	Text      string
	Timestamp string
}

// Conversation holds the renderable turns of one transcript plus the
// tracking values collected while extracting them. FirstTimestamp is
// the first non-empty timestamp among kept turns; Preview is the start
// of the first kept user turn with newlines flattened to spaces.
type Conversation struct {
	Turns          []Turn
	FirstTimestamp string
	Preview        string
}

// Date returns the calendar-date prefix of the first kept timestamp,
// or "unknown" when no kept turn carried one.
func (c *Conversation) Date() string {
	if c.FirstTimestamp == "" {
		return "unknown"
	}
	if len(c.FirstTimestamp) > 10 {
		return c.FirstTimestamp[:10]
	}
	return c.FirstTimestamp
}

// ShortID returns the first 8 characters of a session ID, used in
// document titles, output filenames, and progress lines.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
