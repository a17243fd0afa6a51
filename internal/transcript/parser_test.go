package transcript

import (
	"strings"
	"testing"
)

const testTranscript = `{"type":"file-history-snapshot","uuid":"aaa","timestamp":"2026-02-22T10:00:00Z","sessionId":"test-session","cwd":"/home/user/myproject","gitBranch":"main"}
{"type":"user","uuid":"bbb","timestamp":"2026-02-22T10:00:01Z","sessionId":"test-session","cwd":"/home/user/myproject","gitBranch":"main","message":{"role":"user","content":"Implement the login page"}}
{"type":"assistant","uuid":"ccc","timestamp":"2026-02-22T10:00:05Z","sessionId":"test-session","cwd":"/home/user/myproject","gitBranch":"main","message":{"role":"assistant","model":"claude-opus-4-6","content":[{"type":"thinking","thinking":"Let me think about this..."},{"type":"text","text":"I'll implement the login page."},{"type":"tool_use","id":"toolu_1","name":"Write","input":{"file_path":"/home/user/myproject/src/login.tsx","content":"export default function Login() {}"}}],"usage":{"input_tokens":100,"output_tokens":50,"cache_creation_input_tokens":500,"cache_read_input_tokens":200}}}
{"type":"user","uuid":"ddd","timestamp":"2026-02-22T10:00:10Z","sessionId":"test-session","cwd":"/home/user/myproject","gitBranch":"main","message":{"role":"user","content":[{"type":"tool_result","tool_use_id":"toolu_1","content":"File written successfully"}]},"toolUseResult":{"stdout":"File written successfully"}}
{"type":"progress","uuid":"eee","timestamp":"2026-02-22T10:00:11Z"}
{"type":"assistant","uuid":"fff","timestamp":"2026-02-22T10:00:15Z","sessionId":"test-session","cwd":"/home/user/myproject","gitBranch":"main","message":{"role":"assistant","model":"claude-opus-4-6","content":[{"type":"text","text":"The login page has been created."}],"usage":{"input_tokens":80,"output_tokens":30,"cache_creation_input_tokens":0,"cache_read_input_tokens":600}}}
{"type":"user","uuid":"ggg","timestamp":"2026-02-22T10:01:00Z","sessionId":"test-session","cwd":"/home/user/myproject","gitBranch":"main","message":{"role":"user","content":"Thanks!"}}`

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(testTranscript))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Should skip file-history-snapshot and progress entries
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}

	if entries[0].Type != "user" {
		t.Errorf("first entry type = %q, want %q", entries[0].Type, "user")
	}
	if entries[0].Timestamp != "2026-02-22T10:00:01Z" {
		t.Errorf("timestamp = %q, want %q", entries[0].Timestamp, "2026-02-22T10:00:01Z")
	}
	if entries[1].Message == nil || entries[1].Message.Model != "claude-opus-4-6" {
		t.Errorf("second entry model missing, got %+v", entries[1].Message)
	}
}

func TestParse_SkipsGarbage(t *testing.T) {
	input := `not json at all
{"type":"user","message":{"role":"user","content":"hi"}}
{"broken json
`
	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestParse_MalformedTimestampKeepsEntry(t *testing.T) {
	input := `{"type":"user","timestamp":"not-a-time","message":{"role":"user","content":"still here"}}`
	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Timestamp != "not-a-time" {
		t.Errorf("timestamp = %q, want raw value preserved", entries[0].Timestamp)
	}
}

func TestContentBlocks_StringContent(t *testing.T) {
	msg := &Message{Content: "hello world"}
	if blocks := ContentBlocks(msg); blocks != nil {
		t.Errorf("expected nil for string content, got %v", blocks)
	}
}

func TestContentBlocks_Array(t *testing.T) {
	entries, _ := Parse(strings.NewReader(testTranscript))

	blocks := ContentBlocks(entries[1].Message)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[0].Type != "thinking" || blocks[1].Type != "text" || blocks[2].Type != "tool_use" {
		t.Errorf("block types = %q %q %q", blocks[0].Type, blocks[1].Type, blocks[2].Type)
	}
	if blocks[2].Name != "Write" {
		t.Errorf("tool name = %q, want %q", blocks[2].Name, "Write")
	}
}

func TestMeta(t *testing.T) {
	entries, _ := Parse(strings.NewReader(testTranscript))
	m := Meta(entries)

	if m.Model != "claude-opus-4-6" {
		t.Errorf("model = %q, want %q", m.Model, "claude-opus-4-6")
	}
	if m.GitBranch != "main" {
		t.Errorf("branch = %q, want %q", m.GitBranch, "main")
	}
	if m.CWD != "/home/user/myproject" {
		t.Errorf("cwd = %q, want %q", m.CWD, "/home/user/myproject")
	}
	if m.InputTokens != 180 {
		t.Errorf("input_tokens = %d, want 180", m.InputTokens)
	}
	if m.OutputTokens != 80 {
		t.Errorf("output_tokens = %d, want 80", m.OutputTokens)
	}
	if m.CacheReads != 800 {
		t.Errorf("cache_reads = %d, want 800", m.CacheReads)
	}
	if m.CacheWrites != 500 {
		t.Errorf("cache_writes = %d, want 500", m.CacheWrites)
	}
	if m.ToolUses != 1 {
		t.Errorf("tool_uses = %d, want 1", m.ToolUses)
	}
	if m.ToolCounts["Write"] != 1 {
		t.Errorf("tool_counts[Write] = %d, want 1", m.ToolCounts["Write"])
	}
}

func TestMeta_SkipsSyntheticModel(t *testing.T) {
	input := `{"type":"assistant","message":{"role":"assistant","model":"<synthetic>","content":"error"}}
{"type":"assistant","message":{"role":"assistant","model":"claude-sonnet-4-6","content":"real"}}`
	entries, _ := Parse(strings.NewReader(input))
	m := Meta(entries)
	if m.Model != "claude-sonnet-4-6" {
		t.Errorf("model = %q, want %q", m.Model, "claude-sonnet-4-6")
	}
}
