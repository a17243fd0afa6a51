package transcript

// SessionMeta aggregates the per-session metadata recorded in the
// catalog alongside the rendered turns.
type SessionMeta struct {
	CWD          string
	GitBranch    string
	Model        string
	InputTokens  int
	OutputTokens int
	CacheReads   int
	CacheWrites  int
	ToolUses     int
	ToolCounts   map[string]int
}

// Meta walks the parsed entries and collects session metadata.
// String fields take the first non-empty value seen; token counts and
// tool uses accumulate across all assistant messages.
func Meta(entries []Entry) SessionMeta {
	m := SessionMeta{ToolCounts: make(map[string]int)}

	for _, e := range entries {
		if m.CWD == "" && e.CWD != "" {
			m.CWD = e.CWD
		}
		if m.GitBranch == "" && e.GitBranch != "" {
			m.GitBranch = e.GitBranch
		}

		if e.Message == nil || e.Message.Role != "assistant" {
			continue
		}

		// Synthetic models like "<synthetic>" show up on error entries
		if m.Model == "" && e.Message.Model != "" && e.Message.Model[0] != '<' {
			m.Model = e.Message.Model
		}

		if u := e.Message.Usage; u != nil {
			m.InputTokens += u.InputTokens
			m.OutputTokens += u.OutputTokens
			m.CacheReads += u.CacheReadInputTokens
			m.CacheWrites += u.CacheCreationInputTokens
		}

		for _, b := range ContentBlocks(e.Message) {
			if b.Type == "tool_use" {
				m.ToolUses++
				m.ToolCounts[b.Name]++
			}
		}
	}

	return m
}
