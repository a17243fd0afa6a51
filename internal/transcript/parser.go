package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFile reads and parses a Claude Code JSONL transcript file.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a JSONL transcript from a reader, keeping only user and
// assistant entries in file order.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024) // 10MB max line

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			// Skip unparseable lines rather than failing the whole transcript
			continue
		}

		// Summaries, snapshots and other meta records are not conversation
		if entry.Type != "user" && entry.Type != "assistant" {
			continue
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}

	return entries, nil
}

// ContentBlocks extracts typed content blocks from a message.
// Returns nil for plain string content; callers handle that case first.
func ContentBlocks(msg *Message) []ContentBlock {
	if msg == nil {
		return nil
	}

	raw, ok := msg.Content.([]interface{})
	if !ok {
		return nil
	}

	var blocks []ContentBlock
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		b, err := json.Marshal(m)
		if err != nil {
			continue
		}
		var block ContentBlock
		if err := json.Unmarshal(b, &block); err != nil {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}
