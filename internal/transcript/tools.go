package transcript

import "fmt"

// maxCommandLen bounds how much of a Bash command appears in a summary.
const maxCommandLen = 120

type toolFormatter func(name string, input map[string]interface{}) string

var toolFormatters = map[string]toolFormatter{
	"Write": fileTool,
	"Edit":  fileTool,
	"Read":  fileTool,
	"Bash":  bashTool,
	"Glob":  patternTool,
	"Grep":  patternTool,
}

// ToolSummary renders a one-line placeholder for a tool_use block.
// Known tools include their most telling input field; everything else
// falls back to the bare tool name.
func ToolSummary(name string, input interface{}) string {
	m, _ := input.(map[string]interface{})
	if f, ok := toolFormatters[name]; ok {
		return f(name, m)
	}
	return fmt.Sprintf("[Tool: %s]", name)
}

func fileTool(name string, input map[string]interface{}) string {
	return fmt.Sprintf("[Tool: %s → %s]", name, stringField(input, "file_path"))
}

func bashTool(name string, input map[string]interface{}) string {
	cmd := truncate(stringField(input, "command"), maxCommandLen)
	return fmt.Sprintf("[Tool: Bash → `%s`]", cmd)
}

func patternTool(name string, input map[string]interface{}) string {
	return fmt.Sprintf("[Tool: %s → %s]", name, stringField(input, "pattern"))
}

func stringField(input map[string]interface{}, key string) string {
	if input == nil {
		return ""
	}
	s, _ := input[key].(string)
	return s
}

// truncate cuts s to at most n runes. No ellipsis is added.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
