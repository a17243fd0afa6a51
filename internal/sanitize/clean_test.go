package sanitize

import "testing"

func TestClean_PlainText(t *testing.T) {
	input := "Hello, this is plain text with no markup."
	if got := Clean(input); got != input {
		t.Errorf("Clean(%q) = %q, want unchanged", input, got)
	}
}

func TestClean_Rules(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"system-reminder", "before <system-reminder>noise</system-reminder> after", "before  after"},
		{"local-command-caveat", "<local-command-caveat>caveat text</local-command-caveat>kept", "kept"},
		{"local-command-stdout", "ran it <local-command-stdout>lots of output</local-command-stdout>", "ran it [command output]"},
		{"command-name", "<command-name>/compact</command-name>rest", "rest"},
		{"command-message", "<command-message>compacting</command-message>rest", "rest"},
		{"command-args", "<command-args>--all</command-args>rest", "rest"},
		{"multiline span", "a <system-reminder>line one\nline two\nline three</system-reminder> b", "a  b"},
		{"several spans", "<command-name>/x</command-name><command-message>m</command-message>body", "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClean_KeepsUnknownTags(t *testing.T) {
	tests := []string{
		"<html>page</html>",
		"<div class='x'>content</div>",
		"code like a < b && b > c stays",
	}
	for _, input := range tests {
		if got := Clean(input); got != input {
			t.Errorf("Clean(%q) = %q, want unchanged", input, got)
		}
	}
}

func TestClean_TrimsWhitespace(t *testing.T) {
	if got := Clean("  \n  "); got != "" {
		t.Errorf("Clean whitespace = %q, want empty", got)
	}
	if got := Clean("<system-reminder>all of it</system-reminder>"); got != "" {
		t.Errorf("Clean reminder-only = %q, want empty", got)
	}
	if got := Clean("\n  text  \n"); got != "text" {
		t.Errorf("Clean = %q, want trimmed", got)
	}
}

func TestClean_NonGreedy(t *testing.T) {
	input := "<system-reminder>one</system-reminder>kept<system-reminder>two</system-reminder>"
	if got := Clean(input); got != "kept" {
		t.Errorf("Clean = %q, want %q", got, "kept")
	}
}
