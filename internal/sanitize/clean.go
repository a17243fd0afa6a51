// Package sanitize scrubs Claude Code tooling markup out of
// transcript text before it is rendered.
package sanitize

import (
	"regexp"
	"strings"
)

// rules run in order. Most wrapped spans vanish outright; captured
// command output leaves a placeholder so the turn still reads.
var rules = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?s)<system-reminder>.*?</system-reminder>`), ""},
	{regexp.MustCompile(`(?s)<local-command-caveat>.*?</local-command-caveat>`), ""},
	{regexp.MustCompile(`(?s)<local-command-stdout>.*?</local-command-stdout>`), "[command output]"},
	{regexp.MustCompile(`(?s)<command-name>.*?</command-name>`), ""},
	{regexp.MustCompile(`(?s)<command-message>.*?</command-message>`), ""},
	{regexp.MustCompile(`(?s)<command-args>.*?</command-args>`), ""},
}

// Clean removes tool-injected markup spans from text and trims the
// surrounding whitespace they leave behind.
func Clean(text string) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return strings.TrimSpace(text)
}
