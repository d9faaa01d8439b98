// Package detector provides command classification for Claude Code hooks.
package detector

import "regexp"

var (
	singleQuotedRe = regexp.MustCompile(`'[^']*'`)
	doubleQuotedRe = regexp.MustCompile(`"[^"]*"`)
)

// StripQuoted removes all single-quoted and then all double-quoted
// substrings from a command. Keywords that appear only inside string
// literals (commit messages, echo arguments) become invisible to the
// classifiers, which keeps them from blocking commands that merely
// mention a phrase.
func StripQuoted(command string) string {
	cleaned := singleQuotedRe.ReplaceAllString(command, "")
	return doubleQuotedRe.ReplaceAllString(cleaned, "")
}
