package detector

import "strings"

// IsNoVerifyCommit reports whether command runs git commit with the
// --no-verify flag. Both the "git commit" text and the flag must appear
// outside quoted regions, so a commit message that mentions --no-verify
// does not trigger.
func IsNoVerifyCommit(command string) bool {
	cleaned := StripQuoted(command)
	return strings.Contains(cleaned, "git commit") && strings.Contains(cleaned, "--no-verify")
}
