// Package main implements a Claude Code hook that blocks git commits made
// with --no-verify.
package main

import (
	"log"

	"github.com/repoguard/claude-hooks/pkg/detector"
	"github.com/repoguard/claude-hooks/pkg/hook"
)

const blockMessage = `❌ BLOCKED: Using --no-verify bypasses pre-commit hooks!

Pre-commit hooks exist to catch issues before they reach CI. If hooks are failing:
1. Fix the failing tests/checks (don't bypass them)
2. If the hooks themselves are broken, fix the hooks
3. Only use --no-verify as an absolute last resort`

func main() {
	input, err := hook.ReadStdin()
	if err != nil {
		log.Printf("Failed to decode hook input: %v", err)
		hook.Allow() // Fail open on malformed input
		return
	}

	if input.ToolName != "Bash" {
		hook.Allow()
	}

	command := input.ToolInput.Command
	if command == "" {
		hook.Allow()
	}

	if detector.IsNoVerifyCommit(command) {
		hook.Block(blockMessage)
	}

	hook.Allow()
}
