// Package main implements a Claude Code hook that blocks direct Prisma
// schema pushes. Pushing the schema bypasses the migration history, which
// breaks integration tests and CI deploys that apply migrations from
// scratch.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/repoguard/claude-hooks/pkg/detector"
	"github.com/repoguard/claude-hooks/pkg/hook"
	"github.com/repoguard/claude-hooks/pkg/hookconfig"
)

func main() {
	input, err := hook.ReadStdin()
	if err != nil {
		log.Printf("Failed to decode hook input: %v", err)
		hook.Allow() // Fail open on malformed input
		return
	}

	// Only shell commands are inspected.
	if input.ToolName != "Bash" {
		hook.Allow()
	}

	command := input.ToolInput.Command
	if command == "" {
		hook.Allow()
	}

	if detector.IsSchemaPush(command) {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		cfg := hookconfig.Load(cwd)
		hook.Block(blockMessage(cfg.Schema.MigrateHint))
	}

	hook.Allow()
}

func blockMessage(migrateHint string) string {
	return fmt.Sprintf(`❌ Direct schema push is not allowed.

Using 'prisma db push' causes schema drift between your database and migration history,
which breaks integration tests and can cause production issues.

Instead, use: %s

This creates a migration file that keeps your database in sync with the migration history.`, migrateHint)
}
