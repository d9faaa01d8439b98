// Package main implements a Claude Code hook that checks the active
// Node.js version before package-manager commands and suggests how to
// switch when the project requires a different major version.
package main

import (
	"log"
	"time"

	"github.com/repoguard/claude-hooks/pkg/hook"
	"github.com/repoguard/claude-hooks/pkg/hookconfig"
	"github.com/repoguard/claude-hooks/pkg/nodeversion"
)

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

	env := nodeversion.DefaultEnv()
	cfg := hookconfig.Load(env.Dir)
	if cfg.Wrapper != "" {
		env.Wrapper = cfg.Wrapper
	}
	if cfg.Node.TimeoutSeconds > 0 {
		env.Timeout = time.Duration(cfg.Node.TimeoutSeconds) * time.Second
	}

	if verdict := nodeversion.Evaluate(command, env); verdict.Block {
		hook.Block(verdict.Message)
	}

	hook.Allow()
}
