// Package hook provides shared input and output handling for Claude Code
// PreToolUse hooks.
package hook

import (
	"encoding/json"
	"io"
	"os"
)

// Input represents the JSON payload Claude Code pipes to PreToolUse hooks.
type Input struct {
	ToolName  string `json:"tool_name"`
	ToolInput struct {
		Command string `json:"command"`
	} `json:"tool_input"`
}

// Read decodes a hook input payload from r.
func Read(r io.Reader) (*Input, error) {
	var input Input
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return nil, err
	}
	return &input, nil
}

// ReadStdin decodes the hook input payload from standard input.
func ReadStdin() (*Input, error) {
	return Read(os.Stdin)
}

// Block writes a remediation message to stderr and exits with code 2,
// which tells Claude Code to block the command.
func Block(message string) {
	_, _ = os.Stderr.WriteString(message + "\n")
	os.Exit(2)
}

// Allow exits with code 0, letting the command proceed.
func Allow() {
	os.Exit(0)
}
