// Package hookconfig loads the optional per-project hook configuration.
package hookconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the knobs shared by the hook binaries. Every field has a
// sensible default; the file only exists to override them.
type Config struct {
	Wrapper  string         `yaml:"wrapper"`
	Schema   SchemaConfig   `yaml:"schema"`
	Node     NodeConfig     `yaml:"node"`
	Commands CommandsConfig `yaml:"commands"`
}

// SchemaConfig configures the db-push-block hook.
type SchemaConfig struct {
	// MigrateHint is the command suggested instead of a schema push.
	MigrateHint string `yaml:"migrate_hint"`
}

// NodeConfig configures the node-version-check hook.
type NodeConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// CommandsConfig configures the cmd-block hook. Each entry is a command
// name optionally followed by subcommand patterns, e.g. "git push".
type CommandsConfig struct {
	Block []string `yaml:"block"`
}

// DefaultMigrateHint is the suggested alternative to a direct schema push.
const DefaultMigrateHint = "pnpm --filter @repo/database migrate dev --name <migration-name>"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Wrapper: "./run",
		Schema:  SchemaConfig{MigrateHint: DefaultMigrateHint},
		Node:    NodeConfig{TimeoutSeconds: 5},
	}
}

// Load reads .claude/guard.yml under dir and overlays it onto the
// defaults. A missing, unreadable, or malformed file yields the defaults
// unchanged: configuration problems must never block a command.
func Load(dir string) *Config {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, ".claude", "guard.yml"))
	if err != nil {
		return cfg
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg
	}

	cfg.merge(&overlay)
	return cfg
}

func (c *Config) merge(overlay *Config) {
	if overlay.Wrapper != "" {
		c.Wrapper = overlay.Wrapper
	}
	if overlay.Schema.MigrateHint != "" {
		c.Schema.MigrateHint = overlay.Schema.MigrateHint
	}
	if overlay.Node.TimeoutSeconds > 0 {
		c.Node.TimeoutSeconds = overlay.Node.TimeoutSeconds
	}
	if len(overlay.Commands.Block) > 0 {
		c.Commands.Block = overlay.Commands.Block
	}
}
