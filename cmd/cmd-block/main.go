// Package main implements a strict, configurable command blocker for
// Claude Code hooks. Rules come from repeated -cmd flags or from the
// commands.block list in .claude/guard.yml. Unlike the heuristic hooks,
// this one parses the shell text and blocks anything it cannot resolve,
// including blocked commands reached through sh -c, eval, or variables.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/repoguard/claude-hooks/pkg/detector"
	"github.com/repoguard/claude-hooks/pkg/hook"
	"github.com/repoguard/claude-hooks/pkg/hookconfig"
)

const defaultMaxDepth = 10

// cmdFlag collects repeated -cmd values.
type cmdFlag []string

func (c *cmdFlag) String() string {
	return strings.Join(*c, ", ")
}

func (c *cmdFlag) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func main() {
	var cmds cmdFlag
	flag.Var(&cmds, "cmd", `command and optional subcommand patterns to block, e.g. "git push" (repeatable)`)
	maxDepth := flag.Int("max-depth", defaultMaxDepth, "maximum nesting depth when following sh -c and eval bodies")
	flag.Parse()

	rules := parseRules(cmds)
	if len(rules) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		rules = parseRules(hookconfig.Load(cwd).Commands.Block)
	}
	if len(rules) == 0 {
		hook.Allow() // Nothing configured, nothing to enforce
	}

	input, err := hook.ReadStdin()
	if err != nil {
		// Strict mode fails closed: a blocker that cannot read its input
		// cannot vouch for the command.
		hook.Block("cmd-block: failed to parse hook input: " + err.Error())
		return
	}

	if input.ToolName != "Bash" {
		hook.Allow()
	}

	command := input.ToolInput.Command
	if command == "" {
		hook.Allow()
	}

	d := detector.NewShellDetector(rules, *maxDepth)
	if d.ShouldBlock(command) {
		lines := append([]string{"🚫 BLOCKED: command matched a blocked rule."}, d.Issues()...)
		hook.Block(strings.Join(lines, "\n"))
	}

	hook.Allow()
}

// parseRules turns rule entries like "git push force-push" into detector
// rules. An entry with no patterns blocks every use of the command.
func parseRules(entries []string) []detector.Rule {
	var rules []detector.Rule
	for _, entry := range entries {
		parts := strings.Fields(entry)
		if len(parts) == 0 {
			continue
		}
		rule := detector.Rule{Command: parts[0]}
		if len(parts) > 1 {
			rule.Patterns = parts[1:]
		} else {
			rule.Patterns = []string{"*"}
		}
		rules = append(rules, rule)
	}
	return rules
}
