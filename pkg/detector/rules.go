package detector

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/repoguard/claude-hooks/pkg/shellparse"
)

// Rule names a command to block, optionally narrowed to subcommand
// patterns. An empty pattern list or the pattern "*" blocks every use of
// the command.
type Rule struct {
	Command  string
	Patterns []string
}

// ShellDetector matches shell commands against rules using a real shell
// parse of the command text. Unlike the heuristic classifiers it follows
// commands into sh -c and eval bodies, and it refuses commands it cannot
// resolve statically. Used by the strict cmd-block hook only.
type ShellDetector struct {
	rules    []Rule
	issues   []string
	maxDepth int
	depth    int
}

// NewShellDetector returns a detector for the given rules. maxDepth bounds
// recursion into nested interpreter bodies.
func NewShellDetector(rules []Rule, maxDepth int) *ShellDetector {
	if maxDepth <= 0 {
		maxDepth = 10
	}
	return &ShellDetector{rules: rules, maxDepth: maxDepth}
}

// Issues returns the findings recorded during the last ShouldBlock call.
func (d *ShellDetector) Issues() []string {
	if len(d.issues) == 0 {
		return nil
	}
	out := make([]string, len(d.issues))
	copy(out, d.issues)
	return out
}

// ShouldBlock reports whether command matches any rule. Unparseable shell
// text is blocked: a strict blocker cannot vouch for what it cannot read.
func (d *ShellDetector) ShouldBlock(command string) bool {
	d.depth = 0
	d.issues = d.issues[:0]
	return d.blockShellExpr(command)
}

func (d *ShellDetector) blockShellExpr(src string) bool {
	d.depth++
	if d.depth > d.maxDepth {
		d.addIssue("maximum nesting depth exceeded")
		return true
	}
	defer func() { d.depth-- }()

	calls, err := shellparse.Commands(src)
	if err != nil {
		d.addIssue("unable to parse shell expression: " + err.Error())
		return true
	}

	for _, call := range calls {
		if d.blockCall(call) {
			return true
		}
	}
	return false
}

func (d *ShellDetector) blockCall(call *syntax.CallExpr) bool {
	if len(call.Args) == 0 {
		return false
	}

	cmd, static := shellparse.StaticWord(call.Args[0])
	if !static {
		d.addIssue("command name is dynamic, cannot verify safety")
		return true
	}

	if d.blockDirect(call, cmd) {
		return true
	}

	// Follow sh -c / bash -c bodies.
	bodies, dynamic := shellparse.InterpreterBody(call)
	if dynamic {
		d.addIssue("dynamic interpreter argument, cannot verify safety")
		return true
	}
	for _, body := range bodies {
		if d.blockShellExpr(body) {
			d.addIssue("blocked command inside interpreter body: " + body)
			return true
		}
	}

	// Follow eval arguments.
	if parts := shellparse.EvalBody(call); len(parts) > 0 {
		if d.blockShellExpr(strings.Join(parts, " ")) {
			d.addIssue("blocked command inside eval")
			return true
		}
	}

	return false
}

func (d *ShellDetector) blockDirect(call *syntax.CallExpr, cmd string) bool {
	name := shellparse.BaseName(cmd)
	for _, rule := range d.rules {
		if name != rule.Command {
			continue
		}

		args, ok := d.staticArgs(call.Args[1:])
		if !ok {
			d.addIssue(rule.Command + " uses a dynamic subcommand")
			return true
		}

		if matchesRule(strings.Join(args, " "), rule) {
			d.addIssue("blocked " + rule.Command + " command")
			return true
		}
	}
	return false
}

func (d *ShellDetector) staticArgs(words []*syntax.Word) ([]string, bool) {
	args := make([]string, 0, len(words))
	for _, w := range words {
		val, static := shellparse.StaticWord(w)
		if !static {
			return nil, false
		}
		args = append(args, val)
	}
	return args, true
}

func (d *ShellDetector) addIssue(issue string) {
	d.issues = append(d.issues, issue)
}

func matchesRule(args string, rule Rule) bool {
	if len(rule.Patterns) == 0 {
		return true
	}
	lower := strings.ToLower(args)
	for _, pattern := range rule.Patterns {
		if pattern == "*" {
			return true
		}
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}
