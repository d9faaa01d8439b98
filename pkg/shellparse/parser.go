// Package shellparse wraps mvdan.cc/sh to extract command calls from
// shell text.
package shellparse

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Commands parses shell text and returns every command call it contains,
// including calls inside pipelines, conditionals, and subshells.
func Commands(src string) ([]*syntax.CallExpr, error) {
	parser := syntax.NewParser()
	file, err := parser.Parse(strings.NewReader(src), "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}

	var calls []*syntax.CallExpr
	syntax.Walk(file, func(node syntax.Node) bool {
		if call, ok := node.(*syntax.CallExpr); ok {
			calls = append(calls, call)
		}
		return true
	})
	return calls, nil
}

// StaticWord resolves a word to a plain string. The second return value
// is false when the word contains dynamic parts (variable expansion,
// command substitution, arithmetic) whose value cannot be known without
// executing the command.
func StaticWord(word *syntax.Word) (string, bool) {
	if word == nil {
		return "", true
	}

	var sb strings.Builder
	static := true
	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(p.Value)
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, sub := range p.Parts {
				if lit, ok := sub.(*syntax.Lit); ok {
					sb.WriteString(lit.Value)
				} else {
					static = false
				}
			}
		default:
			static = false
		}
	}
	return sb.String(), static
}

// BaseName reduces a command path to its bare name for comparison:
// /usr/local/bin/git, ./git, and git.exe all become "git".
func BaseName(cmd string) string {
	base := filepath.Base(filepath.Clean(cmd))
	return strings.TrimSuffix(base, ".exe")
}

var interpreters = []string{"sh", "bash", "zsh", "dash", "ksh", "csh", "tcsh", "fish"}

// IsInterpreter reports whether cmd names a shell interpreter.
func IsInterpreter(cmd string) bool {
	return slices.Contains(interpreters, BaseName(cmd))
}

// InterpreterBody returns the script strings passed to a shell interpreter
// via -c. The second return value is true when any argument is dynamic and
// the real script content cannot be determined.
func InterpreterBody(call *syntax.CallExpr) ([]string, bool) {
	if len(call.Args) < 2 {
		return nil, false
	}
	cmd, ok := StaticWord(call.Args[0])
	if !ok {
		return nil, true
	}
	if !IsInterpreter(cmd) {
		return nil, false
	}

	var bodies []string
	dynamic := false
	for i := 1; i < len(call.Args); i++ {
		arg, argStatic := StaticWord(call.Args[i])
		if !argStatic {
			dynamic = true
			continue
		}
		if arg == "-c" && i+1 < len(call.Args) {
			body, bodyStatic := StaticWord(call.Args[i+1])
			if !bodyStatic {
				dynamic = true
			} else if body != "" {
				bodies = append(bodies, body)
			}
			break
		}
	}
	return bodies, dynamic
}

// EvalBody returns the static arguments of an eval command, which the
// shell would concatenate and execute.
func EvalBody(call *syntax.CallExpr) []string {
	if len(call.Args) < 2 {
		return nil
	}
	cmd, ok := StaticWord(call.Args[0])
	if !ok || cmd != "eval" {
		return nil
	}

	var parts []string
	for _, arg := range call.Args[1:] {
		if val, static := StaticWord(arg); static && val != "" {
			parts = append(parts, val)
		}
	}
	return parts
}
