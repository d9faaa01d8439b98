package nodeversion

import (
	"regexp"
	"strings"
)

// Package-manager invocations that execute Node.js code and therefore
// need a version check.
var packageManagerRes = []*regexp.Regexp{
	regexp.MustCompile(`\bpnpm\s+(dev|build|start|test|run|exec)\b`),
	regexp.MustCompile(`\bnpm\s+(run|test|start|exec)\b`),
	regexp.MustCompile(`\byarn\s+(dev|build|start|test|run)\b`),
	regexp.MustCompile(`\bnpx\s+`),
	regexp.MustCompile(`\bturbo\s+(run|dev|build|test)\b`),
}

// IsPackageManagerCommand reports whether command runs Node.js code
// through a package manager. Commands already routed through the wrapper
// script are excluded: the wrapper switches versions itself.
func IsPackageManagerCommand(command, wrapper string) bool {
	if wrapper != "" && strings.HasPrefix(strings.TrimSpace(command), wrapper+" ") {
		return false
	}
	for _, re := range packageManagerRes {
		if re.MatchString(command) {
			return true
		}
	}
	return false
}
