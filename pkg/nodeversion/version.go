// Package nodeversion decides whether a package-manager command may run
// under the currently active Node.js version, and suggests how to switch
// when it may not.
package nodeversion

import (
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

var majorRe = regexp.MustCompile(`^v?(\d+)`)

// ParseMajor extracts the major version from a string like "v24.2.0".
func ParseMajor(version string) (int, bool) {
	m := majorRe.FindStringSubmatch(version)
	if m == nil {
		return 0, false
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return major, true
}

// queryNodeVersion asks the active node binary for its version.
func queryNodeVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "node", "--version").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
