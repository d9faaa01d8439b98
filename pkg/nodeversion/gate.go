package nodeversion

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// DefaultWrapper is the conventional path of the project wrapper script
// that switches Node.js versions before delegating.
const DefaultWrapper = "./run"

const defaultTimeout = 5 * time.Second

// Env carries everything Evaluate needs from the ambient environment.
// Tests substitute the function fields; production code uses DefaultEnv.
type Env struct {
	Dir         string // project directory holding .nvmrc / package.json / wrapper
	Home        string // user home, for default nvm locations
	Wrapper     string // wrapper script path, usually "./run"
	Timeout     time.Duration
	Getenv      func(string) string
	LookPath    func(string) (string, error)
	NodeVersion func(context.Context) (string, error)
}

// DefaultEnv returns an Env wired to the real process environment.
func DefaultEnv() Env {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return Env{
		Dir:         dir,
		Home:        home,
		Wrapper:     DefaultWrapper,
		Timeout:     defaultTimeout,
		Getenv:      os.Getenv,
		LookPath:    exec.LookPath,
		NodeVersion: queryNodeVersion,
	}
}

// Verdict is the outcome of a gate evaluation. Message is only set when
// Block is true.
type Verdict struct {
	Block   bool
	Message string
}

func allow() Verdict { return Verdict{} }

// Evaluate decides whether command may run under the active Node.js
// version. Every resolution failure resolves to allow: an unknown
// requirement must never block work.
func Evaluate(command string, env Env) Verdict {
	if !IsPackageManagerCommand(command, env.Wrapper) {
		return allow()
	}

	required, ok := RequiredMajor(env.Dir)
	if !ok {
		return allow()
	}

	timeout := env.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	raw, err := env.NodeVersion(ctx)
	if err != nil {
		return allow()
	}
	current, ok := ParseMajor(raw)
	if !ok {
		return allow()
	}

	// Only the major version matters; minor and patch never break builds
	// the way a major jump does.
	if current == required {
		return allow()
	}

	return Verdict{Block: true, Message: remediation(command, current, required, env)}
}

func remediation(command string, current, required int, env Env) string {
	if hasWrapper(env) {
		return fmt.Sprintf(`⚠️  Node.js v%d detected, but v%d required.

Use the wrapper script to auto-switch:
  %s %s`, current, required, env.Wrapper, command)
	}

	if dir := nvmDir(env); dir != "" {
		return switchMessage(command, current, required,
			fmt.Sprintf(`source "%s/nvm.sh" && nvm use %d`, dir, required))
	}
	if hasFnm(env) {
		return switchMessage(command, current, required,
			fmt.Sprintf("fnm use %d", required))
	}

	return fmt.Sprintf(`❌ Node.js v%d detected, but v%d required.

Install nvm to enable version switching:
  curl -o- https://raw.githubusercontent.com/nvm-sh/nvm/v0.40.0/install.sh | bash
  nvm install %d`, current, required, required)
}

func switchMessage(command string, current, required int, switchCmd string) string {
	return fmt.Sprintf(`⚠️  Node.js v%d detected, but v%d required.

Switch version first:
  %s

Then retry:
  %s`, current, required, switchCmd, command)
}
