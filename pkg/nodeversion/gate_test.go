package nodeversion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var errNotFound = errors.New("executable file not found in $PATH")

// testEnv returns an Env pointing at empty temp directories with no
// version managers and node reporting v24.
func testEnv(t *testing.T) Env {
	t.Helper()
	return Env{
		Dir:      t.TempDir(),
		Home:     t.TempDir(),
		Wrapper:  DefaultWrapper,
		Timeout:  time.Second,
		Getenv:   func(string) string { return "" },
		LookPath: func(string) (string, error) { return "", errNotFound },
		NodeVersion: func(context.Context) (string, error) {
			return "v24.2.0", nil
		},
	}
}

func pinVersion(t *testing.T, env Env, major string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(env.Dir, ".nvmrc"), []byte(major), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEvaluate_MatchingVersionAllows(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "24")

	if v := Evaluate("pnpm dev", env); v.Block {
		t.Errorf("expected allow, got block: %s", v.Message)
	}
}

func TestEvaluate_NonPackageManagerCommandAllows(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "20")

	for _, cmd := range []string{"git status", "ls -la", "cargo build"} {
		if v := Evaluate(cmd, env); v.Block {
			t.Errorf("expected allow for %q, got block: %s", cmd, v.Message)
		}
	}
}

func TestEvaluate_WrapperPrefixedCommandNeverIntercepted(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "20") // mismatch with active v24

	if v := Evaluate("./run pnpm dev", env); v.Block {
		t.Errorf("expected allow for wrapper-prefixed command, got block: %s", v.Message)
	}
}

func TestEvaluate_NoRequirementAllows(t *testing.T) {
	env := testEnv(t)

	if v := Evaluate("pnpm dev", env); v.Block {
		t.Errorf("expected allow without declared requirement, got block: %s", v.Message)
	}
}

func TestEvaluate_NodeQueryFailureAllows(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "20")
	env.NodeVersion = func(context.Context) (string, error) {
		return "", errors.New("context deadline exceeded")
	}

	if v := Evaluate("pnpm dev", env); v.Block {
		t.Errorf("expected allow when node version is unknown, got block: %s", v.Message)
	}
}

func TestEvaluate_UnparseableNodeVersionAllows(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "20")
	env.NodeVersion = func(context.Context) (string, error) {
		return "not-a-version", nil
	}

	if v := Evaluate("pnpm dev", env); v.Block {
		t.Errorf("expected allow, got block: %s", v.Message)
	}
}

func TestEvaluate_MismatchSuggestsWrapper(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "20")
	if err := os.WriteFile(filepath.Join(env.Dir, "run"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	v := Evaluate("pnpm dev", env)
	if !v.Block {
		t.Fatal("expected block on version mismatch")
	}
	if !strings.Contains(v.Message, "./run pnpm dev") {
		t.Errorf("message should suggest the wrapper invocation, got:\n%s", v.Message)
	}
}

func TestEvaluate_NonExecutableWrapperIgnored(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "20")
	if err := os.WriteFile(filepath.Join(env.Dir, "run"), []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	v := Evaluate("pnpm dev", env)
	if !v.Block {
		t.Fatal("expected block on version mismatch")
	}
	if strings.Contains(v.Message, "./run pnpm dev") {
		t.Errorf("non-executable wrapper must not be suggested, got:\n%s", v.Message)
	}
}

func TestEvaluate_MismatchSuggestsNvmFromEnvVar(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "20")
	nvm := t.TempDir()
	env.Getenv = func(key string) string {
		if key == "NVM_DIR" {
			return nvm
		}
		return ""
	}

	v := Evaluate("pnpm dev", env)
	if !v.Block {
		t.Fatal("expected block on version mismatch")
	}
	if !strings.Contains(v.Message, "nvm use 20") {
		t.Errorf("message should include the nvm switch command, got:\n%s", v.Message)
	}
	if !strings.Contains(v.Message, nvm+"/nvm.sh") {
		t.Errorf("message should source nvm.sh from %s, got:\n%s", nvm, v.Message)
	}
	if !strings.Contains(v.Message, "pnpm dev") {
		t.Errorf("message should repeat the original command, got:\n%s", v.Message)
	}
}

func TestEvaluate_MismatchSuggestsNvmFromDefaultLocation(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "20")
	if err := os.MkdirAll(filepath.Join(env.Home, ".nvm"), 0o755); err != nil {
		t.Fatal(err)
	}

	v := Evaluate("pnpm dev", env)
	if !v.Block {
		t.Fatal("expected block on version mismatch")
	}
	if !strings.Contains(v.Message, "nvm use 20") {
		t.Errorf("message should include the nvm switch command, got:\n%s", v.Message)
	}
}

func TestEvaluate_MismatchSuggestsFnm(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "20")
	env.LookPath = func(name string) (string, error) {
		if name == "fnm" {
			return "/usr/local/bin/fnm", nil
		}
		return "", errNotFound
	}

	v := Evaluate("pnpm dev", env)
	if !v.Block {
		t.Fatal("expected block on version mismatch")
	}
	if !strings.Contains(v.Message, "fnm use 20") {
		t.Errorf("message should include the fnm switch command, got:\n%s", v.Message)
	}
}

func TestEvaluate_MismatchWithoutManagerSuggestsInstall(t *testing.T) {
	env := testEnv(t)
	pinVersion(t, env, "20")

	v := Evaluate("pnpm dev", env)
	if !v.Block {
		t.Fatal("expected block on version mismatch")
	}
	if !strings.Contains(v.Message, "nvm install 20") {
		t.Errorf("message should include install instructions, got:\n%s", v.Message)
	}
}
