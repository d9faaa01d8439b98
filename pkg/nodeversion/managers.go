package nodeversion

import (
	"os"
	"path/filepath"
)

// nvmDir returns the nvm installation directory, if one exists. The
// NVM_DIR variable is checked first, then the default install locations.
func nvmDir(env Env) string {
	if dir := env.Getenv("NVM_DIR"); dir != "" {
		if isDir(dir) {
			return dir
		}
	}

	candidates := []string{
		filepath.Join(env.Home, ".nvm"),
		filepath.Join(env.Home, ".config", "nvm"),
	}
	for _, dir := range candidates {
		if isDir(dir) {
			return dir
		}
	}
	return ""
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// hasFnm reports whether the fnm version manager is on the search path.
func hasFnm(env Env) bool {
	_, err := env.LookPath("fnm")
	return err == nil
}

// hasWrapper reports whether the project wrapper script exists and is
// executable.
func hasWrapper(env Env) bool {
	path := env.Wrapper
	if path == "" {
		return false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(env.Dir, path)
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
