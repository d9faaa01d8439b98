package nodeversion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	nvmrcMajorRe   = regexp.MustCompile(`^(\d+)`)
	enginesMajorRe = regexp.MustCompile(`>=?\s*(\d+)`)
)

// RequiredMajor resolves the Node.js major version the project in dir
// declares. An .nvmrc pin wins over the package.json engines constraint.
// False means no requirement could be determined.
func RequiredMajor(dir string) (int, bool) {
	if major, ok := nvmrcMajor(filepath.Join(dir, ".nvmrc")); ok {
		return major, true
	}
	return enginesMajor(filepath.Join(dir, "package.json"))
}

func nvmrcMajor(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	content := strings.TrimSpace(string(data))
	content = strings.TrimPrefix(content, "v")
	m := nvmrcMajorRe.FindStringSubmatch(content)
	if m == nil {
		return 0, false
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return major, true
}

func enginesMajor(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	var pkg struct {
		Engines struct {
			Node string `json:"node"`
		} `json:"engines"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return 0, false
	}

	m := enginesMajorRe.FindStringSubmatch(pkg.Engines.Node)
	if m == nil {
		return 0, false
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return major, true
}
