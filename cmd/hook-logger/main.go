// Package main implements a debugging hook that records raw Claude Code
// hook payloads. It always exits 0 so it can never block anything.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func main() {
	logFile := flag.String("log", "", "append payloads to this file instead of stdout")
	silent := flag.Bool("silent", false, "suppress stdout output")
	flag.Parse()

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		os.Exit(0)
	}

	var payload any
	var rendered string
	if err := json.Unmarshal(raw, &payload); err != nil {
		rendered = string(raw)
	} else if pretty, err := json.MarshalIndent(payload, "", "  "); err == nil {
		rendered = string(pretty)
	} else {
		rendered = string(raw)
	}

	entry := fmt.Sprintf("=== HOOK PAYLOAD ===\n%s\n====================\n", rendered)

	if *logFile != "" {
		writeLog(*logFile, entry)
	} else if !*silent {
		fmt.Print(entry)
	}

	os.Exit(0)
}

func writeLog(path, entry string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(entry)
}
