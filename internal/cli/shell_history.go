package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// maxHistoryLines is how many past shell inputs Up/Down can reach.
const maxHistoryLines = 500

// shellHistoryPath is ~/.haven/shell_history, next to config.yaml and the
// database. It is "" when the home directory cannot be resolved, which turns
// history persistence off for the session.
func shellHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".haven", "shell_history")
}

// loadHistoryFromPath seeds the shell's Up/Down recall with the newest
// maxHistoryLines entries. Questions and commands are stored alike, one per
// line. A missing file is a first run and yields nil.
func loadHistoryFromPath(path string) []string {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > maxHistoryLines {
		lines = lines[len(lines)-maxHistoryLines:]
	}
	return lines
}

// appendHistoryToPath records one submitted shell line. The file is never
// truncated on write; the cap applies when it is loaded. A failed write only
// loses recall, so the shell keeps running.
func appendHistoryToPath(path, line string) {
	line = strings.TrimSpace(line)
	if path == "" || line == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(line + "\n")
}
