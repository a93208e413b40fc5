package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStyles mirrors the page horizontally.
const DefaultStyles = "\n/* Prev.js styles */\nbody { transform: scaleX(-1); }\n"

// StylesheetCandidates are the places create-next-app writes globals.css,
// relative to the project root, in probe order.
var StylesheetCandidates = []string{
	filepath.Join("app", "globals.css"),
	filepath.Join("styles", "globals.css"),
	filepath.Join("src", "app", "globals.css"),
	filepath.Join("src", "styles", "globals.css"),
}

// FindStylesheet returns the first candidate that exists under projectDir.
func FindStylesheet(projectDir string) (string, bool) {
	for _, rel := range StylesheetCandidates {
		p := filepath.Join(projectDir, rel)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// AppendStyles appends styles to the file at path. Nothing is deduplicated:
// calling it twice leaves two copies.
func AppendStyles(path, styles string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(styles); err != nil {
		f.Close()
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return f.Close()
}
