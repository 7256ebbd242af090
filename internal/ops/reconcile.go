package ops

import (
	"fmt"
	"os"
	"path/filepath"
)

// Canonical case subdirectories.
const (
	FilingsDir  = "filings"
	EvidenceDir = "evidence"
	NotesDir    = "notes"
)

// RequiredDirs is the fixed set every case must contain after a run.
var RequiredDirs = []string{FilingsDir, EvidenceDir, NotesDir}

// EnsureLayout creates any missing required subdirectory under caseDir.
// Idempotent and non-destructive; returns the names it created.
func EnsureLayout(caseDir string) ([]string, error) {
	var created []string
	for _, name := range RequiredDirs {
		path := filepath.Join(caseDir, name)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return created, fmt.Errorf("ensure %s: %w", path, err)
		}
		created = append(created, name)
	}
	return created, nil
}

// PruneEmpty removes top-level directories under caseDir that are not in
// the required set and are empty. Non-empty unknown directories are left
// untouched and are not errors: losing data to an aggressive prune is worse
// than leaving a stray folder.
func PruneEmpty(caseDir string) ([]string, error) {
	required := make(map[string]bool, len(RequiredDirs))
	for _, name := range RequiredDirs {
		required[name] = true
	}

	entries, err := os.ReadDir(caseDir)
	if err != nil {
		return nil, fmt.Errorf("prune %s: %w", caseDir, err)
	}

	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() || required[entry.Name()] {
			continue
		}
		path := filepath.Join(caseDir, entry.Name())
		children, err := os.ReadDir(path)
		if err != nil {
			return removed, fmt.Errorf("prune %s: %w", path, err)
		}
		if len(children) > 0 {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("prune %s: %w", path, err)
		}
		removed = append(removed, entry.Name())
	}
	return removed, nil
}
