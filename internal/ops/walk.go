package ops

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Entry is one regular file found under a case directory.
type Entry struct {
	FullPath string
	RelPath  string // relative to the walked case directory
}

// Walk recursively enumerates regular files under caseDir in directory-read
// order. Symbolic links are neither followed nor reported.
func Walk(caseDir string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(caseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(caseDir, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{FullPath: path, RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", caseDir, err)
	}
	return entries, nil
}
