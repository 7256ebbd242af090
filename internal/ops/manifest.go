package ops

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docketfold/docketfold/internal/docket"
	"github.com/docketfold/docketfold/internal/errors"
)

// Per-case manifest files, regenerated (never merged) on every run.
const (
	DocketFileName = "docket.yml"
	ReadmeFileName = "README.md"
	backupSuffix   = ".bak"
)

// WriteSafely writes content to path with backup-on-overwrite semantics:
// any existing file is first copied to path+".bak" (clobbering a prior
// .bak), then content replaces it via temp file + rename. Byte-identical
// content is left completely untouched. Symlink destinations are refused.
func WriteSafely(path string, content []byte) (wrote, backedUp bool, err error) {
	info, statErr := os.Lstat(path)
	switch {
	case statErr == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return false, false, errors.NewUnsafePath(path)
		}
		existing, err := os.ReadFile(path)
		if err != nil {
			return false, false, fmt.Errorf("read %s: %w", path, err)
		}
		if bytes.Equal(existing, content) {
			return false, false, nil
		}
		if err := os.WriteFile(path+backupSuffix, existing, 0644); err != nil {
			return false, false, fmt.Errorf("backup %s: %w", path, err)
		}
		backedUp = true
	case !os.IsNotExist(statErr):
		return false, false, fmt.Errorf("stat %s: %w", path, statErr)
	}

	// Write to a temp sibling, then rename into place so a failure mid-write
	// never leaves a truncated manifest.
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return false, backedUp, fmt.Errorf("temp name for %s: %w", path, err)
	}
	tempPath := path + "." + hex.EncodeToString(randBytes) + ".tmp"
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return false, backedUp, fmt.Errorf("write %s: %w", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return false, backedUp, fmt.Errorf("finalize %s: %w", path, err)
	}
	return true, backedUp, nil
}

// WriteManifests regenerates docket.yml and README.md for the case at
// caseDir. The previous last_updated is carried over when no other docket
// field changed, so an unchanged case rewrites nothing.
func WriteManifests(caseDir string, rec docket.Record, meta docket.Metadata) (backups int, updated bool, err error) {
	docketPath := filepath.Join(caseDir, DocketFileName)
	if prev, ok := readRecord(docketPath); ok && docket.Equivalent(prev, rec) {
		rec.LastUpdated = prev.LastUpdated
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return 0, false, fmt.Errorf("marshal docket for %s: %w", caseDir, err)
	}
	wrote, backedUp, err := WriteSafely(docketPath, data)
	if err != nil {
		return 0, false, err
	}
	if backedUp {
		backups++
	}
	updated = wrote

	filings, err := listFilings(caseDir)
	if err != nil {
		return backups, updated, err
	}
	readme := renderReadme(rec, meta, filings)
	wrote, backedUp, err = WriteSafely(filepath.Join(caseDir, ReadmeFileName), []byte(readme))
	if err != nil {
		return backups, updated, err
	}
	if backedUp {
		backups++
	}
	updated = updated || wrote

	return backups, updated, nil
}

// readRecord loads a previously written docket.yml. Any failure simply
// means there is no usable prior record.
func readRecord(path string) (docket.Record, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return docket.Record{}, false
	}
	var rec docket.Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return docket.Record{}, false
	}
	return rec, true
}

// listFilings returns the filenames in caseDir/filings, lexicographically
// sorted (os.ReadDir guarantees the order).
func listFilings(caseDir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(caseDir, FilingsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list filings in %s: %w", caseDir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// renderReadme builds the human-readable case index document.
func renderReadme(rec docket.Record, meta docket.Metadata, filings []string) string {
	summary := meta.Summarize()
	if summary == "" {
		summary = fmt.Sprintf("Normalized filing archive for docket %s.", rec.Docket)
	}

	parties := "—"
	if len(rec.Parties) > 0 {
		parties = strings.Join(rec.Parties, "; ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", rec.Docket)
	fmt.Fprintf(&b, "- **Docket:** %s\n", rec.Docket)
	fmt.Fprintf(&b, "- **County:** %s\n", rec.County)
	fmt.Fprintf(&b, "- **Type:** %s\n", rec.Type)
	fmt.Fprintf(&b, "- **Parties:** %s\n", parties)
	fmt.Fprintf(&b, "- **Last updated:** %s\n", rec.LastUpdated)
	fmt.Fprintf(&b, "\n## Summary\n\n%s\n", summary)
	b.WriteString("\n## Filings\n\n")
	if len(filings) == 0 {
		b.WriteString("No filings on record.\n")
	} else {
		for _, name := range filings {
			fmt.Fprintf(&b, "- [%s](%s/%s)\n", name, FilingsDir, name)
		}
	}
	return b.String()
}
