package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docketfold/docketfold/internal/config"
	"github.com/docketfold/docketfold/internal/docket"
	"github.com/docketfold/docketfold/internal/errors"
	"github.com/docketfold/docketfold/internal/naming"
)

// RunInput contains parameters for one invocation.
type RunInput struct {
	// Slugs restricts the run to the named cases. Empty means every
	// directory under the cases root.
	Slugs []string

	// Now is the run timestamp used for docket records.
	Now time.Time

	// FailFast aborts the run on the first case failure instead of
	// collecting failures and continuing.
	FailFast bool
}

// Run processes the selected cases strictly sequentially: case N is fully
// finished, manifests included, before case N+1 starts. A crash therefore
// leaves a clean boundary between fully mutated and untouched cases, and
// re-running is always safe.
func Run(cfg *config.Config, input RunInput) (*RunResult, error) {
	runID, err := newRunID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	result := &RunResult{RunID: runID}

	available, err := DiscoverCases(cfg.CasesRoot)
	if err != nil {
		return nil, err
	}

	selected := available
	if len(input.Slugs) > 0 {
		known := make(map[string]bool, len(available))
		for _, slug := range available {
			known[slug] = true
		}
		selected = make([]string, 0, len(input.Slugs))
		for _, slug := range input.Slugs {
			if !known[slug] {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("case not found under %s: %s (skipped)", cfg.CasesRoot, slug))
				continue
			}
			selected = append(selected, slug)
		}
	}

	for _, slug := range selected {
		report, err := ProcessCase(cfg, slug, input.Now)
		if err != nil {
			if input.FailFast {
				return result, err
			}
			result.Failures = append(result.Failures, CaseFailure{Slug: slug, Err: err})
			continue
		}
		result.Reports = append(result.Reports, report)
	}
	return result, nil
}

// DiscoverCases lists the case slugs (directory names) under casesRoot in
// sorted order. Symlinked directories are not considered cases.
func DiscoverCases(casesRoot string) ([]string, error) {
	entries, err := os.ReadDir(casesRoot)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("read cases root %s: %w", casesRoot, err))
	}
	var slugs []string
	for _, entry := range entries {
		if entry.IsDir() {
			slugs = append(slugs, entry.Name())
		}
	}
	return slugs, nil
}

// ProcessCase repairs a single case directory: ensures the canonical
// layout, normalizes and places every recognized document file, prunes
// emptied stray directories, and regenerates the docket manifests.
func ProcessCase(cfg *config.Config, slug string, now time.Time) (*CaseReport, error) {
	report := &CaseReport{Slug: slug}
	caseDir := filepath.Join(cfg.CasesRoot, slug)

	created, err := EnsureLayout(caseDir)
	if err != nil {
		return nil, err
	}
	report.CreatedDirs = created

	entries, err := Walk(caseDir)
	if err != nil {
		return nil, err
	}

	filingsDir := filepath.Join(caseDir, FilingsDir)
	for _, entry := range entries {
		if !naming.IsDocumentExt(filepath.Ext(entry.RelPath)) {
			continue
		}
		if isCurated(entry.RelPath) {
			continue
		}
		destName := naming.CanonicalFilename(filepath.Base(entry.RelPath))
		res, err := Place(entry.FullPath, filepath.Join(filingsDir, destName))
		if err != nil {
			return nil, err
		}
		switch res.Action {
		case ActionMoved:
			report.MovedFiles++
		case ActionDeduped:
			report.DedupedFiles++
		}
	}

	removed, err := PruneEmpty(caseDir)
	if err != nil {
		return nil, err
	}
	report.RemovedDirs = removed

	meta, metaErr := docket.LoadMetadata(cfg.ContentRoot, slug)
	if metaErr != nil {
		// Unparsable metadata degrades to heuristic-only derivation.
		report.Warnings = append(report.Warnings, metaErr.Error())
	}
	rec := docket.Synthesize(slug, meta, cfg.CountyHints, now)

	backups, updated, err := WriteManifests(caseDir, rec, meta)
	if err != nil {
		return nil, err
	}
	report.Backups = backups
	report.MetadataUpdated = updated

	return report, nil
}

// isCurated reports whether relPath sits inside a canonical directory whose
// contents are human-curated and must stay put (evidence/, notes/).
func isCurated(relPath string) bool {
	top, _, found := strings.Cut(relPath, string(filepath.Separator))
	if !found {
		return false
	}
	return top == EvidenceDir || top == NotesDir
}
