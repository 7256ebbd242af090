package ops

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// CaseReport aggregates the mutations applied to one case during a run.
// It exists only for the duration of the invocation and is emitted as
// console output, never persisted.
type CaseReport struct {
	Slug            string
	CreatedDirs     []string
	MovedFiles      int
	DedupedFiles    int
	Backups         int
	RemovedDirs     []string
	MetadataUpdated bool
	Warnings        []string
}

// Summary renders the one-line per-case summary.
func (r *CaseReport) Summary() string {
	return fmt.Sprintf("%s: dirs created=%d, moved=%d, deduped=%d, pruned=%d, backups=%d, metadata updated=%t",
		r.Slug, len(r.CreatedDirs), r.MovedFiles, r.DedupedFiles, len(r.RemovedDirs), r.Backups, r.MetadataUpdated)
}

// CaseFailure records a case whose processing failed mid-run.
type CaseFailure struct {
	Slug string
	Err  error
}

// RunResult aggregates one invocation across all selected cases.
type RunResult struct {
	RunID    string
	Reports  []*CaseReport
	Warnings []string
	Failures []CaseFailure
}

// Failed reports whether any case failed.
func (r *RunResult) Failed() bool {
	return len(r.Failures) > 0
}

// newRunID generates the ULID stamped on a run's console output.
func newRunID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
