package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docketfold/docketfold/internal/identity"
)

// PlaceAction names the single outcome recorded for a placed file.
type PlaceAction string

const (
	ActionNone    PlaceAction = "none"    // already correctly named and placed
	ActionMoved   PlaceAction = "moved"   // relocated to a free canonical slot
	ActionDeduped PlaceAction = "deduped" // identical content existed; source deleted
)

// PlaceResult describes where a file ended up.
type PlaceResult struct {
	Action  PlaceAction
	Kept    string // final path of the surviving file
	Removed string // deleted source path when Action is ActionDeduped
}

// Place moves src to its canonical destination dest, deduplicating against
// identical content and versioning around distinct-content collisions with
// -vN suffixes. Exactly one action is recorded per call.
//
// The loop cannot run forever: each occupied candidate either dedupes, or
// the counter eventually reaches a free slot or src's own current path.
func Place(src, dest string) (PlaceResult, error) {
	ext := filepath.Ext(dest)
	base := strings.TrimSuffix(dest, ext)

	candidate := dest
	for version := 1; ; version++ {
		same, err := samePath(src, candidate)
		if err != nil {
			return PlaceResult{}, err
		}
		if same {
			return PlaceResult{Action: ActionNone, Kept: src}, nil
		}

		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			if err := os.Rename(src, candidate); err != nil {
				return PlaceResult{}, fmt.Errorf("move %s: %w", src, err)
			}
			return PlaceResult{Action: ActionMoved, Kept: candidate}, nil
		} else if err != nil {
			return PlaceResult{}, fmt.Errorf("stat %s: %w", candidate, err)
		}

		identical, err := identity.Identical(candidate, src)
		if err != nil {
			return PlaceResult{}, err
		}
		if identical {
			if err := os.Remove(src); err != nil {
				return PlaceResult{}, fmt.Errorf("dedupe %s: %w", src, err)
			}
			return PlaceResult{Action: ActionDeduped, Kept: candidate, Removed: src}, nil
		}

		candidate = fmt.Sprintf("%s-v%d%s", base, version, ext)
	}
}

// samePath reports whether a and b resolve to the same location.
func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return filepath.Clean(absA) == filepath.Clean(absB), nil
}
