// Package naming turns arbitrary filing filenames into canonical,
// date-prefixed kebab-case names. All functions are pure and deterministic.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// separatorRegex matches whitespace/underscore runs that become hyphens.
	separatorRegex = regexp.MustCompile(`[\s_]+`)

	// invalidRegex matches characters outside the slug alphabet.
	invalidRegex = regexp.MustCompile(`[^a-z0-9-]+`)

	// hyphenRunRegex matches runs of repeated hyphens.
	hyphenRunRegex = regexp.MustCompile(`-{2,}`)
)

// documentExts is the frozen set of recognized filing extensions.
// Files with any other extension are never relocated or renamed.
var documentExts = map[string]bool{
	".pdf":  true,
	".docx": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
}

// IsDocumentExt reports whether ext (with leading dot, any case) is a
// recognized filing extension.
func IsDocumentExt(ext string) bool {
	return documentExts[strings.ToLower(ext)]
}

// Slugify normalizes a name fragment to the slug alphabet [a-z0-9-]:
// lowercase, whitespace/underscore runs collapse to single hyphens, other
// characters are stripped, hyphen runs collapse, edges are trimmed.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = separatorRegex.ReplaceAllString(s, "-")
	s = invalidRegex.ReplaceAllString(s, "")
	s = hyphenRunRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// dateRule pairs a boundary-anchored pattern with a function that compacts
// its captured digit groups into YYYYMMDD form.
//
// Every pattern carries a leading (^|[^0-9]) and trailing ([^0-9]|$) group
// so a date can never match inside a longer run of digits (docket numbers).
// The digit groups sit between those two boundary groups.
type dateRule struct {
	re      *regexp.Regexp
	compact func(parts []string) string
}

// dateRules are tried in priority order; the first match anywhere in the
// slug wins. Punctuated forms come before contiguous-digit forms: this is a
// deliberate tie-break for filenames with several numeric runs, not an
// accident of implementation.
var dateRules = []dateRule{
	// YYYY-MM-DD
	{
		re:      regexp.MustCompile(`(^|[^0-9])(\d{4})-(\d{2})-(\d{2})([^0-9]|$)`),
		compact: func(p []string) string { return p[0] + p[1] + p[2] },
	},
	// MM-DD-YYYY
	{
		re:      regexp.MustCompile(`(^|[^0-9])(\d{2})-(\d{2})-(\d{4})([^0-9]|$)`),
		compact: func(p []string) string { return p[2] + p[0] + p[1] },
	},
	// YY-MM-DD with Y2K pivot
	{
		re:      regexp.MustCompile(`(^|[^0-9])(\d{2})-(\d{2})-(\d{2})([^0-9]|$)`),
		compact: func(p []string) string { return pivotYear(p[0]) + p[1] + p[2] },
	},
	// YYYYMMDD, taken verbatim
	{
		re:      regexp.MustCompile(`(^|[^0-9])(\d{8})([^0-9]|$)`),
		compact: func(p []string) string { return p[0] },
	},
	// MMDDYY with Y2K pivot
	{
		re:      regexp.MustCompile(`(^|[^0-9])(\d{6})([^0-9]|$)`),
		compact: func(p []string) string { return pivotYear(p[0][4:]) + p[0][:2] + p[0][2:4] },
	},
}

// pivotYear maps a two-digit year to four digits: 70-99 → 1900s, 00-69 → 2000s.
func pivotYear(yy string) string {
	if yy >= "70" {
		return "19" + yy
	}
	return "20" + yy
}

// extractDate tries the date rules in order against slug. On a match it
// returns the compacted YYYYMMDD string and the slug with the matched date
// substring removed. The remainder still needs re-collapsing.
func extractDate(slug string) (date, remainder string, ok bool) {
	for _, rule := range dateRules {
		idx := rule.re.FindStringSubmatchIndex(slug)
		if idx == nil {
			continue
		}
		// Digit groups are 2..n-1; groups 1 and n are the boundaries.
		n := rule.re.NumSubexp()
		parts := make([]string, 0, n-2)
		for g := 2; g <= n-1; g++ {
			parts = append(parts, slug[idx[2*g]:idx[2*g+1]])
		}
		start, end := idx[4], idx[2*(n-1)+1]
		return rule.compact(parts), slug[:start] + slug[end:], true
	}
	return "", slug, false
}

// cleanRemainder re-collapses a post-extraction remainder and drops the
// filler token "filing" (everything placed here is a filing already).
// An empty remainder falls back to the literal "filing".
func cleanRemainder(s string) string {
	s = hyphenRunRegex.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	tokens := strings.Split(s, "-")
	kept := tokens[:0]
	for _, tok := range tokens {
		if tok == "" || tok == "filing" {
			continue
		}
		kept = append(kept, tok)
	}
	s = strings.Join(kept, "-")

	if s == "" {
		return "filing"
	}
	return s
}

// CanonicalBase computes the canonical base name (no extension) for a
// filename fragment: "{YYYYMMDD}-{remainder}" when a date is found,
// "{remainder}" otherwise.
func CanonicalBase(name string) string {
	slug := Slugify(name)
	date, remainder, ok := extractDate(slug)
	remainder = cleanRemainder(remainder)
	if ok {
		return date + "-" + remainder
	}
	return remainder
}

// CanonicalFilename computes the full canonical filename for filename,
// preserving its extension lower-cased.
func CanonicalFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	return CanonicalBase(base) + strings.ToLower(ext)
}
