package ticker

import (
	"regexp"
	"strings"
)

// unsafeRuns matches every run of characters that cannot appear in a
// filesystem path segment we produce.
var unsafeRuns = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)

// Normalize trims surrounding whitespace and upper-cases a raw ticker
// as entered by the operator. An empty result means no ticker was given.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// FolderName maps a ticker to a folder-safe name: "CBA.AX" -> "CBA_AX".
// Dots become underscores first so exchange suffixes stay readable, then
// any remaining run of unsafe characters collapses to a single underscore.
// Total and idempotent; never fails.
func FolderName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "_")
	return unsafeRuns.ReplaceAllString(s, "_")
}
