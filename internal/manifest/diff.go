package manifest

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

const diffMaxLines = 40

// Diff returns a unified diff between the existing manifest contents and the
// pinned set, truncated to a readable length. Empty when they already match.
func Diff(existing string) string {
	if existing == Body() {
		return ""
	}
	diff := udiff.Unified(DefaultFileName, DefaultFileName+" (pinned)", existing, Body())
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	if len(lines) > diffMaxLines {
		lines = append(lines[:diffMaxLines], "...")
	}
	return strings.Join(lines, "\n")
}
