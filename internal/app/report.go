package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// BuildExcerpt joins the delta for display, keeping only the last limit lines.
// When lines are dropped a marker pointing at the full log comes first.
func BuildExcerpt(lines []string, limit int, logLabel string) string {
	if limit > 0 && len(lines) > limit {
		kept := make([]string, 0, limit+1)
		kept = append(kept, fmt.Sprintf("... (earlier lines truncated, see %s)", logLabel))
		kept = append(kept, lines[len(lines)-limit:]...)
		lines = kept
	}
	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace)
}

// BlockReason wraps an excerpt in the instructions shown to the agent.
func BlockReason(excerpt, logLabel string) string {
	return fmt.Sprintf(
		"Errors detected in %s since your last changes. "+
			"Review the logs below and fix the issues before finishing.\n\n"+
			"--- %s (since last check) ---\n%s\n--- end ---",
		logLabel, filepath.Base(logLabel), excerpt,
	)
}
