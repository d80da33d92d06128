// Package ui renders logcheck's human-facing output (the scan and status
// commands) with Lipgloss. The hook response itself never goes through here.
//
// Log lines are colored by classification: error lines in the theme's danger
// color, noise lines faint, the leading timestamp muted. When stdout is not a
// terminal the caller uses PlainStyles and the output is plain text.
package ui
