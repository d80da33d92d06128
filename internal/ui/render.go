package ui

import (
	"fmt"
	"strings"

	"github.com/five82/logcheck/internal/app"
	"github.com/five82/logcheck/internal/classify"
	"github.com/five82/logcheck/internal/logtail"
	"github.com/five82/logcheck/internal/state"
)

// HighlightLine styles one log line by its classification. The bracketed
// timestamp, when present, is dimmed.
func HighlightLine(line string, kind classify.Kind, s Styles) string {
	prefix, rest := splitTimestamp(line)
	body := s.Text
	switch kind {
	case classify.KindError:
		body = s.DangerText
	case classify.KindNoise:
		body = s.FaintText
	}
	if prefix == "" {
		return body.Render(rest)
	}
	return s.MutedText.Render(prefix) + body.Render(rest)
}

// HighlightLines styles every line using c to classify it.
func HighlightLines(lines []string, c *classify.Classifier, s Styles) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = HighlightLine(line, c.Kind(line), s)
	}
	return out
}

// RenderScan formats a dry run for the terminal.
func RenderScan(res app.ScanResult, s Styles) string {
	var b strings.Builder

	since := "none (cold start, last " + fmt.Sprint(res.Config.TailLines) + " lines)"
	if res.Delta.HasCursor {
		since = state.FormatCursor(res.Delta.Since)
	}
	fmt.Fprintf(&b, "%s %s\n", s.MutedText.Render("log:   "), s.AccentText.Render(res.Config.LogPath))
	fmt.Fprintf(&b, "%s %s\n", s.MutedText.Render("since: "), since)
	fmt.Fprintf(&b, "%s %d\n", s.MutedText.Render("lines: "), len(res.Delta.Lines))

	if len(res.Delta.Lines) > 0 {
		b.WriteString("\n")
		for _, line := range HighlightLines(res.Delta.Lines, classify.New(), s) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if res.Verdict == classify.VerdictBlock {
		fmt.Fprintf(&b, "%s first match %q on line %d\n",
			s.Badge.Inherit(s.DangerText).Render("BLOCK"),
			res.Match.Pattern, res.Match.Index+1)
	} else {
		fmt.Fprintf(&b, "%s no reportable errors\n", s.Badge.Inherit(s.SuccessText).Render("PROCEED"))
	}
	return b.String()
}

// RenderStatus formats the resolved paths and cursor.
func RenderStatus(rep app.StatusReport, s Styles) string {
	var b strings.Builder

	cursor := s.WarningText.Render("none")
	if rep.HasCursor {
		cursor = state.FormatCursor(rep.Cursor)
	}
	logState := ""
	if !rep.LogExists {
		logState = " " + s.WarningText.Render("(missing)")
	}

	fmt.Fprintf(&b, "%s %s\n", s.MutedText.Render("project:"), rep.Config.ProjectDir)
	fmt.Fprintf(&b, "%s %s%s\n", s.MutedText.Render("log:    "), s.AccentText.Render(rep.Config.LogPath), logState)
	fmt.Fprintf(&b, "%s %s\n", s.MutedText.Render("state:  "), rep.Config.StatePath)
	fmt.Fprintf(&b, "%s %s\n", s.MutedText.Render("cursor: "), cursor)
	return b.String()
}

func splitTimestamp(line string) (string, string) {
	if !strings.HasPrefix(line, "[") {
		return "", line
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return "", line
	}
	if _, ok := logtail.ExtractTimestamp(line[:end+1]); !ok {
		return "", line
	}
	return line[:end+1], line[end+1:]
}
