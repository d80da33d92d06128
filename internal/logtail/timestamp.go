package logtail

import (
	"regexp"
	"time"
)

// Matches [2026-01-28T09:01:19.217Z]
var timestampRe = regexp.MustCompile(`\[(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d+Z)\]`)

// ExtractTimestamp returns the bracketed UTC timestamp embedded in line. The
// second result is false when the line has none or it is not a real calendar
// time.
func ExtractTimestamp(line string) (time.Time, bool) {
	m := timestampRe.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, m[1])
	if err != nil {
		return time.Time{}, false
	}
	return ts.UTC(), true
}
