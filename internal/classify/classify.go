// Package classify decides whether a log delta contains real application
// errors. Noise patterns are checked before error patterns on every line, so
// a benign line never triggers a block even when it mentions an error.
package classify

import (
	"regexp"
	"strings"
)

// Verdict is the outcome of classifying a delta.
type Verdict int

const (
	VerdictProceed Verdict = iota + 1
	VerdictBlock
)

// String returns the lowercase verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictProceed:
		return "proceed"
	case VerdictBlock:
		return "block"
	default:
		return "unspecified"
	}
}

type pattern struct {
	name string
	re   *regexp.Regexp
	// reject, when set, vetoes a match. RE2 has no lookahead, so negative
	// lookaheads are expressed here.
	reject func(line string, loc []int) bool
}

func (p pattern) match(line string) bool {
	if p.reject == nil {
		return p.re.MatchString(line)
	}
	for _, loc := range p.re.FindAllStringIndex(line, -1) {
		if !p.reject(line, loc) {
			return true
		}
	}
	return false
}

func literal(s string) pattern {
	return pattern{name: s, re: regexp.MustCompile(regexp.QuoteMeta(s))}
}

// Lines to skip even if they contain an error marker. Dev-server request
// logging is noise except for /table routes, which carry app traffic.
var noisePatterns = []pattern{
	literal("/symbolicate"),
	literal(`"is not valid JSON"`),
	{
		name: "dev server request",
		re:   regexp.MustCompile(`request (?:start|finish) (?:GET|POST|PUT|DELETE) /`),
		reject: func(line string, loc []int) bool {
			return strings.HasPrefix(line[loc[1]:], "table")
		},
	},
}

// Real app errors, not bundler chatter.
var errorPatterns = []pattern{
	literal("level=error"),
	literal("ReferenceError"),
	literal("TypeError"),
	literal("SyntaxError"),
	literal("RangeError"),
	literal("URIError"),
	literal("EvalError"),
	literal("Invariant Violation"),
	literal("Fatal"),
	literal("FATAL"),
	literal("Unhandled promise rejection"),
	literal("Cannot read propert"),
	literal("undefined is not an object"),
	literal("null is not an object"),
	literal("is not a function"),
	literal("Module not found"),
	literal("Unable to resolve module"),
}

// Kind labels a single line.
type Kind int

const (
	KindPlain Kind = iota
	KindNoise
	KindError
)

// Match describes the first line that made a delta reportable.
type Match struct {
	Index   int
	Line    string
	Pattern string
}

// Classifier applies the fixed noise and error pattern sets.
type Classifier struct {
	noise  []pattern
	errors []pattern
}

// New returns a Classifier with the built-in pattern sets.
func New() *Classifier {
	return &Classifier{noise: noisePatterns, errors: errorPatterns}
}

// Kind reports how a single line is classified.
func (c *Classifier) Kind(line string) Kind {
	if firstMatch(c.noise, line) != "" {
		return KindNoise
	}
	if firstMatch(c.errors, line) != "" {
		return KindError
	}
	return KindPlain
}

// FirstError returns the first non-noise line matching an error pattern.
func (c *Classifier) FirstError(lines []string) (Match, bool) {
	for i, line := range lines {
		if firstMatch(c.noise, line) != "" {
			continue
		}
		if name := firstMatch(c.errors, line); name != "" {
			return Match{Index: i, Line: line, Pattern: name}, true
		}
	}
	return Match{}, false
}

// HasError reports whether any non-noise line matches an error pattern.
func (c *Classifier) HasError(lines []string) bool {
	_, ok := c.FirstError(lines)
	return ok
}

// Classify maps HasError onto a Verdict.
func (c *Classifier) Classify(lines []string) Verdict {
	if c.HasError(lines) {
		return VerdictBlock
	}
	return VerdictProceed
}

func firstMatch(patterns []pattern, line string) string {
	for _, p := range patterns {
		if p.match(line) {
			return p.name
		}
	}
	return ""
}
