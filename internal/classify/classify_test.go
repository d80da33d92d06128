package classify

import (
	"fmt"
	"testing"
)

func TestHasError(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{"empty delta", nil, false},
		{"plain output", []string{"[2026-01-28T09:01:19.217Z] bundled 312 modules"}, false},
		{"level error", []string{"[2026-01-28T09:01:19.217Z] level=error disk full"}, true},
		{"type error", []string{"TypeError: x is undefined"}, true},
		{"reference error", []string{"ReferenceError: foo is not defined"}, true},
		{"fatal", []string{"Fatal: out of memory"}, true},
		{"FATAL", []string{"FATAL crash"}, true},
		{"invariant", []string{"Invariant Violation: bad hook call"}, true},
		{"unhandled rejection", []string{"Possible Unhandled promise rejection (id: 0)"}, true},
		{"cannot read", []string{"Cannot read properties of undefined (reading 'map')"}, true},
		{"undefined object", []string{"undefined is not an object (evaluating 'a.b')"}, true},
		{"null object", []string{"null is not an object"}, true},
		{"not a function", []string{"foo.bar is not a function"}, true},
		{"module not found", []string{"Module not found: Can't resolve './x'"}, true},
		{"unable to resolve", []string{"Unable to resolve module ./Foo from App.tsx"}, true},
		{"lowercase error word alone", []string{"error count: 0"}, false},
		{"lowercase fatal is not a marker", []string{"non-fatal warning"}, false},
		{"symbolicate noise", []string{"POST /symbolicate TypeError in frame"}, false},
		{"json noise", []string{`SyntaxError: Unexpected token "is not valid JSON"`}, false},
		{"request noise", []string{"request start GET /assets level=error"}, false},
		{"request finish noise", []string{"request finish DELETE /api/x TypeError"}, false},
		{"table request is not noise", []string{"request finish POST /table/notes level=error"}, true},
		{"table route then noise route", []string{"request start GET /table request finish GET /a level=error"}, false},
		{"noise then real error", []string{"POST /symbolicate TypeError", "RangeError: bad length"}, true},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.HasError(tt.lines); got != tt.want {
				t.Fatalf("HasError(%q) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestNoisePrecedence(t *testing.T) {
	c := New()
	for _, p := range errorPatterns {
		line := fmt.Sprintf("GET /symbolicate %s", p.name)
		if c.HasError([]string{line}) {
			t.Errorf("noise line %q produced an error verdict", line)
		}
		if got := c.Kind(line); got != KindNoise {
			t.Errorf("Kind(%q) = %v, want KindNoise", line, got)
		}
	}
}

func TestFirstError(t *testing.T) {
	c := New()
	lines := []string{
		"[2026-01-28T09:01:19.217Z] bundling",
		"[2026-01-28T09:01:19.300Z] TypeError: x",
		"[2026-01-28T09:01:19.400Z] level=error later",
	}
	m, ok := c.FirstError(lines)
	if !ok {
		t.Fatalf("FirstError ok = false, want true")
	}
	if m.Index != 1 || m.Pattern != "TypeError" || m.Line != lines[1] {
		t.Fatalf("FirstError = %+v, want index 1 TypeError", m)
	}

	if _, ok := c.FirstError(lines[:1]); ok {
		t.Fatalf("FirstError ok = true for clean lines, want false")
	}
}

func TestScenarioTypeErrorFollowedByNoise(t *testing.T) {
	c := New()
	lines := []string{
		"[2026-01-28T09:01:19.217Z] TypeError: x",
		"[2026-01-28T09:01:19.218Z] request start POST /symbolicate",
	}
	if got := c.Classify(lines); got != VerdictBlock {
		t.Fatalf("Classify = %v, want block", got)
	}
	if got := c.Classify(lines[1:]); got != VerdictProceed {
		t.Fatalf("Classify(noise only) = %v, want proceed", got)
	}
}

func TestKind(t *testing.T) {
	c := New()
	tests := []struct {
		line string
		want Kind
	}{
		{"plain", KindPlain},
		{"level=error boom", KindError},
		{"/symbolicate level=error", KindNoise},
	}
	for _, tt := range tests {
		if got := c.Kind(tt.line); got != tt.want {
			t.Errorf("Kind(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestVerdictString(t *testing.T) {
	if VerdictProceed.String() != "proceed" || VerdictBlock.String() != "block" {
		t.Fatalf("unexpected verdict names %q %q", VerdictProceed, VerdictBlock)
	}
	if Verdict(0).String() != "unspecified" {
		t.Fatalf("zero verdict = %q, want unspecified", Verdict(0))
	}
}
