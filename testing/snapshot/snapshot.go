// Package snapshot provides golden file and ANSI-free output checks for TUI
// components.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/ansi"
)

// GoldenDir is the default directory for golden files
const GoldenDir = "testdata/golden"

// UpdateEnvVar switches Assert into rewrite mode when set to "1".
const UpdateEnvVar = "UPDATE_GOLDEN"

var (
	csiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
	oscRegex = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap provides snapshot testing functionality
type Snap struct {
	t         testing.TB
	goldenDir string
	update    bool
}

// New creates a new Snap instance for the given test
func New(t testing.TB) *Snap {
	return &Snap{
		t:         t,
		goldenDir: GoldenDir,
		update:    os.Getenv(UpdateEnvVar) == "1",
	}
}

// WithDir sets a custom golden file directory
func (s *Snap) WithDir(dir string) *Snap {
	s.goldenDir = dir
	return s
}

// WithUpdate forces rewrite mode on or off regardless of the environment.
func (s *Snap) WithUpdate(update bool) *Snap {
	s.update = update
	return s
}

// Assert compares actual output against a golden file.
// In update mode it rewrites the golden file instead.
func (s *Snap) Assert(name, actual string) {
	s.t.Helper()

	goldenPath := filepath.Join(s.goldenDir, name+".golden")
	normalized := normalizeOutput(actual)

	if s.update {
		if err := os.MkdirAll(s.goldenDir, 0755); err != nil {
			s.t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(normalized), 0644); err != nil {
			s.t.Fatalf("failed to write golden file: %v", err)
		}
		s.t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.t.Fatalf("Golden file not found: %s\nRun with %s=1 to create it.\nActual output:\n%s",
				goldenPath, UpdateEnvVar, normalized)
		}
		s.t.Fatalf("failed to read golden file: %v", err)
	}

	if string(expected) != normalized {
		s.t.Errorf("Snapshot mismatch for %s\n\nExpected:\n%s\n\nActual:\n%s\n\nRun with %s=1 to update.",
			name, string(expected), normalized, UpdateEnvVar)
	}
}

// AssertContains checks that actual output contains the expected substring
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that actual output does NOT contain the substring
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// normalizeOutput strips ANSI codes and normalizes whitespace for comparison
func normalizeOutput(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes CSI and OSC 8 escape sequences from a string
func StripANSI(s string) string {
	return oscRegex.ReplaceAllString(csiRegex.ReplaceAllString(s, ""), "")
}

// Lines returns the line count of the rendered output (useful for height tests)
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Line returns row n of the rendered output without escape codes, or "" when
// there is no such row.
func Line(s string, n int) string {
	lines := strings.Split(StripANSI(s), "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}

// Width returns the widest line in terminal cells.
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		maxWidth = max(maxWidth, ansi.PrintableRuneWidth(line))
	}
	return maxWidth
}

// Column returns the cell column of the first occurrence of substr in row n,
// or -1 when it does not occur.
func Column(s string, n int, substr string) int {
	line := Line(s, n)
	i := strings.Index(line, substr)
	if i < 0 {
		return -1
	}
	return ansi.PrintableRuneWidth(line[:i])
}
