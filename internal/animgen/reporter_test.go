package animgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "yaml value",
			sourceLine: "duration: 9000",
			column:     11,
			want:       "          ^",
		},
		{
			name:       "tabbed css declaration",
			sourceLine: "\t\ttransform: skew(10deg);",
			column:     14,
			want:       "\t\t           ^",
		},
		{
			name:       "start of line",
			sourceLine: "rotate: 400",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReporterPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, CheckConfig{PrintIssuedLines: true, PrintLinterName: true})
	reporter.useColors = false

	issues := []Issue{
		{
			FromLinter:  LinterName,
			Text:        "scale: 10% outside [50, 200]",
			Severity:    SeverityError,
			SourceLines: []string{"scale: 10"},
			Pos:         IssuePos{Filename: "b.yaml", Line: 4, Column: 8},
		},
		{
			FromLinter: LinterName,
			Text:       `unknown preset key "opacity"`,
			Severity:   SeverityWarning,
			Pos:        IssuePos{Filename: "a.yaml", Line: 2, Column: 1},
		},
	}
	reporter.PrintIssues(issues)

	want := "a.yaml:2:1: unknown preset key \"opacity\" (animcheck)\n" +
		"b.yaml:4:8: scale: 10% outside [50, 200] (animcheck)\n" +
		"\tscale: 10\n" +
		"\t       ^\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, "b.yaml", issues[0].Pos.Filename, "input order is left untouched")
}

func TestReporterPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary(CheckResult{
		FilesScanned: 3,
		Issues:       make([]Issue, 2),
		ErrorCount:   1,
		WarningCount: 1,
	})
	assert.Contains(t, buf.String(), "2 issues (1 error, 1 warning) in 3 files")
	assert.Contains(t, buf.String(), "--clamp")

	buf.Reset()
	reporter.PrintSummary(CheckResult{FilesScanned: 1})
	assert.Contains(t, buf.String(), "0 issues in 1 file")
	assert.Contains(t, buf.String(), "All presets are within range")
}
