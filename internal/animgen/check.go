package animgen

import (
	"errors"
	"fmt"

	"github.com/yacobolo/animgen"
)

// CheckPreset returns the parse issues of p plus one issue per field
// outside its domain. Out-of-range values are errors, off-step values warnings.
func CheckPreset(p *Preset) []Issue {
	issues := append([]Issue(nil), p.Issues...)

	for _, field := range animgen.Fields() {
		fe := animgen.CheckField(field, field.Get(p.Params))
		if fe == nil {
			continue
		}

		severity := SeverityError
		if errors.Is(fe, animgen.ErrOffStep) {
			severity = SeverityWarning
		}

		pos, ok := p.Positions[field.Key]
		if !ok {
			pos = Pos{Line: 1, Column: 1}
		}

		issues = append(issues, Issue{
			FromLinter:  LinterName,
			Text:        fe.Error(),
			Severity:    severity,
			SourceLines: p.sourceLine(pos.Line),
			Pos: IssuePos{
				Filename: p.SourceFile,
				Line:     pos.Line,
				Column:   pos.Column,
			},
		})
	}

	return issues
}

// hasErrors reports whether any issue is error severity
func hasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Check scans preset files and reports every issue without generating anything
func Check(config CheckConfig) (*CheckResult, error) {
	files, stats, err := ScanPresetFiles(config.SourceDir, config.Includes, "")
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Checking %d preset files (%d ignored)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	result := &CheckResult{FilesScanned: len(files)}
	for _, file := range files {
		preset, err := parseFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		result.Presets = append(result.Presets, preset)
		result.Issues = append(result.Issues, CheckPreset(preset)...)
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}
