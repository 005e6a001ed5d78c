package animgen

// Issue represents a single preset problem in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "animcheck"
	Text        string   `json:"Text"`        // "duration: 9000ms outside [100, 5000]"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the preset with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "animations/slide-in.yaml"
	Line     int    `json:"Line"`     // 3
	Column   int    `json:"Column"`   // 11 (1-based, start of the value)
}

// LinterName is reported as the source of every issue
const LinterName = "animcheck"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue text templates
const (
	IssueUnknownKey       = "unknown preset key %q"
	IssueBadValue         = "%s: cannot parse %q as integer"
	IssueUnsupportedFunc  = "unsupported transform function %q"
	IssueUnsupportedUnit  = "%s: unsupported unit in %q"
	IssueMissingKeyframes = "no @keyframes rule with a 100%% or to block found"
)
