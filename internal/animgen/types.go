package animgen

import "github.com/yacobolo/animgen"

// Preset is one parameter set loaded from a preset file.
type Preset struct {
	Name       string         // "slide-in" (from the file or its base name)
	SourceFile string         // Path the preset was read from
	Params     animgen.Params // Values as written, not yet validated
	Positions  map[string]Pos // Field key -> where its value was written
	Lines      []string       // Source lines, for issue context
	Issues     []Issue        // Problems found while parsing
}

// Pos is a 1-based line/column position in a preset file.
type Pos struct {
	Line   int
	Column int
}

// Config holds batch generation configuration
type Config struct {
	SourceDir string   // "animations"
	OutputDir string   // "generated/animations"
	Includes  []string // ["**/*.yaml", "**/*.css"]
	Verbose   bool     // Enable debug logging
	Clamp     bool     // Clamp out-of-domain presets instead of skipping them
	Workers   int      // Parallel preset parsers (default: 4)
}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesScanned     int
	FilesSkipped     int // Ignored by .gitignore
	PresetsGenerated int
	PresetsClamped   int
	PresetsRejected  int
	Presets          []*Preset
	Issues           []Issue
	Warnings         []string
}

// CheckConfig holds preset checking configuration
type CheckConfig struct {
	SourceDir        string
	Includes         []string
	Verbose          bool
	Strict           bool // Exit with code 1 on warnings too
	PrintIssuedLines bool
	PrintLinterName  bool
	UseColors        bool
}

// CheckResult contains the issues found in preset files
type CheckResult struct {
	FilesScanned int
	Presets      []*Preset
	Issues       []Issue
	ErrorCount   int
	WarningCount int
	Warnings     []string
}

// OutputFormat selects how rendered artifacts are written
type OutputFormat string

const (
	// OutputAll writes every artifact under a styled heading
	OutputAll OutputFormat = "all"
	// OutputCSS writes only the @keyframes rule
	OutputCSS OutputFormat = "css"
	// OutputConfig writes only the Tailwind config extension
	OutputConfig OutputFormat = "config"
	// OutputClasses writes only the class attribute
	OutputClasses OutputFormat = "classes"
	// OutputPreview writes only the inline preview style
	OutputPreview OutputFormat = "preview"
	// OutputJSON exports every artifact as JSON (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown writes a Markdown snippet with fenced code blocks
	OutputMarkdown OutputFormat = "markdown"
)
