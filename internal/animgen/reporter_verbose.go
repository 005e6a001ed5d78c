package animgen

import (
	"fmt"
	"io"

	"github.com/yacobolo/animgen"
)

// VerboseReporter prints generation statistics and per-preset details
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs generation counts
func (r *VerboseReporter) PrintStatistics(result GenerateResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Generation Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------")

	fmt.Fprintf(r.w, "Files Scanned:     %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Ignored:     %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Presets Generated: %d\n", result.PresetsGenerated)
	fmt.Fprintf(r.w, "Presets Clamped:   %d\n", result.PresetsClamped)
	fmt.Fprintf(r.w, "Presets Rejected:  %d\n", result.PresetsRejected)
}

// PrintPresets lists every generated preset with its shorthand and transform
func (r *VerboseReporter) PrintPresets(result GenerateResult) {
	if len(result.Presets) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Presets", r.useColors))
	fmt.Fprintln(r.w, "-------")

	for i, preset := range result.Presets {
		fmt.Fprintf(r.w, "%d. %s %s\n", i+1, preset.Name,
			RenderStyle(StyleGray, "("+preset.SourceFile+")", r.useColors))
		fmt.Fprintf(r.w, "   animation: %s\n", animgen.Shorthand(preset.Params))
		fmt.Fprintf(r.w, "   transform: %s\n", animgen.Transform(preset.Params))
	}
}

// PrintWarnings shows non-fatal problems
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
