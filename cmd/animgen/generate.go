package main

import (
	"fmt"

	"github.com/spf13/cobra"
	presets "github.com/yacobolo/animgen/internal/animgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Render every preset file into an output directory",
	Long: `Scan YAML and CSS preset files, check them and write one keyframes
stylesheet, Tailwind config extension and utility class file per preset.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", "animations", "Source directory with preset files")
	f.String("output-dir", "generated/animations", "Output directory for generated files")
	f.StringSlice("include", nil, "Glob patterns for preset files to include")
	f.Int("workers", 4, "Number of preset files parsed concurrently")
	f.Bool("clamp", false, "Clamp out-of-domain presets instead of skipping them")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	result, err := presets.Generate(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		out := cmd.OutOrStdout()
		useColors := presets.ShouldUseColors(getBoolWithFallback("color", "color", false))

		fmt.Fprintf(out, "Generated %d presets in %s\n", result.PresetsGenerated, config.OutputDir)

		reporter := presets.NewVerboseReporter(out, useColors)
		if config.Verbose {
			reporter.PrintStatistics(*result)
			reporter.PrintPresets(*result)
		}
		reporter.PrintWarnings(result.Warnings)

		if len(result.Issues) > 0 {
			checkConfig := buildCheckConfig()
			checkConfig.UseColors = useColors
			fmt.Fprintln(out, "")
			presets.NewReporter(out, checkConfig).PrintIssues(result.Issues)
		}
	}

	if result.PresetsRejected > 0 {
		return fmt.Errorf("%d preset(s) rejected (use --clamp to coerce out-of-range values)", result.PresetsRejected)
	}

	return nil
}
