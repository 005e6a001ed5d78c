package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	presets "github.com/yacobolo/animgen/internal/animgen"
)

var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check preset files for out-of-domain and unsupported values",
	Long: `Check YAML and CSS preset files without generating anything.
Issues are reported with file, line and column; the command exits
non-zero when any error is found (or any issue with --strict).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.String("source", "animations", "Source directory with preset files")
	f.StringSlice("include", nil, "Glob patterns for preset files to include")
	f.Bool("strict", false, "Fail on warnings as well as errors")
	f.Bool("print-lines", true, "Print the offending source line")
	f.Bool("print-linter-name", true, "Print the linter name after each issue")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	config := buildCheckConfig()

	result, err := presets.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		out := cmd.OutOrStdout()
		reporter := presets.NewReporter(out, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		presets.NewVerboseReporter(out, reporter.UseColors()).PrintWarnings(result.Warnings)
	}

	if result.ErrorCount > 0 || (config.Strict && len(result.Issues) > 0) {
		return fmt.Errorf("%w: %d errors, %d warnings", errCheckFailed, result.ErrorCount, result.WarningCount)
	}

	return nil
}
