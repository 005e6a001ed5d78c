package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/animgen"
	presets "github.com/yacobolo/animgen/internal/animgen"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render keyframes, Tailwind config and utility classes for one parameter set",
	Long: `Render the four artifacts for a single set of animation parameters.
Parameters come from flags, ANIMGEN_ANIMATION_* environment variables or
the animation section of the config file.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRender,
}

func init() {
	addParamFlags(renderCmd.Flags())
	addRenderFlags(renderCmd.Flags())
}

// addParamFlags registers one int flag per animation parameter
func addParamFlags(f *pflag.FlagSet) {
	defaults := animgen.DefaultParams()
	for _, field := range animgen.Fields() {
		r := field.Range
		usage := fmt.Sprintf("%s [%d..%d, step %d]", field.Name, r.Min, r.Max, r.Step)
		if field.Unit != "" {
			usage = fmt.Sprintf("%s in %s [%d..%d, step %d]", field.Name, field.Unit, r.Min, r.Max, r.Step)
		}
		if field.Key == "iteration" {
			usage += ", 0 = infinite"
		}
		f.Int(field.Key, field.Get(defaults), usage)
	}
}

func addRenderFlags(f *pflag.FlagSet) {
	f.String("format", "all", "Output format: all|css|config|classes|preview|json|markdown")
	f.Bool("clamp", false, "Clamp out-of-domain parameters instead of failing")
}

func runRender(cmd *cobra.Command, _ []string) error {
	clamp := getBoolWithFallback("clamp", "render.clamp", false)
	p, err := resolveParams(buildParams(), clamp, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	format := presets.DetermineOutputFormat(getStringWithFallback("format", "render.format", "all"))
	useColors := presets.ShouldUseColors(getBoolWithFallback("color", "color", false))

	return presets.WriteArtifacts(cmd.OutOrStdout(), p, format, useColors)
}

// resolveParams validates p. Invalid parameters are an error unless clamp
// is set, in which case they are clamped and a warning goes to stderr.
func resolveParams(p animgen.Params, clamp bool, stderr io.Writer) (animgen.Params, error) {
	err := p.Validate()
	if err == nil {
		return p, nil
	}
	if !clamp {
		return p, fmt.Errorf("%w (use --clamp to coerce)", err)
	}

	clamped := p.Clamp()
	fmt.Fprintf(stderr, "Warning: %v\n", err)
	fmt.Fprintf(stderr, "Warning: clamped to %s\n", animgen.PreviewStyle(clamped))
	return clamped, nil
}
