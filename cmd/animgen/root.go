package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "animgen",
	Short: "CSS animation generator for keyframes, Tailwind config and utility classes",
	Long: `Generate a CSS @keyframes rule, a Tailwind config extension and a utility
class string from one set of animation parameters (duration, delay,
iteration count, translate, rotate, scale).`,
	// Default behavior: run render when no subcommand is given.
	// loadConfig is called here because PreRunE of renderCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runRender(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".animgen.yaml", "Config file path")

	// The root command renders too, so it takes the same parameter flags
	addParamFlags(rootCmd.Flags())
	addRenderFlags(rootCmd.Flags())

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
