package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .animgen.yaml config file",
	Long:  `Create a .animgen.yaml configuration file with the default animation parameters and tooling settings.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := configPath(cmd)

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# animgen configuration
# Precedence: flags > ANIMGEN_* environment variables > this file > defaults

verbose: false

# Animation parameters used by render and preview
animation:
  duration: 1000     # ms, 100..5000 step 100
  delay: 0           # ms, 0..2000 step 100
  iteration: 1       # 0..10, 0 = infinite
  translate-x: 0     # px, -200..200 step 5
  translate-y: 0     # px, -200..200 step 5
  rotate: 0          # deg, -360..360 step 5
  scale: 100         # percent, 50..200 step 5

# Render settings
render:
  format: all        # all | css | config | classes | preview | json | markdown
  clamp: false

# Batch generation from preset files
generate:
  source: animations
  output-dir: generated/animations
  include:
    - "**/*.yaml"
    - "**/*.yml"
    - "**/*.css"
  workers: 4
  clamp: false

# Preset checking
check:
  strict: false
  print-lines: true
  print-linter-name: true

# Live preview
preview:
  frames: 10
  stylesheet: ""
  watch: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
