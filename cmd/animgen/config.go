package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/animgen"
	presets "github.com/yacobolo/animgen/internal/animgen"
)

var k = koanf.New(".")

// Top-level config sections; env var names map onto these
var configSections = []string{"animation", "render", "generate", "check", "preview"}

// Default preset file patterns, relative to the source dir
var defaultIncludes = []string{"**/*.yaml", "**/*.yml", "**/*.css"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	if err := loadConfigFromPath(configPath(cmd)); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags the user actually set)
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// configPath resolves the config file path from the --config flag
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = ".animgen.yaml"
	}
	return path
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (ANIMGEN_* prefix)
	if err := k.Load(env.Provider("ANIMGEN_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
//
//	ANIMGEN_ANIMATION_TRANSLATE_X -> animation.translate-x
//	ANIMGEN_GENERATE_OUTPUT_DIR   -> generate.output-dir
//	ANIMGEN_VERBOSE               -> verbose
func envKey(s string) string {
	parts := strings.Split(strings.ToLower(strings.TrimPrefix(s, "ANIMGEN_")), "_")
	for _, section := range configSections {
		if parts[0] == section && len(parts) > 1 {
			return section + "." + strings.Join(parts[1:], "-")
		}
	}
	return strings.Join(parts, "-")
}

// buildParams assembles animation parameters field by field from koanf state
func buildParams() animgen.Params {
	p := animgen.DefaultParams()
	for _, f := range animgen.Fields() {
		p, _ = p.With(f.Key, getIntWithFallback(f.Key, "animation."+f.Key, f.Get(p)))
	}
	return p
}

// includesWithFallback returns the preset include patterns
func includesWithFallback() []string {
	if includes := k.Strings("include"); len(includes) > 0 {
		return includes
	}
	if includes := k.Strings("generate.include"); len(includes) > 0 {
		return includes
	}
	return defaultIncludes
}

// buildGenerateConfig constructs the batch generator config from koanf state.
func buildGenerateConfig() presets.Config {
	return presets.Config{
		SourceDir: getStringWithFallback("source", "generate.source", "animations"),
		OutputDir: getStringWithFallback("output-dir", "generate.output-dir", "generated/animations"),
		Includes:  includesWithFallback(),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
		Clamp:     getBoolWithFallback("clamp", "generate.clamp", false),
		Workers:   getIntWithFallback("workers", "generate.workers", 4),
	}
}

// buildCheckConfig constructs the preset checker config from koanf state.
func buildCheckConfig() presets.CheckConfig {
	return presets.CheckConfig{
		SourceDir:        getStringWithFallback("source", "generate.source", "animations"),
		Includes:         includesWithFallback(),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		Strict:           getBoolWithFallback("strict", "check.strict", false),
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
