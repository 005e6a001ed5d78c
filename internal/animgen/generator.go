package animgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yacobolo/animgen"
	"golang.org/x/sync/errgroup"
)

// Output file suffixes, one per artifact
const (
	SuffixKeyframes = ".css"
	SuffixConfig    = ".tailwind.config.js"
	SuffixClasses   = ".classes.txt"
)

// Generate is the batch entry point: scan preset files, check them and
// render every acceptable preset into config.OutputDir.
func Generate(ctx context.Context, config Config) (*GenerateResult, error) {
	result := &GenerateResult{}

	// 1. Scan preset files
	files, stats, err := ScanPresetFiles(config.SourceDir, config.Includes, config.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = len(files)
	result.FilesSkipped = stats.FilesSkipped

	if config.Verbose {
		fmt.Printf("Found %d preset files\n", len(files))
	}

	// 2. Parse all files
	presets, warnings, err := processFiles(ctx, files, config)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	result.Warnings = warnings

	// 3. Check and optionally clamp
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	written := make(map[string]string)
	for _, preset := range presets {
		issues := CheckPreset(preset)
		result.Issues = append(result.Issues, issues...)

		// Unparseable values cannot be clamped
		if hasErrors(preset.Issues) {
			result.PresetsRejected++
			continue
		}

		if hasErrors(issues) && !config.Clamp {
			result.PresetsRejected++
			if config.Verbose {
				fmt.Printf("Skipping %s: %v\n", preset.SourceFile, preset.Params.Validate())
			}
			continue
		}

		// Out-of-range values (with clamp) and off-step warnings are snapped into the domain
		if err := preset.Params.Validate(); err != nil {
			preset.Params = preset.Params.Clamp()
			result.PresetsClamped++
		}

		if prev, dup := written[preset.Name]; dup {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Preset %q in %s already generated from %s", preset.Name, preset.SourceFile, prev))
			continue
		}

		// 4. Write artifacts
		if err := writePreset(config.OutputDir, preset); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		written[preset.Name] = preset.SourceFile
		result.Presets = append(result.Presets, preset)
		result.PresetsGenerated++

		if config.Verbose {
			fmt.Printf("Generated %s (%s)\n", preset.Name, animgen.Shorthand(preset.Params))
		}
	}

	return result, nil
}

// processFiles parses preset files concurrently. Results keep file order;
// files that fail to parse become warnings.
func processFiles(ctx context.Context, files []string, config Config) ([]*Preset, []string, error) {
	parsed := make([]*Preset, len(files))
	failures := make([]error, len(files))

	workers := config.Workers
	if workers <= 0 {
		workers = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if config.Verbose {
				fmt.Printf("Parsing %s\n", file)
			}
			preset, err := parseFile(file)
			if err != nil {
				failures[i] = err
				return nil
			}
			parsed[i] = preset
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var presets []*Preset
	var warnings []string
	for i, file := range files {
		if failures[i] != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to parse %s: %v", file, failures[i]))
			continue
		}
		presets = append(presets, parsed[i])
	}

	return presets, warnings, nil
}

// writePreset writes the three textual artifacts of one preset
func writePreset(dir string, preset *Preset) error {
	outputs := []struct {
		suffix  string
		content string
	}{
		{SuffixKeyframes, animgen.Keyframes(preset.Params)},
		{SuffixConfig, animgen.ConfigExtension(preset.Params)},
		{SuffixClasses, animgen.UtilityClasses(preset.Params)},
	}

	for _, out := range outputs {
		// Names come from preset files; keep them inside dir
		path := filepath.Join(dir, filepath.Base(preset.Name)+out.suffix)
		if err := os.WriteFile(path, []byte(out.content+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
