package animgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files skipped by .gitignore or the exclude dir
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// A missing .gitignore is fine
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
// Files inside excludeDir (the generator's own output) are always skipped;
// .gitignore only applies to relative paths within the project.
func shouldSkipFile(path, excludeDir string) bool {
	if excludeDir != "" && isWithin(path, excludeDir) {
		return true
	}

	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// isWithin reports whether path lies inside dir
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ScanPresetFiles expands the include patterns below sourceDir into a
// deduplicated, filtered list of preset files in glob order.
func ScanPresetFiles(sourceDir string, includes []string, excludeDir string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match, excludeDir) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}
