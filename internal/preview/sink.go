// Package preview keeps a live preview stylesheet in sync with the current
// animation parameters and samples the animation frame by frame.
package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sink accepts a stylesheet for as long as the returned Handle is held.
type Sink interface {
	Acquire(css string) (Handle, error)
}

// Handle releases a stylesheet previously acquired from a Sink.
type Handle interface {
	Release() error
}

// ErrReleased is returned when a handle is released twice.
var ErrReleased = errors.New("preview: handle already released")

// FileSink writes the stylesheet to Path and removes it on release.
// Only one handle should be held at a time; Session enforces this.
type FileSink struct {
	Path string
}

// Acquire writes css to the sink's path, creating parent directories.
func (s FileSink) Acquire(css string) (Handle, error) {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create stylesheet dir: %w", err)
	}

	// Write to a temp file and rename so readers never see a partial sheet
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(css+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("write stylesheet: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("write stylesheet: %w", err)
	}

	return &fileHandle{path: s.Path}, nil
}

type fileHandle struct {
	path     string
	released bool
}

func (h *fileHandle) Release() error {
	if h.released {
		return ErrReleased
	}
	h.released = true
	if err := os.Remove(h.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stylesheet: %w", err)
	}
	return nil
}
