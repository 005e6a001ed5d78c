package preview

import (
	"errors"
	"fmt"
	"sync"

	"github.com/yacobolo/animgen"
)

// ErrClosed is returned by Apply after Close.
var ErrClosed = errors.New("preview: session closed")

// Selector is the class of the element the preview stylesheet animates.
const Selector = ".animgen-preview"

// Stylesheet returns the keyframes of p followed by a rule that runs the
// animation on Selector, mirroring the inline preview style.
func Stylesheet(p animgen.Params) string {
	style := animgen.PreviewStyle(p)
	return fmt.Sprintf("%s\n\n%s {\n  animation: %s;\n  transform: %s;\n}",
		animgen.Keyframes(p), Selector, style.Animation, style.Transform)
}

// Session owns at most one acquired stylesheet. Every Apply releases the
// previous sheet before acquiring the next; Close releases the last one.
type Session struct {
	mu      sync.Mutex
	sink    Sink
	current Handle
	params  animgen.Params
	closed  bool
}

// NewSession creates a session that has not acquired anything yet.
func NewSession(sink Sink) *Session {
	return &Session{sink: sink}
}

// Apply replaces the live stylesheet with the Stylesheet of p.
func (s *Session) Apply(p animgen.Params) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	if err := s.releaseLocked(); err != nil {
		return err
	}

	h, err := s.sink.Acquire(Stylesheet(p))
	if err != nil {
		return fmt.Errorf("acquire preview: %w", err)
	}
	s.current = h
	s.params = p
	return nil
}

// Params returns the parameters last applied.
func (s *Session) Params() animgen.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Close releases the live stylesheet. Closing twice is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.releaseLocked()
}

func (s *Session) releaseLocked() error {
	if s.current == nil {
		return nil
	}
	h := s.current
	s.current = nil
	if err := h.Release(); err != nil {
		return fmt.Errorf("release preview: %w", err)
	}
	return nil
}
