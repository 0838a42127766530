// Package clipboard wraps system clipboard access behind a small interface
// so the poller and tests can substitute implementations.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard reads and writes the system clipboard text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System is the OS-backed clipboard.
type System struct{}

// NewSystem returns a clipboard backed by the operating system.
func NewSystem() *System {
	return &System{}
}

func (s *System) ReadText() (string, error) {
	return clipboard.ReadAll()
}

func (s *System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Memory is an in-memory clipboard used in tests and headless environments.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.text, nil
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.text = text

	return nil
}
