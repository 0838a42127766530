//go:build !bolt && !sqlite

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/inovacc/clipr/internal/model"
)

// DefaultFilename is the history file name used when none is configured.
const DefaultFilename = "history.json"

// JSON persists the history as a single JSON document holding the ordered
// entry array. The whole file is rewritten on every mutation; there is one
// writer by design, so no cross-process locking is attempted.
type JSON struct {
	path       string
	maxEntries int

	mu      sync.RWMutex
	entries []model.ClipEntry
}

// Open loads (or starts) a JSON-backed history at the given path. An absent,
// empty, or malformed file yields an empty history.
func Open(path string, opts Options) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	s := &JSON{
		path:       path,
		maxEntries: opts.MaxEntries,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *JSON) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("reading history file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	var entries []model.ClipEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("history file is malformed, starting empty", "path", s.path, "error", err)
		return nil
	}

	s.entries = entries

	return nil
}

func (s *JSON) persist() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}

	return nil
}

func (s *JSON) Ping() error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}

func (s *JSON) Load() ([]model.ClipEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ClipEntry, len(s.entries))
	copy(out, s.entries)

	return out, nil
}

func (s *JSON) Append(entry model.ClipEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Adjacent-duplicate rule: same text as the newest entry is a no-op.
	if n := len(s.entries); n > 0 && s.entries[n-1].Text == entry.Text {
		return false, nil
	}

	s.entries = append(s.entries, entry)

	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		s.entries = s.entries[len(s.entries)-s.maxEntries:]
	}

	return true, s.persist()
}

func (s *JSON) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.persist()
		}
	}

	return ErrNotFound
}

func (s *JSON) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	return s.persist()
}

func (s *JSON) Search(term string) ([]model.ClipEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(term)

	var out []model.ClipEntry

	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Text), needle) {
			out = append(out, e)
		}
	}

	return out, nil
}

func (s *JSON) FilterByCategory(category model.Category) ([]model.ClipEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.ClipEntry

	for _, e := range s.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}

	return out, nil
}

func (s *JSON) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries), nil
}

func (s *JSON) Close() error {
	return nil
}
