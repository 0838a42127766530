package store

import (
	"errors"

	"github.com/inovacc/clipr/internal/model"
)

// ErrNotFound is returned when an entry id does not exist in the history.
var ErrNotFound = errors.New("store: entry not found")

// Store defines the history operations used by the app. Implementations
// keep entries in capture order and enforce the adjacent-duplicate rule:
// an append whose text equals the newest entry's text is a no-op.
type Store interface {
	Ping() error

	// Load returns all entries in capture order.
	Load() ([]model.ClipEntry, error)

	// Append adds an entry to the history and persists it. It reports
	// whether the entry was stored; an adjacent duplicate is skipped.
	Append(entry model.ClipEntry) (bool, error)

	// Remove deletes the entry with the given id.
	Remove(id string) error

	// Clear empties the history and persists the empty state.
	Clear() error

	// Search returns entries whose text contains term, case-insensitive.
	Search(term string) ([]model.ClipEntry, error)

	// FilterByCategory returns entries with the given category.
	FilterByCategory(category model.Category) ([]model.ClipEntry, error)

	Count() (int, error)
	Close() error
}

// Options configures a store backend.
type Options struct {
	// MaxEntries caps the history size; when exceeded the oldest entries
	// are trimmed. Zero means unlimited.
	MaxEntries int
}
