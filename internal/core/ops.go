package core

import (
	"fmt"
	"path/filepath"

	"github.com/inovacc/clipr/internal/application"
	"github.com/inovacc/clipr/internal/clipboard"
	"github.com/inovacc/clipr/internal/model"
	"github.com/inovacc/clipr/internal/store"
)

// OpenStore opens the history store described by the configuration. An empty
// HistoryFile resolves to the backend default inside the application
// directory.
func OpenStore(cfg model.Config) (store.Store, error) {
	path := cfg.HistoryFile

	if path == "" {
		dir, err := application.GetApplicationDirectory()
		if err != nil {
			return nil, err
		}

		path = filepath.Join(dir, store.DefaultFilename)
	}

	return store.Open(path, store.Options{MaxEntries: cfg.MaxEntries})
}

// List returns the full history in capture order.
func List(db store.Store) ([]model.ClipEntry, error) {
	return db.Load()
}

// Search returns entries whose text contains term, case-insensitive.
func Search(db store.Store, term string) ([]model.ClipEntry, error) {
	return db.Search(term)
}

// Filter returns entries with the given category label.
func Filter(db store.Store, label string) ([]model.ClipEntry, error) {
	category, err := model.ParseCategory(label)
	if err != nil {
		return nil, err
	}

	return db.FilterByCategory(category)
}

// Clear removes every entry from the history.
func Clear(db store.Store) error {
	return db.Clear()
}

// Remove deletes a single entry by id.
func Remove(db store.Store, id string) error {
	return db.Remove(id)
}

// CopyEntry writes a stored entry's text back to the system clipboard.
func CopyEntry(db store.Store, clip clipboard.Clipboard, id string) (model.ClipEntry, error) {
	entries, err := db.Load()
	if err != nil {
		return model.ClipEntry{}, err
	}

	for _, entry := range entries {
		if entry.ID == id {
			if err := clip.WriteText(entry.Text); err != nil {
				return model.ClipEntry{}, fmt.Errorf("writing clipboard: %w", err)
			}

			return entry, nil
		}
	}

	return model.ClipEntry{}, store.ErrNotFound
}
