//go:build bolt || sqlite

package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/clipr/internal/model"
	"github.com/stretchr/testify/require"
)

func backendEntry(text string, category model.Category) model.ClipEntry {
	return model.NewClipEntry(text, category, time.Now())
}

func openBackend(t *testing.T, opts Options) (Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)

	db, err := Open(path, opts)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db, path
}

func backendAppend(t *testing.T, db Store, entry model.ClipEntry) {
	t.Helper()

	stored, err := db.Append(entry)
	require.NoError(t, err)
	require.True(t, stored)
}

func TestBackendAppendKeepsCopyOrder(t *testing.T) {
	db, _ := openBackend(t, Options{})

	texts := []string{"first", "second", "third", "fourth"}
	for _, text := range texts {
		backendAppend(t, db, backendEntry(text, model.CategoryPlaintext))
	}

	entries, err := db.Load()
	require.NoError(t, err)
	require.Len(t, entries, len(texts))

	for i, text := range texts {
		require.Equal(t, text, entries[i].Text)
	}
}

func TestBackendSkipsAdjacentDuplicate(t *testing.T) {
	db, _ := openBackend(t, Options{})

	backendAppend(t, db, backendEntry("same", model.CategoryPlaintext))

	stored, err := db.Append(backendEntry("same", model.CategoryPlaintext))
	require.NoError(t, err)
	require.False(t, stored)

	count, err := db.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// The same text is allowed again once something else came between.
	backendAppend(t, db, backendEntry("other", model.CategoryPlaintext))
	backendAppend(t, db, backendEntry("same", model.CategoryPlaintext))

	count, err = db.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestBackendRoundTripReload(t *testing.T) {
	db, path := openBackend(t, Options{})

	want := []model.ClipEntry{
		backendEntry("https://example.com", model.CategoryURL),
		backendEntry("func f() {}", model.CategoryCode),
		backendEntry("plain note", model.CategoryPlaintext),
	}

	for _, entry := range want {
		backendAppend(t, db, entry)
	}

	require.NoError(t, db.Close())

	reopened, err := Open(path, Options{})
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Load()
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i := range want {
		require.Equal(t, want[i].ID, got[i].ID)
		require.Equal(t, want[i].Text, got[i].Text)
		require.Equal(t, want[i].Category, got[i].Category)
		require.Equal(t, want[i].Chars, got[i].Chars)
		require.True(t, want[i].Timestamp.Equal(got[i].Timestamp))
	}
}

func TestBackendClearThenAppendReload(t *testing.T) {
	db, path := openBackend(t, Options{})

	backendAppend(t, db, backendEntry("one", model.CategoryPlaintext))
	backendAppend(t, db, backendEntry("two", model.CategoryPlaintext))
	require.NoError(t, db.Clear())

	entry := backendEntry("the survivor", model.CategoryQuote)
	backendAppend(t, db, entry)
	require.NoError(t, db.Close())

	reopened, err := Open(path, Options{})
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	entries, err := reopened.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, entry.ID, entries[0].ID)
	require.Equal(t, entry.Text, entries[0].Text)
}

func TestBackendRemove(t *testing.T) {
	db, _ := openBackend(t, Options{})

	keep := backendEntry("keep me", model.CategoryPlaintext)
	drop := backendEntry("drop me", model.CategoryPlaintext)

	backendAppend(t, db, keep)
	backendAppend(t, db, drop)

	require.NoError(t, db.Remove(drop.ID))

	entries, err := db.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, keep.ID, entries[0].ID)

	require.ErrorIs(t, db.Remove("no-such-id"), ErrNotFound)
}

func TestBackendSearchAndFilter(t *testing.T) {
	db, _ := openBackend(t, Options{})

	backendAppend(t, db, backendEntry("Meeting notes for Monday", model.CategoryPlaintext))
	backendAppend(t, db, backendEntry("func notes() {}", model.CategoryCode))
	backendAppend(t, db, backendEntry("https://example.com", model.CategoryURL))

	matches, err := db.Search("NOTES")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	urls, err := db.FilterByCategory(model.CategoryURL)
	require.NoError(t, err)
	require.Len(t, urls, 1)
	require.Equal(t, "https://example.com", urls[0].Text)

	quotes, err := db.FilterByCategory(model.CategoryQuote)
	require.NoError(t, err)
	require.Empty(t, quotes)
}

func TestBackendMaxEntriesTrimsOldest(t *testing.T) {
	db, _ := openBackend(t, Options{MaxEntries: 3})

	for _, text := range []string{"a", "b", "c", "d", "e"} {
		backendAppend(t, db, backendEntry(text, model.CategoryPlaintext))
	}

	entries, err := db.Load()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "c", entries[0].Text)
	require.Equal(t, "e", entries[2].Text)
}
