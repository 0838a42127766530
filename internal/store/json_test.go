//go:build !bolt && !sqlite

package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/clipr/internal/model"
	"github.com/stretchr/testify/require"
)

func testEntry(text string, category model.Category) model.ClipEntry {
	return model.NewClipEntry(text, category, time.Now())
}

func mustAppend(t *testing.T, db Store, entry model.ClipEntry) {
	t.Helper()

	stored, err := db.Append(entry)
	require.NoError(t, err)
	require.True(t, stored)
}

func openTestStore(t *testing.T, opts Options) (Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history.json")

	db, err := Open(path, opts)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db, path
}

func TestAppendKeepsCopyOrder(t *testing.T) {
	db, _ := openTestStore(t, Options{})

	texts := []string{"first", "second", "third", "fourth"}
	for _, text := range texts {
		mustAppend(t, db, testEntry(text, model.CategoryPlaintext))
	}

	entries, err := db.Load()
	require.NoError(t, err)
	require.Len(t, entries, len(texts))

	for i, text := range texts {
		require.Equal(t, text, entries[i].Text)
	}
}

func TestAppendSkipsAdjacentDuplicate(t *testing.T) {
	db, _ := openTestStore(t, Options{})

	mustAppend(t, db, testEntry("same", model.CategoryPlaintext))

	stored, err := db.Append(testEntry("same", model.CategoryPlaintext))
	require.NoError(t, err)
	require.False(t, stored)

	count, err := db.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// The same text is allowed again once something else came between.
	mustAppend(t, db, testEntry("other", model.CategoryPlaintext))
	mustAppend(t, db, testEntry("same", model.CategoryPlaintext))

	count, err = db.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestClearThenAppendReload(t *testing.T) {
	db, path := openTestStore(t, Options{})

	mustAppend(t, db, testEntry("one", model.CategoryPlaintext))
	mustAppend(t, db, testEntry("two", model.CategoryPlaintext))
	require.NoError(t, db.Clear())

	entry := testEntry("the survivor", model.CategoryQuote)
	mustAppend(t, db, entry)
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

func TestRoundTripPreservesEntries(t *testing.T) {
	db, path := openTestStore(t, Options{})

	want := []model.ClipEntry{
		testEntry("https://example.com", model.CategoryURL),
		testEntry("func f() {}", model.CategoryCode),
		testEntry("plain note", model.CategoryPlaintext),
	}

	for _, entry := range want {
		mustAppend(t, db, entry)
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

func TestMissingAndMalformedFilesStartEmpty(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(filepath.Join(dir, "missing.json"), Options{})
	require.NoError(t, err)

	count, err := db.Count()
	require.NoError(t, err)
	require.Zero(t, count)
	require.NoError(t, db.Close())

	malformed := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{not json"), 0600))

	db, err = Open(malformed, Options{})
	require.NoError(t, err)

	count, err = db.Count()
	require.NoError(t, err)
	require.Zero(t, count)
	require.NoError(t, db.Close())
}

func TestRemove(t *testing.T) {
	db, _ := openTestStore(t, Options{})

	keep := testEntry("keep me", model.CategoryPlaintext)
	drop := testEntry("drop me", model.CategoryPlaintext)

	mustAppend(t, db, keep)
	mustAppend(t, db, drop)

	require.NoError(t, db.Remove(drop.ID))

	entries, err := db.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, keep.ID, entries[0].ID)

	require.ErrorIs(t, db.Remove("no-such-id"), ErrNotFound)
}

func TestSearchAndFilter(t *testing.T) {
	db, _ := openTestStore(t, Options{})

	mustAppend(t, db, testEntry("Meeting notes for Monday", model.CategoryPlaintext))
	mustAppend(t, db, testEntry("func notes() {}", model.CategoryCode))
	mustAppend(t, db, testEntry("https://example.com", model.CategoryURL))

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

func TestMaxEntriesTrimsOldest(t *testing.T) {
	db, _ := openTestStore(t, Options{MaxEntries: 3})

	for _, text := range []string{"a", "b", "c", "d", "e"} {
		mustAppend(t, db, testEntry(text, model.CategoryPlaintext))
	}

	entries, err := db.Load()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "c", entries[0].Text)
	require.Equal(t, "e", entries[2].Text)
}
