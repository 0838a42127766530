// Package store persists the clipboard history. The default backend keeps
// the ordered entry list in a single JSON document; bbolt and SQLite
// backends are selected with the "bolt" and "sqlite" build tags.
package store
