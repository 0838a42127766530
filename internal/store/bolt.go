//go:build bolt

package store

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inovacc/clipr/internal/model"
	"go.etcd.io/bbolt"
)

// DefaultFilename is the history file name used when none is configured.
const DefaultFilename = "history.bolt"

const boltBucketEntries = "entries" // key: big-endian sequence -> ClipEntry JSON

// Bolt stores history entries in a bbolt database, keyed by an
// ever-increasing sequence so iteration yields capture order.
type Bolt struct {
	storage    *bbolt.DB
	maxEntries int
}

// Open creates or opens a bbolt-backed history at the given path.
func Open(path string, opts Options) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketEntries))
		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance, maxEntries: opts.MaxEntries}, nil
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)

	return key
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltBucketEntries)) == nil {
			return fmt.Errorf("bucket %s missing", boltBucketEntries)
		}

		return nil
	})
}

func (b *Bolt) Load() ([]model.ClipEntry, error) {
	var entries []model.ClipEntry

	err := b.storage.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketEntries))

		return bucket.ForEach(func(_, v []byte) error {
			var entry model.ClipEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}

			entries = append(entries, entry)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (b *Bolt) Append(entry model.ClipEntry) (bool, error) {
	stored := false

	err := b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketEntries))

		// Adjacent-duplicate rule: same text as the newest entry is a no-op.
		if _, last := bucket.Cursor().Last(); last != nil {
			var newest model.ClipEntry
			if err := json.Unmarshal(last, &newest); err == nil && newest.Text == entry.Text {
				return nil
			}
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}

		if err := bucket.Put(seqKey(seq), data); err != nil {
			return err
		}

		stored = true

		if b.maxEntries > 0 {
			count := 0

			cursor := bucket.Cursor()
			for k, _ := cursor.First(); k != nil; k, _ = cursor.Next() {
				count++
			}

			for count > b.maxEntries {
				oldest, _ := bucket.Cursor().First()
				if oldest == nil {
					break
				}

				if err := bucket.Delete(bytes.Clone(oldest)); err != nil {
					return err
				}

				count--
			}
		}

		return nil
	})

	return stored, err
}

func (b *Bolt) Remove(id string) error {
	found := false

	err := b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketEntries))

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var entry model.ClipEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}

			if entry.ID == id {
				found = true

				return bucket.Delete(bytes.Clone(k))
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if !found {
		return ErrNotFound
	}

	return nil
}

func (b *Bolt) Clear() error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(boltBucketEntries)); err != nil {
			return err
		}

		_, err := tx.CreateBucket([]byte(boltBucketEntries))

		return err
	})
}

func (b *Bolt) Search(term string) ([]model.ClipEntry, error) {
	needle := strings.ToLower(term)

	return b.filter(func(entry model.ClipEntry) bool {
		return strings.Contains(strings.ToLower(entry.Text), needle)
	})
}

func (b *Bolt) FilterByCategory(category model.Category) ([]model.ClipEntry, error) {
	return b.filter(func(entry model.ClipEntry) bool {
		return entry.Category == category
	})
}

func (b *Bolt) filter(keep func(model.ClipEntry) bool) ([]model.ClipEntry, error) {
	entries, err := b.Load()
	if err != nil {
		return nil, err
	}

	var out []model.ClipEntry

	for _, entry := range entries {
		if keep(entry) {
			out = append(out, entry)
		}
	}

	return out, nil
}

func (b *Bolt) Count() (int, error) {
	count := 0

	err := b.storage.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket([]byte(boltBucketEntries)).Stats().KeyN
		return nil
	})

	return count, err
}

func (b *Bolt) Close() error {
	return b.storage.Close()
}
