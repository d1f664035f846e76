// Package store persists prompt history across sessions in a bbolt
// database. Each prompt kind (search, command) gets its own bucket of
// sequence-keyed entries.
package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store is a handle to the history database.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database at path, creating parent
// directories as needed. The open times out rather than blocking
// forever on a stale lock.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening history database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add appends an entry to the named history bucket. A entry equal to
// the most recent one is dropped silently.
func (s *Store) Add(kind, entry string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(kind))
		if err != nil {
			return err
		}
		if k, v := b.Cursor().Last(); k != nil && string(v) == entry {
			return nil
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		var key [8]byte
		binary.BigEndian.PutUint64(key[:], seq)
		return b.Put(key[:], []byte(entry))
	})
}

// List returns up to limit entries from the named bucket, oldest
// first. A missing bucket yields an empty list.
func (s *Store) List(kind string, limit int) ([]string, error) {
	var out []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(kind))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		n := 0
		for k, v := c.Last(); k != nil && n < limit; k, v = c.Prev() {
			out = append(out, string(v))
			n++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s history: %w", kind, err)
	}
	// Walked newest to oldest; flip to chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
