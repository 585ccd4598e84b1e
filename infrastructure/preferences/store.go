package preferences

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketPreferences = []byte("preferences")

// Store keeps user preferences in a bbolt file so they survive restarts.
// With an empty path it only keeps values in memory.
type Store struct {
	db *bolt.DB

	mu     sync.RWMutex
	memory map[string][]byte
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return &Store{memory: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences db %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPreferences)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preferences bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		v, ok := s.memory[key]
		if !ok {
			return nil, false, nil
		}
		return append([]byte(nil), v...), true, nil
	}

	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPreferences)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}

	return value, value != nil, nil
}

func (s *Store) Put(key string, value []byte) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.memory[key] = append([]byte(nil), value...)
		return nil
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketPreferences)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
