package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var preferencesBucket = []byte("preferences")

// ErrNotFound is returned when a preference key has no stored value.
var ErrNotFound = errors.New("preference not found")

// Store persists user preferences in a single bbolt file.
type Store struct {
	db *bolt.DB
}

func NewStore(dbPath string) (*Store, error) {
	return NewStoreWithTimeout(dbPath, 1*time.Second)
}

// NewStoreWithTimeout opens the store, waiting at most timeout for the
// file lock held by another devtec process.
func NewStoreWithTimeout(dbPath string, timeout time.Duration) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(preferencesBucket)
		return createErr
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// GetPreference returns the stored value for key, or ErrNotFound.
func (s *Store) GetPreference(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(preferencesBucket).Get([]byte(key))
		if data == nil {
			return ErrNotFound
		}
		value = string(data)
		return nil
	})
	return value, err
}

func (s *Store) SetPreference(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(preferencesBucket).Put([]byte(key), []byte(value))
	})
}

// DeletePreference removes key. Deleting a missing key is not an error.
func (s *Store) DeletePreference(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(preferencesBucket).Delete([]byte(key))
	})
}

// Preferences returns every stored key/value pair.
func (s *Store) Preferences() (map[string]string, error) {
	prefs := make(map[string]string)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(preferencesBucket).ForEach(func(k, v []byte) error {
			prefs[string(k)] = string(v)
			return nil
		})
	})
	return prefs, err
}
