package sysinfo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotCached is returned when no fresh snapshot is in the store.
var ErrNotCached = errors.New("system snapshot not cached")

// snapshotKey is the single key under which the snapshot lives. Badger's TTL
// handles expiry.
var snapshotKey = []byte("sysinfo/snapshot")

// Store caches system snapshots in Badger with a TTL.
type Store struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenStore opens or creates a snapshot cache at the given path.
func OpenStore(path string, ttl time.Duration) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable badger logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, ttl: ttl}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached snapshot, or ErrNotCached if it is missing or
// expired.
func (s *Store) Get() (*Info, error) {
	var info Info

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotCached
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &info)
		})
	})

	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Put stores a snapshot under the configured TTL.
func (s *Store) Put(info *Info) error {
	value, err := json.Marshal(info)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(snapshotKey, value).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
}

// Invalidate drops the cached snapshot.
func (s *Store) Invalidate() error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(snapshotKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// CollectCached returns the cached snapshot when fresh, collecting and
// caching a new one otherwise. A nil store always collects.
func CollectCached(ctx context.Context, store *Store) (*Info, error) {
	if store != nil {
		if info, err := store.Get(); err == nil {
			return info, nil
		}
	}

	info, err := Collect(ctx)
	if err != nil {
		return nil, err
	}

	if store != nil {
		// Cache failures are not collection failures.
		_ = store.Put(info)
	}

	return info, nil
}
