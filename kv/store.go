package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/viant/cloudbridge/schema"
)

// Error is a key-value store failure with a stable reason.
type Error struct {
	reason string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("key %v: %v", e.Key, e.Err)
	}
	return e.Err.Error()
}

// Reason returns failure reason
func (e *Error) Reason() string {
	return e.reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Store is a string key-value store
type Store struct {
	db       *badger.DB
	inMemory bool
}

// Set stores value under key
func (s *Store) Set(ctx context.Context, key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return &Error{reason: schema.ReasonKVStore, Key: key, Err: err}
	}
	return nil
}

// Get returns value for key or nil when key is not set
func (s *Store) Get(ctx context.Context, key string) (*string, error) {
	var ret *string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		value := string(data)
		ret = &value
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{reason: schema.ReasonKVStore, Key: key, Err: err}
	}
	return ret, nil
}

// Remove deletes key; removing a missing key is not an error
func (s *Store) Remove(ctx context.Context, key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return &Error{reason: schema.ReasonKVStore, Key: key, Err: err}
	}
	return nil
}

// All returns every stored item
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	ret := make(map[string]string)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			ret[string(item.KeyCopy(nil))] = string(value)
		}
		return nil
	})
	if err != nil {
		return nil, &Error{reason: schema.ReasonKVStore, Err: err}
	}
	return ret, nil
}

// Sync flushes in-memory writes to disk; an in-memory store has nothing to flush.
func (s *Store) Sync(ctx context.Context) error {
	if s.inMemory {
		return nil
	}
	if err := s.db.Sync(); err != nil {
		return &Error{reason: schema.ReasonKVSync, Err: fmt.Errorf("key-value sync failed: %w", err)}
	}
	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Open opens a store at dir; empty dir keeps data in memory only.
func Open(dir string) (*Store, error) {
	options := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		options = options.WithInMemory(true)
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open kv store %q: %w", dir, err)
	}
	return &Store{db: db, inMemory: dir == ""}, nil
}
