// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memdb implements database.DB backed by an in-memory map. It is
// meant for tests and short-lived tooling; nothing written to it
// survives process exit.
package memdb

import (
	"sync"

	"github.com/inchain-project/inchaind/database"
)

// DB is an in-memory, mutex-guarded implementation of database.DB.
type DB struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// New returns an empty DB.
func New() *DB {
	return &DB{data: make(map[string][]byte)}
}

// Put stores value under key, overwriting any existing value.
func (db *DB) Put(key, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		database.Logger().Warnf("memdb: put on closed database")
		return database.ErrClosed
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	db.data[string(key)] = cp
	return nil
}

// Get returns the value stored under key, or (nil, nil) if key is not
// present.
func (db *DB) Get(key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		database.Logger().Warnf("memdb: get on closed database")
		return nil, database.ErrClosed
	}
	v, ok := db.data[string(key)]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

// Delete removes key. Deleting an absent key is not an error.
func (db *DB) Delete(key []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		database.Logger().Warnf("memdb: delete on closed database")
		return database.ErrClosed
	}
	delete(db.data, string(key))
	return nil
}

// Close marks db as closed. Close is safe to call more than once.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if !db.closed {
		database.Logger().Debugf("memdb: closing (%d keys)", len(db.data))
	}
	db.closed = true
	return nil
}

// Underlying returns the backing map, primarily so tests can inspect
// state directly.
func (db *DB) Underlying() interface{} {
	return db.data
}

var _ database.DB = (*DB)(nil)
