// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package leveldb implements database.DB on top of goleveldb, for nodes
// that need state to survive a restart.
package leveldb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/inchain-project/inchaind/database"
)

// DB wraps a goleveldb handle to satisfy database.DB.
type DB struct {
	ldb *leveldb.DB
}

// Open opens (creating if necessary) a goleveldb database rooted at
// path.
func Open(path string) (*DB, error) {
	ldb, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		database.Logger().Errorf("leveldb: unable to open %s: %v", path, err)
		return nil, err
	}
	database.Logger().Infof("leveldb: opened %s", path)
	return &DB{ldb: ldb}, nil
}

// Put stores value under key, overwriting any existing value.
func (db *DB) Put(key, value []byte) error {
	return db.ldb.Put(key, value, nil)
}

// Get returns the value stored under key, or (nil, nil) if key is not
// present. goleveldb's ErrNotFound is translated to a nil value and nil
// error so callers never have to special-case the storage engine.
func (db *DB) Get(key []byte) ([]byte, error) {
	v, err := db.ldb.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		database.Logger().Warnf("leveldb: get failed: %v", err)
		return nil, err
	}
	return v, nil
}

// Delete removes key. Deleting an absent key is not an error.
func (db *DB) Delete(key []byte) error {
	return db.ldb.Delete(key, nil)
}

// Close releases the underlying goleveldb handle. Close is safe to call
// more than once: goleveldb's ErrClosed from a repeated Close is not
// returned to the caller.
func (db *DB) Close() error {
	database.Logger().Debugf("leveldb: closing")
	if err := db.ldb.Close(); err != nil && err != leveldb.ErrClosed {
		return err
	}
	return nil
}

// Underlying returns the *leveldb.DB backing this DB, for maintenance
// operations (compaction, snapshots) this contract does not itself
// define.
func (db *DB) Underlying() interface{} {
	return db.ldb
}

var _ database.DB = (*DB)(nil)
