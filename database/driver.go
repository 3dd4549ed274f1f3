// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package database declares the key-value storage contract the rest of
// the node consumes for persistent local state. The contract is
// deliberately schema-free: an entry is just a byte key mapped to a
// byte value. Concrete engines live in subpackages (memdb, leveldb) so
// that callers depend only on this interface.
package database

import "errors"

// ErrClosed is returned by an operation attempted after Close.
var ErrClosed = errors.New("database: closed")

// DB is the key-value storage contract.
//
// Put is last-write-wins and, for the purposes of a subsequent Get on
// the same goroutine, synchronous. Get returns a nil value (and a nil
// error) for a missing key; it does not distinguish "absent" from
// "stored empty value" — callers that need that distinction must not
// store empty values. Implementations must make Get/Put/Delete safe for
// concurrent use, but make no multi-key atomicity promise: a caller
// that needs several keys to change together must coordinate
// externally. Close is idempotent from the caller's perspective, but
// the engine may refuse operations issued after it.
type DB interface {
	// Put stores value under key, overwriting any existing value.
	Put(key, value []byte) error

	// Get returns the value stored under key, or (nil, nil) if key is
	// not present.
	Get(key []byte) ([]byte, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key []byte) error

	// Close releases resources held by the engine. Close is safe to
	// call more than once.
	Close() error

	// Underlying returns the engine-specific handle backing this DB,
	// for maintenance operations (compaction, snapshots) this contract
	// does not itself define.
	Underlying() interface{}
}
