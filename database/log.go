// Copyright (c) 2025 Shell Reserve developers
// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import "github.com/btcsuite/btclog"

var log btclog.Logger

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// Logger returns the package's shared logger so that database.DB
// implementations living in sibling packages (memdb, leveldb) can log
// through the same subsystem rather than each wiring its own.
func Logger() btclog.Logger {
	return log
}

func init() {
	DisableLog()
}

// DisableLog disables all library log output.
func DisableLog() {
	log = btclog.Disabled
}
