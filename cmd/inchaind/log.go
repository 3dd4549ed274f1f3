// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate"

	"github.com/inchain-project/inchaind/chaincfg"
	"github.com/inchain-project/inchaind/database"
	"github.com/inchain-project/inchaind/wire"
)

var (
	backendLog = btclog.NewBackend(logWriter{})

	log = backendLog.Logger("MAIN")

	subsystemLoggers = map[string]btclog.Logger{
		"MAIN": log,
		"WIRE": backendLog.Logger("WIRE"),
		"CHCG": backendLog.Logger("CHCG"),
		"DTBS": backendLog.Logger("DTBS"),
		"ADDR": backendLog.Logger("ADDR"),
	}
)

// logWriter implements io.Writer and sends all incoming bytes to both
// the rotating log file and stdout.
type logWriter struct{}

var logRotator *logrotate.Rotator

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// initLogRotator initializes the logging rotator to write logs to
// logFile and creates the directory if it doesn't already exist.
func initLogRotator(logFile string) error {
	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}
	r, err := logrotate.NewRotator(logFile)
	if err != nil {
		return err
	}
	logRotator = r
	return nil
}

// setLogLevels sets the logging level for every registered subsystem.
func setLogLevels(levelStr string) {
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		return
	}
	for _, l := range subsystemLoggers {
		l.SetLevel(level)
	}
}

func useLoggers() {
	wire.UseLogger(subsystemLoggers["WIRE"])
	chaincfg.UseLogger(subsystemLoggers["CHCG"])
	database.UseLogger(subsystemLoggers["DTBS"])
}
