// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/inchain-project/inchaind/chaincfg"
	"github.com/inchain-project/inchaind/wire"
)

const (
	defaultConfigFilename = "inchaind.conf"
	defaultDataDirname    = "data"
	defaultLogFilename    = "inchaind.log"
	defaultLogLevel       = "info"
	defaultMaxDedupSize   = wire.DefaultDedupCapacity
)

var (
	defaultHomeDir    = appHomeDir()
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, "logs")
)

// config defines the configuration options for inchaind.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	LogLevel   string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	Listen       string   `long:"listen" description:"Address to listen for incoming peer connections"`
	TestNet      bool     `long:"testnet" description:"Use the test network"`
	Proxy        string   `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser    string   `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass    string   `long:"proxypass" description:"Password for proxy server"`
	MaxDedup     int      `long:"maxdedup" description:"Maximum number of recently-seen envelopes to remember for duplicate suppression"`
	ConnectPeers []string `long:"connect" description:"Connect to this peer at startup (host:port, or onion-host:port via --proxy); may be given multiple times"`

	activeNetParams *chaincfg.Params
}

// appHomeDir returns the default home directory for inchaind: the
// INCHAIND_HOME environment variable if set, else ~/.inchaind.
func appHomeDir() string {
	if dir := os.Getenv("INCHAIND_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".inchaind")
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig reads flags and an optional config file, applies defaults
// for anything left unset, and resolves which network parameters this
// run uses.
func loadConfig() (*config, []string, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultDataDir,
		LogDir:     defaultLogDir,
		LogLevel:   defaultLogLevel,
		MaxDedup:   defaultMaxDedupSize,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	_, err := preParser.Parse()
	if err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if preCfg.ConfigFile != defaultConfigFile {
		cfg.ConfigFile = cleanAndExpandPath(preCfg.ConfigFile)
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := os.Stat(cfg.ConfigFile); err == nil {
		if err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile); err != nil {
			return nil, nil, err
		}
	}
	remainingArgs, err := parser.Parse()
	if err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	if cfg.TestNet {
		cfg.activeNetParams = &chaincfg.TestNetParams
	} else {
		cfg.activeNetParams = &chaincfg.MainNetParams
	}

	if cfg.MaxDedup <= 0 {
		return nil, nil, fmt.Errorf("maxdedup must be positive, got %d", cfg.MaxDedup)
	}

	return &cfg, remainingArgs, nil
}
