// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/inchain-project/inchaind/addrutil"
	"github.com/inchain-project/inchaind/database/leveldb"
	"github.com/inchain-project/inchaind/wire"
)

// dialTimeout bounds an outbound connection attempt, onion or direct.
const dialTimeout = 30 * time.Second

func inchaindMain() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		return fmt.Errorf("unable to initialize log rotation: %w", err)
	}
	useLoggers()
	setLogLevels(cfg.LogLevel)

	log.Infof("Starting inchaind on %s", cfg.activeNetParams.Name)

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return fmt.Errorf("unable to create data directory: %w", err)
	}
	db, err := leveldb.Open(filepath.Join(cfg.DataDir, "peers.ldb"))
	if err != nil {
		return fmt.Errorf("unable to open database: %w", err)
	}
	defer db.Close()

	serializer := wire.NewMessageSerializer(cfg.activeNetParams, uint(cfg.MaxDedup))

	dialer := &addrutil.Dialer{
		ProxyAddr:     cfg.Proxy,
		ProxyUsername: cfg.ProxyUser,
		ProxyPassword: cfg.ProxyPass,
		Timeout:       dialTimeout,
	}
	for _, addr := range cfg.ConnectPeers {
		go connectPeer(dialer, addr, cfg.activeNetParams, serializer)
	}

	listenAddr := cfg.Listen
	if listenAddr == "" {
		listenAddr = net.JoinHostPort("", fmt.Sprintf("%d", cfg.activeNetParams.DefaultPort()))
	}
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("unable to listen on %s: %w", listenAddr, err)
	}
	defer ln.Close()
	log.Infof("Listening for peers on %s", ln.Addr())

	return serveConnections(ln, serializer)
}

// parsePeerAddress turns a "host:port" CLI argument into a
// wire.PeerAddress. host may be a regular hostname/IP or a bare onion
// address; either way resolution is left to the Dialer at connect time.
func parsePeerAddress(addr string, params wire.NetworkParams) (*wire.PeerAddress, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid peer address %q: %w", addr, err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid peer port in %q: %w", addr, err)
	}
	if strings.HasSuffix(host, ".onion") {
		return wire.NewPeerAddressFromHostname(host, uint16(port), params), nil
	}
	if ip := net.ParseIP(host); ip != nil {
		return wire.NewPeerAddressFromIPCurrent(ip, uint16(port), params), nil
	}
	return wire.NewPeerAddressFromHostname(host, uint16(port), params), nil
}

// connectPeer dials addr via dialer and, on success, hands the
// connection to the same envelope-processing loop used for inbound
// peers.
func connectPeer(dialer *addrutil.Dialer, addr string, params wire.NetworkParams, serializer *wire.MessageSerializer) {
	pa, err := parsePeerAddress(addr, params)
	if err != nil {
		log.Warnf("skipping --connect peer %s: %v", addr, err)
		return
	}
	conn, err := dialer.Dial(pa)
	if err != nil {
		log.Warnf("unable to connect to %s: %v", addr, err)
		return
	}
	log.Infof("Connected to peer %s", conn.RemoteAddr())
	handlePeer(conn, serializer)
}

// serveConnections accepts peer connections and hands each one off to a
// goroutine that frames and dispatches inbound envelopes, until the
// listener is closed.
func serveConnections(ln net.Listener, serializer *wire.MessageSerializer) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go handlePeer(conn, serializer)
	}
}

func handlePeer(conn net.Conn, serializer *wire.MessageSerializer) {
	defer conn.Close()

	buf := make([]byte, 0, wire.MaxMessagePayload)
	chunk := make([]byte, 4096)
	for {
		n, err := conn.Read(chunk)
		if err != nil {
			log.Debugf("peer %s disconnected: %v", conn.RemoteAddr(), err)
			return
		}
		buf = append(buf, chunk[:n]...)

		for {
			msg, consumed, result, envErr := serializer.Next(buf, wire.ProtocolVersion)
			switch result {
			case wire.ResultNeedMore:
			case wire.ResultInvalid:
				log.Warnf("peer %s sent an invalid envelope: %v", conn.RemoteAddr(), envErr)
				return
			case wire.ResultOK:
				log.Debugf("received %s from %s", msg.Command(), conn.RemoteAddr())
			}
			if consumed == 0 {
				break
			}
			buf = buf[consumed:]
		}
	}
}

func main() {
	if err := inchaindMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
