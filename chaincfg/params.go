// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg supplies the frozen, per-process network parameters
// the wire layer consults: network magic, default port, and the
// protocol version milestone table. Consensus parameters (proof-of-work
// limits, checkpoints, soft-fork deployments, address prefixes) belong
// to block and transaction validation, which is out of scope here, and
// are not carried.
package chaincfg

import (
	"errors"

	"github.com/inchain-project/inchaind/wire"
)

// DNSSeed identifies a DNS seed host used to bootstrap an initial peer
// set. Resolution of the seed itself is outside this module's scope.
type DNSSeed struct {
	Host         string
	HasFiltering bool
}

// Params is a frozen, per-process description of a network: its wire
// magic, default peer-to-peer port, and the set of DNS seeds used to
// bootstrap a peer set. It satisfies wire.NetworkParams.
//
// A Params value is created once at startup and never mutated
// thereafter; the zero value is not meaningful — use MainNetParams or
// TestNetParams, or Register a custom one.
type Params struct {
	// Name is the human-readable network name, e.g. "mainnet".
	Name string

	// Net is the magic value identifying this network on the wire.
	Net wire.BitcoinNet

	// DefaultPeerPort is the default TCP port peers listen on.
	DefaultPeerPort uint16

	// DNSSeeds lists hosts used to bootstrap an initial peer set.
	DNSSeeds []DNSSeed
}

// Magic returns the network's magic bytes.
func (p *Params) Magic() wire.BitcoinNet { return p.Net }

// DefaultPort returns the network's default peer-to-peer port.
func (p *Params) DefaultPort() uint16 { return p.DefaultPeerPort }

// ProtocolVersion looks up the numeric protocol version for a symbolic
// milestone name. Every Params instance shares the same milestone
// table: the milestones describe wire-format capability, not anything
// network-specific.
func (p *Params) ProtocolVersion(milestone string) (uint32, bool) {
	return wire.ProtocolMilestone(milestone)
}

// MainNetParams defines the network parameters for the inchain main
// network.
var MainNetParams = Params{
	Name:            "mainnet",
	Net:             wire.MainNet,
	DefaultPeerPort: 8333,
	DNSSeeds: []DNSSeed{
		{Host: "seed1.inchain.org", HasFiltering: true},
		{Host: "seed2.inchain.org", HasFiltering: true},
	},
}

// TestNetParams defines the network parameters for the inchain test
// network.
var TestNetParams = Params{
	Name:            "testnet",
	Net:             wire.TestNet,
	DefaultPeerPort: 18333,
	DNSSeeds: []DNSSeed{
		{Host: "testnet-seed.inchain.org", HasFiltering: true},
	},
}

// ErrDuplicateNet describes an error where a network's parameters were
// already registered.
var ErrDuplicateNet = errors.New("duplicate network")

var registeredNets = map[wire.BitcoinNet]struct{}{
	MainNetParams.Net: {},
	TestNetParams.Net: {},
}

// Register records params' magic as belonging to a known network so
// that IsRegistered can be used to validate configuration. It does not
// change which Params a running process treats as active: that choice
// is made once, by whichever Params value is passed into the wire and
// database layers at startup, and never changes.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		log.Warnf("ignoring duplicate registration of network %q (magic %s)", params.Name, params.Net)
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	log.Infof("registered network %q (magic %s, default port %d)", params.Name, params.Net, params.DefaultPeerPort)
	return nil
}

// IsRegistered reports whether net has been registered via Register or
// is one of the two built-in networks.
func IsRegistered(net wire.BitcoinNet) bool {
	_, ok := registeredNets[net]
	return ok
}
