// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// Ping carries a nonce used to measure round-trip latency and confirm a
// connection is still alive. At or below BIP0031Version it carries no
// payload at all; the dispatch table still routes "ping" to this type
// either way, and the protocol version carried by the message decides
// how many bytes newPingFromPayload/SerializeToStream consume.
type Ping struct {
	msgBase
	Nonce uint64
}

// Command returns "ping".
func (p *Ping) Command() string { return CmdPing }

// BitcoinSerialize wraps SerializeToStream.
func (p *Ping) BitcoinSerialize() ([]byte, error) { return bitcoinSerialize(p) }

// SerializeToStream writes the 8-byte nonce, or nothing at all if this
// Ping's protocol version is at or below BIP0031Version.
func (p *Ping) SerializeToStream(sink io.Writer) error {
	if p.protocolVersion <= BIP0031Version {
		return nil
	}
	if err := writeUint64LE(sink, p.Nonce); err != nil {
		return newIOError("Ping.SerializeToStream", err)
	}
	return nil
}

func newPingFromPayload(params NetworkParams, payload []byte, offset int, pver uint32) (Message, error) {
	p := &Ping{msgBase: msgBase{params: params, protocolVersion: pver}}
	if pver <= BIP0031Version {
		p.length = 0
		return p, nil
	}
	nonce, cur, err := readUint64LE(payload, offset)
	if err != nil {
		return nil, err
	}
	p.Nonce = nonce
	p.length = cur - offset
	return p, nil
}

// NewPing constructs a Ping in memory with the given nonce, under the
// current protocol version.
func NewPing(nonce uint64, params NetworkParams) *Ping {
	return &Ping{
		msgBase: msgBase{params: params, length: 8, protocolVersion: ProtocolVersion},
		Nonce:   nonce,
	}
}
