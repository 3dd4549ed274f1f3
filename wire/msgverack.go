// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// VerAck is the empty acknowledgement message sent in response to a
// version handshake. It carries no fields.
type VerAck struct {
	msgBase
}

// Command returns "verack".
func (v *VerAck) Command() string { return CmdVerAck }

// SerializeToStream writes nothing: VerAck's body is empty.
func (v *VerAck) SerializeToStream(sink io.Writer) error { return nil }

// BitcoinSerialize wraps SerializeToStream.
func (v *VerAck) BitcoinSerialize() ([]byte, error) { return bitcoinSerialize(v) }

func newVerAckFromPayload(params NetworkParams, payload []byte, offset int, pver uint32) (Message, error) {
	return &VerAck{msgBase: msgBase{params: params, length: 0, protocolVersion: pver}}, nil
}

// NewVerAck constructs a VerAck in memory.
func NewVerAck(params NetworkParams) *VerAck {
	return &VerAck{msgBase: msgBase{params: params, length: 0, protocolVersion: ProtocolVersion}}
}
