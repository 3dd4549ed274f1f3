// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
)

// CommandSize is the fixed size of all commands in the message envelope.
// Shorter commands are zero padded.
const CommandSize = 12

// Commands used in message envelopes to describe the type of message.
const (
	CmdAddr   = "addr"
	CmdVerAck = "verack"
	CmdPing   = "ping"
)

// NetworkParams is the subset of chaincfg.Params the wire layer consults:
// the network magic, the default port, and the protocol version
// milestone table. It is declared here, rather than imported from
// chaincfg, so that chaincfg may depend on wire for BitcoinNet without an
// import cycle.
type NetworkParams interface {
	Magic() BitcoinNet
	DefaultPort() uint16
	ProtocolVersion(milestone string) (uint32, bool)
}

// Message is the contract shared by every member of the wire message
// family. A concrete type's zero value is never a valid Message;
// instances come from one of the package-level constructors, which
// either parse a payload slice or set fields directly in memory.
type Message interface {
	// SerializeToStream writes the message's body to sink. It does not
	// write the envelope (magic, command, length, checksum); that is
	// MessageSerializer's job.
	SerializeToStream(sink io.Writer) error

	// BitcoinSerialize is a convenience wrapper around
	// SerializeToStream that returns the body as a byte slice.
	BitcoinSerialize() ([]byte, error)

	// Command returns the 12-byte-envelope command name for this
	// message kind.
	Command() string

	// Length returns the number of bytes this message occupies on the
	// wire. It is set once, either by the from-payload constructor or by
	// the in-memory constructor.
	Length() int

	// ProtocolVersion returns the protocol version this message
	// instance was parsed under, or will be serialized under.
	ProtocolVersion() uint32
}

// msgBase holds the bookkeeping every concrete Message shares: the
// network parameters it was built against, its length once known, and
// the protocol version under which it was parsed or will be emitted.
// Concrete messages embed it rather than implement this bookkeeping
// themselves, since these fields are common to every concrete message.
type msgBase struct {
	params          NetworkParams
	length          int
	protocolVersion uint32
}

func (b *msgBase) Length() int             { return b.length }
func (b *msgBase) ProtocolVersion() uint32 { return b.protocolVersion }

// bitcoinSerialize is shared by every concrete message's
// BitcoinSerialize method.
func bitcoinSerialize(m Message) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.SerializeToStream(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// messageFactory constructs a concrete Message from a payload slice
// starting at offset, under the given protocol version. It is the
// dispatch unit MessageSerializer.Next uses once it has identified a
// command.
type messageFactory func(params NetworkParams, payload []byte, offset int, pver uint32) (Message, error)

// messageFactories is the command-to-constructor dispatch table: a small
// map from a command string to the constructor for that variant, in
// place of a base-class-with-virtual-parse hierarchy.
var messageFactories = map[string]messageFactory{
	CmdAddr:   newPeerAddressFromPayload,
	CmdVerAck: newVerAckFromPayload,
	CmdPing:   newPingFromPayload,
}

// KnownCommands reports whether command is a command this package knows
// how to construct a Message for.
func KnownCommands(command string) bool {
	_, ok := messageFactories[command]
	return ok
}

// makeMessage constructs the concrete message for command, or returns a
// ProtocolError naming the unrecognized command.
func makeMessage(command string, params NetworkParams, payload []byte, offset int, pver uint32) (Message, error) {
	factory, ok := messageFactories[command]
	if !ok {
		return nil, newParseError("makeMessage", fmt.Sprintf("unhandled command %q", command))
	}
	return factory(params, payload, offset, pver)
}
