// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/aead/siphash"
	"github.com/decred/dcrd/lru"
)

// HeaderSize is the number of bytes in a message envelope: magic (4) +
// command (12) + payload length (4) + checksum (4).
const HeaderSize = 4 + CommandSize + 4 + 4

// MaxMessagePayload is the maximum bytes a message payload may occupy
// regardless of any tighter limit a specific message type imposes.
const MaxMessagePayload = 32 * 1024 * 1024

// DefaultDedupCapacity bounds the serializer's duplicate-envelope cache
// when a caller does not have a more specific capacity in mind.
const DefaultDedupCapacity = 5000

// NextResult is the outcome of MessageSerializer.Next.
type NextResult int

const (
	// ResultOK indicates a message was successfully framed and parsed.
	ResultOK NextResult = iota
	// ResultNeedMore indicates buf is shorter than header-plus-declared-
	// payload; the caller should read more bytes and retry.
	ResultNeedMore
	// ResultInvalid indicates a framing failure: bad magic, oversized
	// payload, bad checksum, unknown command, or a detected duplicate.
	ResultInvalid
)

// MessageSerializer wraps the envelope framing: computing/verifying
// checksums, locating message boundaries in a byte stream, and
// dispatching by command to a concrete Message constructor. Keeping this
// separate from Message itself keeps concrete messages free of framing
// concerns.
//
// A MessageSerializer is safe for concurrent use: its only mutable state
// is the duplicate-envelope cache, which is guarded by a mutex.
type MessageSerializer struct {
	params NetworkParams

	dedup   *lru.Cache
	dedupMu sync.Mutex
	sipKey  [16]byte
}

// NewMessageSerializer returns a MessageSerializer for params with
// duplicate-envelope suppression enabled at dedupCapacity entries. A
// dedupCapacity of 0 disables duplicate suppression entirely. The
// siphash key is drawn from the system RNG so that the dedup cache's
// keys cannot be predicted by a remote peer.
func NewMessageSerializer(params NetworkParams, dedupCapacity uint) *MessageSerializer {
	s := &MessageSerializer{
		params: params,
	}
	if dedupCapacity > 0 {
		s.dedup = lru.NewCache(dedupCapacity)
	}
	_, _ = rand.Read(s.sipKey[:])
	return s
}

// Frame computes the envelope for command and payload and returns the
// header-plus-payload ready to write to a peer.
func (s *MessageSerializer) Frame(command string, payload []byte) ([]byte, error) {
	if len(command) > CommandSize {
		return nil, newEnvelopeError(command, fmt.Sprintf("command too long (max %d)", CommandSize))
	}
	if len(payload) > MaxMessagePayload {
		return nil, newEnvelopeError(command, fmt.Sprintf("payload too large (max %d)", MaxMessagePayload))
	}

	var out bytes.Buffer
	out.Grow(HeaderSize + len(payload))

	var magic [4]byte
	littleEndian.PutUint32(magic[:], uint32(s.params.Magic()))
	out.Write(magic[:])

	var cmd [CommandSize]byte
	copy(cmd[:], command)
	out.Write(cmd[:])

	var lenBuf [4]byte
	littleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	out.Write(lenBuf[:])

	checksum := doubleSha256(payload)
	out.Write(checksum[:4])

	out.Write(payload)
	return out.Bytes(), nil
}

// Next scans buf for a complete envelope at offset 0, verifies its
// checksum, and dispatches by command to a concrete Message. It returns
// the parsed message (on ResultOK), the number of bytes consumed from
// buf, the result kind, and — on ResultInvalid only — an EnvelopeError
// describing why, with the offending command name preserved for
// logging. The caller is expected to discard the consumed bytes and
// call Next again for the remainder of buf.
func (s *MessageSerializer) Next(buf []byte, pver uint32) (Message, int, NextResult, *EnvelopeError) {
	if len(buf) < HeaderSize {
		return nil, 0, ResultNeedMore, nil
	}

	magic := BitcoinNet(littleEndian.Uint32(buf[0:4]))
	command := string(bytes.TrimRight(buf[4:4+CommandSize], "\x00"))

	if magic != s.params.Magic() {
		return s.invalid(0, command, fmt.Sprintf("bad magic %s", magic))
	}

	payloadLen := littleEndian.Uint32(buf[16:20])
	var checksum [4]byte
	copy(checksum[:], buf[20:24])

	if payloadLen > MaxMessagePayload {
		return s.invalid(0, command, fmt.Sprintf("payload too large (max %d)", MaxMessagePayload))
	}

	total := HeaderSize + int(payloadLen)
	if len(buf) < total {
		return nil, 0, ResultNeedMore, nil
	}

	payload := buf[HeaderSize:total]
	actual := doubleSha256(payload)
	if !bytes.Equal(actual[:4], checksum[:]) {
		return s.invalid(total, command, "checksum mismatch")
	}

	if s.isDuplicate(buf[:HeaderSize]) {
		return s.invalid(total, command, "duplicate")
	}

	if !KnownCommands(command) {
		return s.invalid(total, command, "unknown command")
	}

	msg, err := makeMessage(command, s.params, payload, 0, pver)
	if err != nil {
		return s.invalid(total, command, err.Error())
	}
	return msg, total, ResultOK, nil
}

// invalid logs and builds the ResultInvalid return tuple for Next. It is
// the single place a malformed or unwanted envelope is reported, so that
// every rejection reason Next can produce — including a detected
// duplicate — reaches the log at the point it was decided.
func (s *MessageSerializer) invalid(consumed int, command, reason string) (Message, int, NextResult, *EnvelopeError) {
	envErr := newEnvelopeError(command, reason)
	log.Debugf("rejecting envelope: %v", envErr)
	return nil, consumed, ResultInvalid, envErr
}

// isDuplicate reports whether header has already been seen within the
// dedup cache's retention window, recording it if not. Keying on a
// SipHash-2-4 digest of the whole header (rather than the checksum
// alone) means a retransmitted PeerAddress whose time field changed —
// and therefore whose checksum changed — is never mistaken for a
// duplicate.
func (s *MessageSerializer) isDuplicate(header []byte) bool {
	if s.dedup == nil {
		return false
	}
	key := siphash.Sum64(header, &s.sipKey)

	s.dedupMu.Lock()
	defer s.dedupMu.Unlock()
	if s.dedup.Contains(key) {
		return true
	}
	s.dedup.Add(key)
	return false
}
