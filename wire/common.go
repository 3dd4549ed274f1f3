// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var littleEndian = binary.LittleEndian

// readUint32LE reads a 32-bit unsigned integer from buf at cur in
// little-endian order and returns the advanced cursor.
func readUint32LE(buf []byte, cur int) (uint32, int, error) {
	next := cur + 4
	if next > len(buf) {
		return 0, cur, newParseError("readUint32LE", "truncated buffer")
	}
	return littleEndian.Uint32(buf[cur:next]), next, nil
}

// readUint64LE reads a 64-bit unsigned integer from buf at cur in
// little-endian order and returns the advanced cursor. This is a plain
// uint64 rather than a big-integer: Go has no signed/unsigned ambiguity
// for fixed-width integers.
func readUint64LE(buf []byte, cur int) (uint64, int, error) {
	next := cur + 8
	if next > len(buf) {
		return 0, cur, newParseError("readUint64LE", "truncated buffer")
	}
	return littleEndian.Uint64(buf[cur:next]), next, nil
}

// readUint16BE reads a 16-bit unsigned integer from buf at cur in
// network (big-endian) byte order and returns the advanced cursor.
func readUint16BE(buf []byte, cur int) (uint16, int, error) {
	next := cur + 2
	if next > len(buf) {
		return 0, cur, newParseError("readUint16BE", "truncated buffer")
	}
	return uint16(buf[cur])<<8 | uint16(buf[cur+1]), next, nil
}

// readBytes copies the next n bytes from buf starting at cur and returns
// the advanced cursor. The returned slice is a copy so callers may retain
// it beyond the lifetime of buf.
func readBytes(buf []byte, cur, n int) ([]byte, int, error) {
	next := cur + n
	if next > len(buf) || next < cur {
		return nil, cur, newParseError("readBytes", "truncated buffer")
	}
	out := make([]byte, n)
	copy(out, buf[cur:next])
	return out, next, nil
}

// writeUint32LE writes v to sink in little-endian order.
func writeUint32LE(sink io.Writer, v uint32) error {
	var b [4]byte
	littleEndian.PutUint32(b[:], v)
	_, err := sink.Write(b[:])
	return err
}

// writeUint64LE writes v to sink in little-endian order.
func writeUint64LE(sink io.Writer, v uint64) error {
	var b [8]byte
	littleEndian.PutUint64(b[:], v)
	_, err := sink.Write(b[:])
	return err
}

// writeUint16BE writes v to sink in network (big-endian) byte order.
func writeUint16BE(sink io.Writer, v uint16) error {
	b := [2]byte{byte(v >> 8), byte(v)}
	_, err := sink.Write(b[:])
	return err
}

// currentTimeSeconds returns the current wall-clock time as seconds since
// the Unix epoch. It is the only non-deterministic primitive in this
// package. PeerAddress.SerializeToStream reads the clock through this
// variable, so tests that need determinism replace it with a fixed clock.
var currentTimeSeconds = func() uint32 {
	return uint32(time.Now().Unix())
}

// readVarInt reads a Bitcoin-style CompactSize integer from buf at cur
// and returns the decoded value and the advanced cursor. It is not
// exercised by PeerAddress (a fixed-size message) but is provided
// alongside the other primitives because every variable-length message a
// node exchanges — addr counts, sub-version strings — relies on it.
func readVarInt(buf []byte, cur int) (uint64, int, error) {
	if cur >= len(buf) {
		return 0, cur, newParseError("readVarInt", "truncated buffer")
	}
	disc := buf[cur]
	switch disc {
	case 0xff:
		if cur+9 > len(buf) {
			return 0, cur, newParseError("readVarInt", "truncated buffer")
		}
		return littleEndian.Uint64(buf[cur+1 : cur+9]), cur + 9, nil
	case 0xfe:
		if cur+5 > len(buf) {
			return 0, cur, newParseError("readVarInt", "truncated buffer")
		}
		return uint64(littleEndian.Uint32(buf[cur+1 : cur+5])), cur + 5, nil
	case 0xfd:
		if cur+3 > len(buf) {
			return 0, cur, newParseError("readVarInt", "truncated buffer")
		}
		return uint64(littleEndian.Uint16(buf[cur+1 : cur+3])), cur + 3, nil
	default:
		return uint64(disc), cur + 1, nil
	}
}

// writeVarInt writes n to sink using the Bitcoin-style CompactSize
// encoding.
func writeVarInt(sink io.Writer, n uint64) error {
	switch {
	case n < 0xfd:
		_, err := sink.Write([]byte{byte(n)})
		return err
	case n <= 0xffff:
		var b [3]byte
		b[0] = 0xfd
		littleEndian.PutUint16(b[1:], uint16(n))
		_, err := sink.Write(b[:])
		return err
	case n <= 0xffffffff:
		var b [5]byte
		b[0] = 0xfe
		littleEndian.PutUint32(b[1:], uint32(n))
		_, err := sink.Write(b[:])
		return err
	default:
		var b [9]byte
		b[0] = 0xff
		littleEndian.PutUint64(b[1:], n)
		_, err := sink.Write(b[:])
		return err
	}
}

// doubleSha256 returns SHA-256(SHA-256(b)), the hash used by the envelope
// checksum and by anything else in the node that needs Bitcoin-family
// double hashing.
func doubleSha256(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}
