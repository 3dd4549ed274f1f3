// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameAndNextRoundTrip(t *testing.T) {
	s := NewMessageSerializer(testParams, DefaultDedupCapacity)

	pa := NewPeerAddressFromIPCurrent(net.IPv4(8, 8, 8, 8), 8333, testParams)
	payload, err := pa.BitcoinSerialize()
	require.NoError(t, err)

	envelope, err := s.Frame(CmdAddr, payload)
	require.NoError(t, err)

	msg, consumed, result, envErr := s.Next(envelope, ProtocolVersion)
	require.Equal(t, ResultOK, result)
	require.Nil(t, envErr)
	require.Equal(t, len(envelope), consumed)
	require.Equal(t, CmdAddr, msg.Command())
}

func TestNextNeedsMoreOnShortBuffer(t *testing.T) {
	s := NewMessageSerializer(testParams, DefaultDedupCapacity)
	_, consumed, result, envErr := s.Next([]byte{1, 2, 3}, ProtocolVersion)
	require.Equal(t, ResultNeedMore, result)
	require.Nil(t, envErr)
	require.Equal(t, 0, consumed)
}

func TestNextNeedsMoreOnTruncatedPayload(t *testing.T) {
	s := NewMessageSerializer(testParams, DefaultDedupCapacity)
	pa := NewPeerAddressFromIPCurrent(net.IPv4(8, 8, 8, 8), 8333, testParams)
	payload, err := pa.BitcoinSerialize()
	require.NoError(t, err)
	envelope, err := s.Frame(CmdAddr, payload)
	require.NoError(t, err)

	_, consumed, result, envErr := s.Next(envelope[:len(envelope)-1], ProtocolVersion)
	require.Equal(t, ResultNeedMore, result)
	require.Nil(t, envErr)
	require.Equal(t, 0, consumed)
}

func TestNextInvalidOnBadMagic(t *testing.T) {
	other := stubParams{magic: TestNet, port: 18333}
	s := NewMessageSerializer(testParams, DefaultDedupCapacity)

	pa := NewPeerAddressFromIPCurrent(net.IPv4(8, 8, 8, 8), 8333, other)
	payload, err := pa.BitcoinSerialize()
	require.NoError(t, err)

	wrongEnvelope, err := NewMessageSerializer(other, DefaultDedupCapacity).Frame(CmdAddr, payload)
	require.NoError(t, err)

	_, _, result, envErr := s.Next(wrongEnvelope, ProtocolVersion)
	require.Equal(t, ResultInvalid, result)
	require.NotNil(t, envErr)
	require.Equal(t, CmdAddr, envErr.Command)
}

func TestNextInvalidOnBadChecksum(t *testing.T) {
	s := NewMessageSerializer(testParams, DefaultDedupCapacity)
	pa := NewPeerAddressFromIPCurrent(net.IPv4(8, 8, 8, 8), 8333, testParams)
	payload, err := pa.BitcoinSerialize()
	require.NoError(t, err)
	envelope, err := s.Frame(CmdAddr, payload)
	require.NoError(t, err)

	envelope[len(envelope)-1] ^= 0xff

	_, consumed, result, envErr := s.Next(envelope, ProtocolVersion)
	require.Equal(t, ResultInvalid, result)
	require.Equal(t, len(envelope), consumed)
	require.NotNil(t, envErr)
	require.Equal(t, CmdAddr, envErr.Command)
	require.Equal(t, "checksum mismatch", envErr.Msg)
}

func TestNextInvalidOnOversizedPayload(t *testing.T) {
	s := NewMessageSerializer(testParams, DefaultDedupCapacity)
	var header [HeaderSize]byte
	littleEndian.PutUint32(header[0:4], uint32(testParams.Magic()))
	copy(header[4:16], CmdAddr)
	littleEndian.PutUint32(header[16:20], MaxMessagePayload+1)

	_, _, result, envErr := s.Next(header[:], ProtocolVersion)
	require.Equal(t, ResultInvalid, result)
	require.NotNil(t, envErr)
	require.Equal(t, CmdAddr, envErr.Command)
}

func TestNextInvalidOnUnknownCommand(t *testing.T) {
	s := NewMessageSerializer(testParams, DefaultDedupCapacity)
	envelope, err := s.Frame("notacommand", nil)
	require.NoError(t, err)

	_, consumed, result, envErr := s.Next(envelope, ProtocolVersion)
	require.Equal(t, ResultInvalid, result)
	require.Equal(t, len(envelope), consumed)
	require.NotNil(t, envErr)
	require.Equal(t, "notacommand", envErr.Command)
	require.Equal(t, "unknown command", envErr.Msg)
}

func TestNextSuppressesDuplicateEnvelope(t *testing.T) {
	s := NewMessageSerializer(testParams, DefaultDedupCapacity)
	pa := NewPeerAddressFromIPCurrent(net.IPv4(8, 8, 8, 8), 8333, testParams)
	payload, err := pa.BitcoinSerialize()
	require.NoError(t, err)
	envelope, err := s.Frame(CmdAddr, payload)
	require.NoError(t, err)

	_, _, first, firstErr := s.Next(envelope, ProtocolVersion)
	require.Equal(t, ResultOK, first)
	require.Nil(t, firstErr)

	_, _, second, secondErr := s.Next(envelope, ProtocolVersion)
	require.Equal(t, ResultInvalid, second)
	require.NotNil(t, secondErr)
	require.Equal(t, CmdAddr, secondErr.Command)
	require.Equal(t, "duplicate", secondErr.Msg)
}

func TestNextDedupCapacityZeroDisablesSuppression(t *testing.T) {
	s := NewMessageSerializer(testParams, 0)
	pa := NewPeerAddressFromIPCurrent(net.IPv4(8, 8, 8, 8), 8333, testParams)
	payload, err := pa.BitcoinSerialize()
	require.NoError(t, err)
	envelope, err := s.Frame(CmdAddr, payload)
	require.NoError(t, err)

	_, _, first, _ := s.Next(envelope, ProtocolVersion)
	require.Equal(t, ResultOK, first)

	_, _, second, secondErr := s.Next(envelope, ProtocolVersion)
	require.Equal(t, ResultOK, second)
	require.Nil(t, secondErr)
}

func TestFrameRejectsOverlongCommand(t *testing.T) {
	s := NewMessageSerializer(testParams, DefaultDedupCapacity)
	_, err := s.Frame("this-command-name-is-too-long", nil)
	require.Error(t, err)
}
