// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPingCarriesNonceAboveBIP0031(t *testing.T) {
	p := NewPing(0xdeadbeefcafebabe, testParams)
	body, err := p.BitcoinSerialize()
	require.NoError(t, err)
	require.Len(t, body, 8)

	msg, err := newPingFromPayload(testParams, body, 0, ProtocolVersion)
	require.NoError(t, err)
	got := msg.(*Ping)
	require.Equal(t, p.Nonce, got.Nonce)
}

func TestPingEmptyAtOrBelowBIP0031(t *testing.T) {
	p := &Ping{msgBase: msgBase{params: testParams, protocolVersion: BIP0031Version}, Nonce: 42}
	body, err := p.BitcoinSerialize()
	require.NoError(t, err)
	require.Empty(t, body)

	msg, err := newPingFromPayload(testParams, nil, 0, BIP0031Version)
	require.NoError(t, err)
	require.Equal(t, 0, msg.Length())
}
