// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerAckIsEmptyAndDispatchable(t *testing.T) {
	v := NewVerAck(testParams)
	require.Equal(t, CmdVerAck, v.Command())

	body, err := v.BitcoinSerialize()
	require.NoError(t, err)
	require.Empty(t, body)

	require.True(t, KnownCommands(CmdVerAck))

	msg, err := makeMessage(CmdVerAck, testParams, nil, 0, ProtocolVersion)
	require.NoError(t, err)
	require.Equal(t, CmdVerAck, msg.Command())
}

func TestMakeMessageUnknownCommand(t *testing.T) {
	_, err := makeMessage("bogus", testParams, nil, 0, ProtocolVersion)
	require.Error(t, err)
}
