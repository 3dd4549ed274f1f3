// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceFlagString(t *testing.T) {
	require.Equal(t, "0x0", ServiceFlag(0).String())
	require.Equal(t, "SFNodeNetwork", SFNodeNetwork.String())
	require.Equal(t, "SFNodeNetwork|SFNodeBloom", (SFNodeNetwork | SFNodeBloom).String())
}

func TestBitcoinNetString(t *testing.T) {
	require.Equal(t, "MainNet", MainNet.String())
	require.Contains(t, BitcoinNet(0x1).String(), "Unknown")
}

func TestProtocolMilestoneUnknown(t *testing.T) {
	_, ok := ProtocolMilestone("NOPE")
	require.False(t, ok)
}
