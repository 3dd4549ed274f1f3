// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inchain-project/inchaind/chaincfg"
	"github.com/inchain-project/inchaind/wire"
)

func TestDialOnionWithoutProxyFails(t *testing.T) {
	d := &Dialer{}
	pa := wire.NewPeerAddressFromHostname("expyuzz4wqqyqhjn.onion", 8333, &chaincfg.MainNetParams)

	_, err := d.Dial(pa)
	require.Error(t, err)
}

func TestDialWithNeitherHostnameNorAddrFails(t *testing.T) {
	d := &Dialer{}
	pa := &wire.PeerAddress{}

	_, err := d.Dial(pa)
	require.Error(t, err)
}

func TestPortStringMatchesDecimal(t *testing.T) {
	cases := map[uint16]string{0: "0", 8: "8", 80: "80", 8333: "8333", 65535: "65535"}
	for in, want := range cases {
		require.Equal(t, want, portString(in))
	}
}
