// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addrutil resolves a wire.PeerAddress into a live net.Conn,
// routing Tor .onion hostnames through a SOCKS proxy and dialing
// resolved IPs directly.
package addrutil

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/btcsuite/go-socks/socks"

	"github.com/inchain-project/inchaind/wire"
)

// Dialer dials a wire.PeerAddress, routing onion hostnames through a
// configured SOCKS proxy.
type Dialer struct {
	// ProxyAddr is the host:port of a SOCKS5 proxy used to reach .onion
	// hostnames. A zero value disables onion dialing: attempting to dial
	// an onion PeerAddress returns an error instead.
	ProxyAddr string
	// ProxyUsername and ProxyPassword authenticate to the proxy, if it
	// requires it.
	ProxyUsername string
	ProxyPassword string
	// Timeout bounds the dial. Zero means no timeout.
	Timeout time.Duration
}

// Dial connects to pa, using the SOCKS proxy for an onion hostname and
// a direct TCP dial otherwise.
func (d *Dialer) Dial(pa *wire.PeerAddress) (net.Conn, error) {
	if h := pa.Hostname(); h != "" {
		if strings.HasSuffix(h, ".onion") {
			return d.dialOnion(h, pa.Port())
		}
		return d.dialDirect(net.JoinHostPort(h, portString(pa.Port())))
	}
	ip := pa.Addr()
	if ip == nil {
		return nil, fmt.Errorf("addrutil: PeerAddress has neither hostname nor address")
	}
	return d.dialDirect(net.JoinHostPort(ip.String(), portString(pa.Port())))
}

func (d *Dialer) dialDirect(addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: d.Timeout}
	return dialer.Dial("tcp", addr)
}

func (d *Dialer) dialOnion(hostname string, port uint16) (net.Conn, error) {
	if d.ProxyAddr == "" {
		return nil, fmt.Errorf("addrutil: no SOCKS proxy configured for onion peer %s", hostname)
	}
	host := hostname
	if !strings.HasSuffix(host, ".onion") {
		host += ".onion"
	}
	proxy := &socks.Proxy{
		Addr:     d.ProxyAddr,
		Username: d.ProxyUsername,
		Password: d.ProxyPassword,
	}
	return proxy.DialTimeout("tcp", net.JoinHostPort(host, portString(port)), d.Timeout)
}

func portString(p uint16) string {
	const digits = "0123456789"
	if p == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for p > 0 {
		i--
		buf[i] = digits[p%10]
		p /= 10
	}
	return string(buf[i:])
}
