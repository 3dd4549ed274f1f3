// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2026 The inchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
	"net"
)

// PeerAddressSize is the fixed size, in bytes, of a PeerAddress on the
// wire: time (4) + services (8) + address (16) + port (2).
const PeerAddressSize = 30

// PeerAddress is the address record exchanged in addr/version traffic.
// It describes a single peer: when it was last seen alive, the services
// it advertises, and either an IPv4-mapped IPv6 address or a Tor .onion
// hostname.
//
// PeerAddress is not safe for concurrent use, like every Message in this
// package; callers needing to share one across goroutines must provide
// their own locking.
type PeerAddress struct {
	msgBase

	time     uint32
	services uint64

	// addr holds a 16-byte IPv4-mapped IPv6 address. hasAddr is false
	// for a hostname-only (onion) PeerAddress.
	addr    [16]byte
	hasAddr bool

	// hostname is set only for hostname-only peers (Tor .onion or other
	// unresolved hostnames) and is mutually informative with addr: at
	// most one of the two carries the real endpoint.
	hostname string

	port uint16
}

// Time returns the last-seen timestamp, in seconds since the Unix epoch,
// carried by this PeerAddress.
func (pa *PeerAddress) Time() uint32 { return pa.time }

// SetTime updates the last-seen timestamp.
func (pa *PeerAddress) SetTime(t uint32) { pa.time = t }

// Services returns the service bitfield advertised by this peer.
func (pa *PeerAddress) Services() ServiceFlag { return ServiceFlag(pa.services) }

// SetServices updates the advertised service bitfield.
func (pa *PeerAddress) SetServices(s ServiceFlag) { pa.services = uint64(s) }

// Addr returns the peer's IP address, or nil if this PeerAddress was
// constructed from a hostname.
func (pa *PeerAddress) Addr() net.IP {
	if !pa.hasAddr {
		return nil
	}
	ip := make(net.IP, 16)
	copy(ip, pa.addr[:])
	return ip
}

// SetAddr sets the peer's IP address, clearing any hostname. ip may be a
// 4-byte IPv4 address (stored IPv4-mapped) or a 16-byte IPv6 address.
func (pa *PeerAddress) SetAddr(ip net.IP) {
	var mapped [16]byte
	if v4 := ip.To4(); v4 != nil {
		mapped[10] = 0xff
		mapped[11] = 0xff
		copy(mapped[12:], v4)
	} else if v6 := ip.To16(); v6 != nil {
		copy(mapped[:], v6)
	}
	pa.addr = mapped
	pa.hasAddr = true
	pa.hostname = ""
}

// Hostname returns the Tor .onion hostname for this PeerAddress, or the
// empty string if it was constructed from an IP.
func (pa *PeerAddress) Hostname() string { return pa.hostname }

// Port returns the peer's TCP port.
func (pa *PeerAddress) Port() uint16 { return pa.port }

// SetPort updates the peer's TCP port.
func (pa *PeerAddress) SetPort(p uint16) { pa.port = p }

// Command returns "addr".
func (pa *PeerAddress) Command() string { return CmdAddr }

// BitcoinSerialize wraps SerializeToStream, returning the 30-byte body.
func (pa *PeerAddress) BitcoinSerialize() ([]byte, error) {
	return bitcoinSerialize(pa)
}

// SerializeToStream writes the 30-byte PeerAddress body to sink:
//
//  1. time is NOT written from the pa.time field; it is refreshed from
//     the clock at send time, a deliberate deviation from round-trip
//     symmetry.
//  2. services, little-endian uint64.
//  3. the 16-byte IPv4-mapped-IPv6 address.
//  4. port, big-endian (network byte order) uint16.
//
// A hostname-only PeerAddress (onion, no resolved addr) cannot be
// represented in the fixed 16-byte address field, so this returns a
// ProtocolError rather than fabricating a synthetic address.
func (pa *PeerAddress) SerializeToStream(sink io.Writer) error {
	if !pa.hasAddr {
		return newParseError("PeerAddress.SerializeToStream",
			"cannot serialize a hostname-only PeerAddress ("+pa.hostname+") onto the wire")
	}
	if err := writeUint32LE(sink, currentTimeSeconds()); err != nil {
		return newIOError("PeerAddress.SerializeToStream", err)
	}
	if err := writeUint64LE(sink, pa.services); err != nil {
		return newIOError("PeerAddress.SerializeToStream", err)
	}
	if _, err := sink.Write(pa.addr[:]); err != nil {
		return newIOError("PeerAddress.SerializeToStream", err)
	}
	if err := writeUint16BE(sink, pa.port); err != nil {
		return newIOError("PeerAddress.SerializeToStream", err)
	}
	return nil
}

// String renders the PeerAddress as "[host]:port". The host, whether an
// IP address or an onion hostname, is always bracketed.
func (pa *PeerAddress) String() string {
	host := pa.hostname
	if pa.hasAddr {
		host = pa.Addr().String()
	}
	return "[" + host + "]:" + portString(pa.port)
}

// Equal reports whether pa and other have the same (addr, port, time,
// services) tuple. Including time and services means the same logical
// peer compares unequal across successive advertisements as its
// time/services refresh; callers that want identity by endpoint alone
// should compare Addr()/Hostname()+Port() directly instead.
func (pa *PeerAddress) Equal(other *PeerAddress) bool {
	if other == nil {
		return false
	}
	if pa.port != other.port || pa.time != other.time || pa.services != other.services {
		return false
	}
	if pa.hasAddr != other.hasAddr {
		return false
	}
	if pa.hasAddr {
		return pa.addr == other.addr
	}
	return pa.hostname == other.hostname
}

// HashKey returns a string suitable for use as a map key with the same
// equivalence classes as Equal, standing in for the source's
// hashCode()/equals() pair.
func (pa *PeerAddress) HashKey() string {
	addrPart := pa.hostname
	if pa.hasAddr {
		addrPart = string(pa.addr[:])
	}
	var b [14]byte
	littleEndian.PutUint32(b[0:4], pa.time)
	littleEndian.PutUint64(b[4:12], pa.services)
	b[12] = byte(pa.port >> 8)
	b[13] = byte(pa.port)
	return addrPart + string(b[:])
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

// newPeerAddressFromPayload constructs a PeerAddress by parsing it out of
// payload starting at offset. Deferred parsing is not used here:
// PeerAddress is fixed-size and cheap to decode, so the message is fully
// decoded the moment its envelope is read and there is no behavior to
// defer.
func newPeerAddressFromPayload(params NetworkParams, payload []byte, offset int, pver uint32) (Message, error) {
	cur := offset

	t, cur, err := readUint32LE(payload, cur)
	if err != nil {
		return nil, err
	}
	services, cur, err := readUint64LE(payload, cur)
	if err != nil {
		return nil, err
	}
	addrBytes, cur, err := readBytes(payload, cur, 16)
	if err != nil {
		return nil, err
	}
	// A 16-byte slice can never fail to become a 16-byte array; if it
	// somehow did, that is a platform anomaly, not a malformed message.
	if len(addrBytes) != 16 {
		return nil, newInternalError("PeerAddress.Parse", "address conversion produced unexpected length")
	}
	port, cur, err := readUint16BE(payload, cur)
	if err != nil {
		return nil, err
	}

	pa := &PeerAddress{
		msgBase: msgBase{params: params, length: cur - offset, protocolVersion: pver},
		time:    t,
		services: services,
		port:    port,
		hasAddr: true,
	}
	copy(pa.addr[:], addrBytes)
	return pa, nil
}

// NewPeerAddressFromIP constructs a PeerAddress in memory from an IP and
// port under the given protocol version. services defaults to
// SFNodeNetwork.
func NewPeerAddressFromIP(ip net.IP, port uint16, pver uint32, params NetworkParams) *PeerAddress {
	pa := &PeerAddress{
		msgBase:  msgBase{params: params, length: PeerAddressSize, protocolVersion: pver},
		services: uint64(SFNodeNetwork),
		port:     port,
	}
	pa.SetAddr(ip)
	return pa
}

// NewPeerAddressFromIPCurrent is NewPeerAddressFromIP using
// ProtocolVersion as the protocol version.
func NewPeerAddressFromIPCurrent(ip net.IP, port uint16, params NetworkParams) *PeerAddress {
	return NewPeerAddressFromIP(ip, port, ProtocolVersion, params)
}

// NewPeerAddressFromIPDefaultPort constructs a PeerAddress from an IP
// alone, using params' default port.
func NewPeerAddressFromIPDefaultPort(ip net.IP, params NetworkParams) *PeerAddress {
	return NewPeerAddressFromIPCurrent(ip, params.DefaultPort(), params)
}

// NewPeerAddressFromTCPAddr constructs a PeerAddress from a resolved
// *net.TCPAddr. A *net.TCPAddr in Go always carries a concrete IP, so an
// unresolved socket address with a nil addr cannot arise through this
// constructor.
func NewPeerAddressFromTCPAddr(addr *net.TCPAddr, params NetworkParams) *PeerAddress {
	return NewPeerAddressFromIPCurrent(addr.IP, uint16(addr.Port), params)
}

// NewPeerAddressFromHostname constructs a PeerAddress for a Tor .onion
// peer (or any other hostname-only endpoint). addr is left unset and
// services defaults to 0.
func NewPeerAddressFromHostname(hostname string, port uint16, params NetworkParams) *PeerAddress {
	return &PeerAddress{
		msgBase:  msgBase{params: params, length: PeerAddressSize, protocolVersion: ProtocolVersion},
		hostname: hostname,
		port:     port,
	}
}

// Localhost returns a PeerAddress for 127.0.0.1 on params' default port.
func Localhost(params NetworkParams) *PeerAddress {
	return NewPeerAddressFromIPDefaultPort(net.IPv4(127, 0, 0, 1), params)
}
